package models

import "time"

// Production is the show a record is billed against.
type Production struct {
	ID                uint   `gorm:"primaryKey"`
	ProductionCompany string `gorm:"size:100;not null"`
	ShowName          string `gorm:"size:100;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Label is the display form used by reports: "company - show".
func (p Production) Label() string {
	return p.ProductionCompany + " - " + p.ShowName
}
