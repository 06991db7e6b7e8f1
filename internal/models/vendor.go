package models

import "time"

type VendorCategory struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Vendor struct {
	ID              uint `gorm:"primaryKey"`
	Name            string `gorm:"size:100;not null"`
	CategoryID      *uint
	Category        *VendorCategory `gorm:"constraint:OnDelete:CASCADE"`
	Services        *string         `gorm:"size:200"`
	Address         string          `gorm:"type:text;not null"`
	Contact         *string         `gorm:"size:100"`
	Phone           string          `gorm:"size:15"`
	Email           string          `gorm:"size:100"`
	AgreementSigned bool
	AgreementDate   *time.Time `gorm:"type:date"`
	COIIssued       bool       `gorm:"column:coi_issued"`
	Notes           *string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
