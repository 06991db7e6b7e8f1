package models

import "time"

type Department struct {
	ID             uint   `gorm:"primaryKey"`
	DepartmentName string `gorm:"size:100;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
