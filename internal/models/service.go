package models

import (
	"time"

	"rentaltracker-backend/internal/datecalc"
)

// Service is outside work billed to a production, everything but the name is
// optional.
type Service struct {
	ID              uint    `gorm:"primaryKey"`
	ServiceName     string  `gorm:"size:100;not null"`
	Description     *string `gorm:"type:text"`
	Rate            *float64
	Total           *float64
	Requestor       string  `gorm:"size:100;not null"`
	Title           *string `gorm:"size:100"`
	DepartmentID    *uint
	Department      *Department `gorm:"constraint:OnDelete:CASCADE"`
	ProductionID    *uint
	Production      *Production `gorm:"constraint:OnDelete:CASCADE"`
	ServiceLocation *string     `gorm:"size:300"`
	StartServiceDate *time.Time `gorm:"type:date;index"`
	EndServiceDate   *time.Time `gorm:"type:date"`
	VendorID        *uint
	Vendor          *Vendor     `gorm:"constraint:OnDelete:CASCADE"`
	PurchaseOrder   *string     `gorm:"size:100"`
	PaymentType     PaymentType `gorm:"size:100"`
	Notes1          *string     `gorm:"size:300"`
	Notes2          *string     `gorm:"size:300"`
	Notes3          *string     `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s *Service) Validate() error {
	return ValidateDateOrder("start_service_date", s.StartServiceDate, s.EndServiceDate)
}

func (s *Service) StartDayOfWeek() string {
	return datecalc.DayOfWeek(s.StartServiceDate)
}

func (s *Service) EndDayOfWeek() string {
	return datecalc.DayOfWeek(s.EndServiceDate)
}

func (s *Service) ServiceDuration() (int, bool) {
	return datecalc.DaysBetween(s.StartServiceDate, s.EndServiceDate)
}

func (s *Service) DaysToWeeks() (int, bool) {
	return datecalc.WeeksBetween(s.StartServiceDate, s.EndServiceDate)
}

func (s *Service) DaysTillService(today time.Time) (int, bool) {
	return datecalc.DaysUntil(s.StartServiceDate, today)
}

// DaysToEndService counts down to the end date, negative once it has passed.
func (s *Service) DaysToEndService(today time.Time) (int, bool) {
	return datecalc.DaysUntil(s.EndServiceDate, today)
}

func (s *Service) DaysPastService(today time.Time) (int, bool) {
	return datecalc.DaysPast(s.EndServiceDate, today)
}
