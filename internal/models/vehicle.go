package models

import (
	"time"

	"rentaltracker-backend/internal/datecalc"
)

type VehicleStatus string

const (
	VehicleOnRental VehicleStatus = "on_rental"
	VehicleReturned VehicleStatus = "returned"
	VehicleSwapped  VehicleStatus = "swapped"
)

func ParseVehicleStatus(s string) (VehicleStatus, bool) {
	switch VehicleStatus(s) {
	case VehicleOnRental, VehicleReturned, VehicleSwapped:
		return VehicleStatus(s), true
	}
	return "", false
}

// Vehicle is a rented production vehicle. Rate, tax and total are derived from
// the rental duration, not stored.
type Vehicle struct {
	ID              uint   `gorm:"primaryKey"`
	Driver          string `gorm:"size:100;not null"`
	ProductionID    *uint
	Production      *Production `gorm:"constraint:OnDelete:CASCADE"`
	Title           string      `gorm:"size:100;not null"`
	DepartmentID    uint        `gorm:"index;not null"`
	Department      Department  `gorm:"constraint:OnDelete:CASCADE"`
	VendorID        uint        `gorm:"index;not null"`
	Vendor          Vendor      `gorm:"constraint:OnDelete:CASCADE"`
	VehicleType     string      `gorm:"size:100;not null"`
	PlateNumber     string      `gorm:"size:100;not null"`
	Make            string      `gorm:"size:100"`
	Model           string      `gorm:"size:100"`
	Color           string      `gorm:"size:100"`
	StartRentalDate time.Time   `gorm:"type:date;not null;index"`
	EndRentalDate   time.Time   `gorm:"type:date;not null"`
	ContractNumber  *string     `gorm:"size:100"`
	PurchaseOrder   string      `gorm:"size:100;not null"`
	DailyRate       *float64
	WeeklyRate      *float64
	MonthlyRate     *float64
	Tax             *float64
	MiscFees        *float64
	POTotal         float64 `gorm:"column:po_total;not null"`
	OnRental        bool
	RentalStatus    VehicleStatus `gorm:"size:100;default:on_rental"`
	NewSwapped      bool
	Notes1          *string `gorm:"size:300"`
	Notes2          *string `gorm:"size:300"`
	Notes3          *string `gorm:"size:300"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate enforces the same date-order rule as Rental and Service.
func (v *Vehicle) Validate() error {
	return ValidateDateOrder("start_rental_date", &v.StartRentalDate, &v.EndRentalDate)
}

func (v *Vehicle) RentalDuration() (int, bool) {
	return datecalc.DaysBetween(&v.StartRentalDate, &v.EndRentalDate)
}

// CalcRates picks the billing tier from the rental duration: up to 7 days at
// the daily rate, up to 30 at the weekly rate times whole weeks, beyond that
// the monthly rate times whole months. A missing rate counts as zero. A
// zero-length rental has no billable tier and reports unavailable.
func (v *Vehicle) CalcRates() (float64, bool) {
	d, ok := v.RentalDuration()
	if !ok || d == 0 {
		return 0, false
	}
	switch {
	case d <= 7:
		return rateOrZero(v.DailyRate) * float64(d), true
	case d <= 30:
		return rateOrZero(v.WeeklyRate) * float64(datecalc.FloorDiv(d, 7)), true
	default:
		return rateOrZero(v.MonthlyRate) * float64(datecalc.FloorDiv(d, 30)), true
	}
}

// CalcTax applies a tax rate (e.g. 0.08) to the calculated rental rate.
func (v *Vehicle) CalcTax(taxRate float64) (float64, bool) {
	rate, ok := v.CalcRates()
	if !ok {
		return 0, false
	}
	return rate * taxRate, true
}

// CalcTotal is rate + tax + misc fees; unavailable when the rate is.
func (v *Vehicle) CalcTotal() (float64, bool) {
	rate, ok := v.CalcRates()
	if !ok {
		return 0, false
	}
	tax, _ := v.CalcTax(rateOrZero(v.Tax))
	return rate + tax + rateOrZero(v.MiscFees), true
}

func rateOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
