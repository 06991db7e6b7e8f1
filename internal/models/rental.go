package models

import (
	"time"

	"rentaltracker-backend/internal/datecalc"
)

type RentalType string

const (
	RentalTypeROS      RentalType = "ROS"
	RentalTypeDropLoad RentalType = "Drop Load"
	RentalTypeNA       RentalType = "n/a"
)

type RentalCategory string

const (
	CategoryMainEquipment    RentalCategory = "main_equipment"
	CategorySpecialEquipment RentalCategory = "special_equipment"
	CategoryOfficeEquipment  RentalCategory = "office_equipment"
	CategorySetEquipment     RentalCategory = "set_equipment"
	CategoryMiscEquipment    RentalCategory = "misc_equipment"
)

// RentalCategories lists the five equipment classes in report order.
var RentalCategories = []RentalCategory{
	CategoryMainEquipment,
	CategorySpecialEquipment,
	CategoryOfficeEquipment,
	CategorySetEquipment,
	CategoryMiscEquipment,
}

func ParseRentalCategory(s string) (RentalCategory, bool) {
	for _, c := range RentalCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

type PaymentType string

const (
	PaymentNet30      PaymentType = "net30"
	PaymentCheck      PaymentType = "check"
	PaymentCreditCard PaymentType = "credit_card"
	PaymentCash       PaymentType = "cash"
)

// Rental is one piece of rented equipment on a production.
type Rental struct {
	ID              uint   `gorm:"primaryKey"`
	RentalItem      string `gorm:"size:100;not null"`
	FirstName       string `gorm:"size:100;not null"`
	LastName        string `gorm:"size:100;not null"`
	Title           string `gorm:"size:100;not null"`
	DepartmentID    uint   `gorm:"index;not null"`
	Department      Department `gorm:"constraint:OnDelete:CASCADE"`
	ProductionID    uint       `gorm:"index;not null"`
	Production      Production `gorm:"constraint:OnDelete:CASCADE"`
	VendorID        uint       `gorm:"index;not null"`
	Vendor          Vendor     `gorm:"constraint:OnDelete:CASCADE"`
	SceneInfo       *string    `gorm:"size:300"`
	StartRentalDate time.Time  `gorm:"type:date;not null;index"`
	EndRentalDate   time.Time  `gorm:"type:date;not null"`
	DropOffLocation *string    `gorm:"size:300"`
	DropOffTime     *string    `gorm:"size:20"`
	PickUpLocation  *string    `gorm:"size:300"`
	PickUpTime      *string    `gorm:"size:20"`
	RentalType      RentalType     `gorm:"size:100"`
	Category        RentalCategory `gorm:"size:100;index"`
	AddlTaxFees     *float64
	TotalCost       *float64
	PurchaseOrder   *string     `gorm:"size:100"`
	QuoteNumber     *string     `gorm:"size:100"`
	PaymentType     PaymentType `gorm:"size:100"`
	Notes1          *string     `gorm:"size:300"`
	Notes2          *string     `gorm:"size:300"`
	Notes3          *string     `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate enforces the date-order rule before any save.
func (r *Rental) Validate() error {
	return ValidateDateOrder("start_rental_date", &r.StartRentalDate, &r.EndRentalDate)
}

func (r *Rental) StartDayOfWeek() string {
	return datecalc.DayOfWeek(&r.StartRentalDate)
}

func (r *Rental) EndDayOfWeek() string {
	return datecalc.DayOfWeek(&r.EndRentalDate)
}

// RentalDuration is the whole-day span of the rental; negative when the dates
// are reversed.
func (r *Rental) RentalDuration() (int, bool) {
	return datecalc.DaysBetween(&r.StartRentalDate, &r.EndRentalDate)
}

func (r *Rental) DaysToWeeks() (int, bool) {
	return datecalc.WeeksBetween(&r.StartRentalDate, &r.EndRentalDate)
}

func (r *Rental) DaysToMonths() (int, bool) {
	return datecalc.MonthsBetween(&r.StartRentalDate, &r.EndRentalDate)
}

func (r *Rental) DaysTillRental(today time.Time) (int, bool) {
	return datecalc.DaysUntil(&r.StartRentalDate, today)
}

func (r *Rental) DaysPastRental(today time.Time) (int, bool) {
	return datecalc.DaysPast(&r.EndRentalDate, today)
}
