// Package search evaluates the free-text search box. Matching is a
// case-insensitive substring check over a fixed field set per record type,
// OR-combined; an empty query matches everything.
package search

import (
	"fmt"
	"strings"

	"rentaltracker-backend/internal/models"
	"rentaltracker-backend/internal/report"
)

// Rentals returns the rentals matching q plus the total-cost sum over the
// matches. skipped counts records with no total.
func Rentals(rentals []models.Rental, q string) (matches []models.Rental, total float64, skipped int) {
	matches = make([]models.Rental, 0, len(rentals))
	for _, r := range rentals {
		if MatchRental(r, q) {
			matches = append(matches, r)
		}
	}
	total, skipped = report.SumRentalTotals(matches)
	return matches, total, skipped
}

func Services(services []models.Service, q string) (matches []models.Service, total float64, skipped int) {
	matches = make([]models.Service, 0, len(services))
	for _, s := range services {
		if MatchService(s, q) {
			matches = append(matches, s)
		}
	}
	total, skipped = report.SumServiceTotals(matches)
	return matches, total, skipped
}

func Vehicles(vehicles []models.Vehicle, q string) (matches []models.Vehicle, total float64) {
	matches = make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if MatchVehicle(v, q) {
			matches = append(matches, v)
		}
	}
	total, _ = report.SumVehicleTotals(matches)
	return matches, total
}

func Vendors(vendors []models.Vendor, q string) []models.Vendor {
	matches := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if MatchVendor(v, q) {
			matches = append(matches, v)
		}
	}
	return matches
}

func MatchRental(r models.Rental, q string) bool {
	return anyContains(q,
		string(r.Category),
		r.RentalItem,
		r.FirstName,
		r.LastName,
		string(r.RentalType),
		moneyString(r.TotalCost),
		deref(r.PurchaseOrder),
		deref(r.QuoteNumber),
		r.Department.DepartmentName,
		r.Vendor.Name,
	)
}

func MatchService(s models.Service, q string) bool {
	vendor := ""
	if s.Vendor != nil {
		vendor = s.Vendor.Name
	}
	department := ""
	if s.Department != nil {
		department = s.Department.DepartmentName
	}
	return anyContains(q,
		s.ServiceName,
		vendor,
		s.Requestor,
		deref(s.PurchaseOrder),
		department,
	)
}

func MatchVehicle(v models.Vehicle, q string) bool {
	return anyContains(q,
		v.Driver,
		v.Department.DepartmentName,
		v.Vendor.Name,
		v.VehicleType,
		v.PlateNumber,
		deref(v.ContractNumber),
		v.PurchaseOrder,
	)
}

func MatchVendor(v models.Vendor, q string) bool {
	category := ""
	if v.Category != nil {
		category = v.Category.Name
	}
	return anyContains(q, v.Name, category)
}

func anyContains(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func moneyString(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *f)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
