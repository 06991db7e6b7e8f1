package search

import (
	"testing"
	"time"

	"rentaltracker-backend/internal/models"
)

func money(v float64) *float64 { return &v }

func sampleRentals() []models.Rental {
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	return []models.Rental{
		{
			RentalItem:      "Camera Crane",
			FirstName:       "Maria",
			LastName:        "Lopez",
			Category:        models.CategoryMainEquipment,
			Department:      models.Department{DepartmentName: "Camera"},
			Vendor:          models.Vendor{Name: "Acme Rentals"},
			StartRentalDate: start,
			EndRentalDate:   start.AddDate(0, 0, 3),
			TotalCost:       money(250),
		},
		{
			RentalItem:      "Office Printer",
			FirstName:       "Dev",
			LastName:        "Patel",
			Category:        models.CategoryOfficeEquipment,
			Department:      models.Department{DepartmentName: "Production Office"},
			Vendor:          models.Vendor{Name: "Zenith Supply"},
			StartRentalDate: start,
			EndRentalDate:   start.AddDate(0, 0, 3),
		},
	}
}

func TestRentalsEmptyQueryMatchesEverything(t *testing.T) {
	matches, total, skipped := Rentals(sampleRentals(), "")
	if len(matches) != 2 {
		t.Fatalf("expected all rentals, got %d", len(matches))
	}
	if total != 250 {
		t.Fatalf("total = %.2f, want 250", total)
	}
	if skipped != 1 {
		t.Fatalf("skipped = %d, want 1", skipped)
	}
}

func TestRentalsNoMatch(t *testing.T) {
	matches, total, _ := Rentals(sampleRentals(), "helicopter")
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(matches))
	}
	if total != 0 {
		t.Fatalf("total = %.2f, want 0", total)
	}
}

func TestRentalsMatchesAcrossFields(t *testing.T) {
	// case-insensitive, OR over the field set
	for _, q := range []string{"CRANE", "lopez", "acme", "main_equipment", "250.00"} {
		matches, _, _ := Rentals(sampleRentals(), q)
		if len(matches) != 1 || matches[0].RentalItem != "Camera Crane" {
			t.Fatalf("query %q: expected the crane rental, got %d matches", q, len(matches))
		}
	}

	matches, _, _ := Rentals(sampleRentals(), "office")
	if len(matches) != 1 || matches[0].RentalItem != "Office Printer" {
		t.Fatalf("query 'office': expected the printer rental")
	}
}

func TestVendorsMatchNameAndCategory(t *testing.T) {
	grip := models.VendorCategory{Name: "Grip & Electric"}
	vendors := []models.Vendor{
		{Name: "Acme Rentals", Category: &grip},
		{Name: "Zenith Supply"},
	}

	matches := Vendors(vendors, "electric")
	if len(matches) != 1 || matches[0].Name != "Acme Rentals" {
		t.Fatalf("expected category match for Acme, got %d", len(matches))
	}

	if got := Vendors(vendors, ""); len(got) != 2 {
		t.Fatalf("empty query should match all vendors, got %d", len(got))
	}
}

func TestVehiclesMatchAndSum(t *testing.T) {
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	vehicles := []models.Vehicle{
		{
			Driver:          "Sam Reed",
			VehicleType:     "Sprinter Van",
			PlateNumber:     "7ABC123",
			PurchaseOrder:   "PO-77",
			Department:      models.Department{DepartmentName: "Transport"},
			Vendor:          models.Vendor{Name: "Acme Rentals"},
			StartRentalDate: start,
			EndRentalDate:   start.AddDate(0, 0, 5),
			POTotal:         1200,
		},
		{
			Driver:          "Kim Wu",
			VehicleType:     "Box Truck",
			PlateNumber:     "9XYZ987",
			PurchaseOrder:   "PO-88",
			Department:      models.Department{DepartmentName: "Set Dec"},
			Vendor:          models.Vendor{Name: "Zenith Supply"},
			StartRentalDate: start,
			EndRentalDate:   start.AddDate(0, 0, 5),
			POTotal:         800,
		},
	}

	matches, total := Vehicles(vehicles, "sprinter")
	if len(matches) != 1 || matches[0].Driver != "Sam Reed" {
		t.Fatalf("expected the sprinter, got %d matches", len(matches))
	}
	if total != 1200 {
		t.Fatalf("total = %.2f, want 1200", total)
	}

	_, total = Vehicles(vehicles, "")
	if total != 2000 {
		t.Fatalf("full total = %.2f, want 2000", total)
	}
}
