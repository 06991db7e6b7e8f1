package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"rentaltracker-backend/internal/models"
)

func money(v float64) *float64 { return &v }

func rentalFixture(item string, category models.RentalCategory, start time.Time, total *float64) models.Rental {
	return models.Rental{
		RentalItem:      item,
		FirstName:       "Ann",
		LastName:        "Lee",
		Title:           "Coordinator",
		Department:      models.Department{DepartmentName: "Camera"},
		Vendor:          models.Vendor{Name: "Acme Rentals"},
		Category:        category,
		StartRentalDate: start,
		EndRentalDate:   start.AddDate(0, 0, 5),
		TotalCost:       total,
	}
}

func TestRentalTableFiltersAndSums(t *testing.T) {
	jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	rentals := []models.Rental{
		rentalFixture("dolly", models.CategoryMainEquipment, feb, money(200)),
		rentalFixture("crane", models.CategoryMainEquipment, jan, money(100)),
		rentalFixture("copier", models.CategoryOfficeEquipment, jan, money(999)),
	}

	table := RentalTable(rentals, models.CategoryMainEquipment)

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	// sorted by start date ascending
	if table.Rows[0][0] != "crane" || table.Rows[1][0] != "dolly" {
		t.Fatalf("rows out of order: %q then %q", table.Rows[0][0], table.Rows[1][0])
	}
	if table.Total != 300 {
		t.Fatalf("total = %.2f, want 300", table.Total)
	}
	if table.SkippedTotals != 0 {
		t.Fatalf("skipped = %d, want 0", table.SkippedTotals)
	}
}

func TestRentalTableEmptyCategoryMeansAll(t *testing.T) {
	jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	rentals := []models.Rental{
		rentalFixture("crane", models.CategoryMainEquipment, jan, money(100)),
		rentalFixture("copier", models.CategoryOfficeEquipment, jan, nil),
	}

	table := RentalTable(rentals, "")
	if len(table.Rows) != 2 {
		t.Fatalf("expected all rentals, got %d rows", len(table.Rows))
	}
	if table.Total != 100 {
		t.Fatalf("total = %.2f, want 100 (nil totals count as zero)", table.Total)
	}
	if table.SkippedTotals != 1 {
		t.Fatalf("skipped = %d, want 1", table.SkippedTotals)
	}
}

func TestServiceTableSortsNilDatesLast(t *testing.T) {
	mar := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	services := []models.Service{
		{ServiceName: "undated", Requestor: "A"},
		{ServiceName: "dated", Requestor: "B", StartServiceDate: &mar, Total: money(75)},
	}

	table := ServiceTable(services)
	if table.Rows[0][0] != "dated" || table.Rows[1][0] != "undated" {
		t.Fatalf("expected dated record first, got %q then %q", table.Rows[0][0], table.Rows[1][0])
	}
	if table.Total != 75 || table.SkippedTotals != 1 {
		t.Fatalf("total = %.2f skipped = %d, want 75 and 1", table.Total, table.SkippedTotals)
	}
}

func TestVendorTableSortedByName(t *testing.T) {
	vendors := []models.Vendor{
		{Name: "Zenith Grip", Address: "1 Main St", Phone: "555-1", Email: "z@x.com"},
		{Name: "Acme Rentals", Address: "2 Elm St", Phone: "555-2", Email: "a@x.com"},
	}

	table := VendorTable(vendors)
	if table.Rows[0][0] != "Acme Rentals" || table.Rows[1][0] != "Zenith Grip" {
		t.Fatalf("vendors not sorted: %q then %q", table.Rows[0][0], table.Rows[1][0])
	}
	if table.HasTotal {
		t.Fatalf("vendor list should not carry a money total")
	}
}

func TestWriteCSVLayout(t *testing.T) {
	jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	table := RentalTable([]models.Rental{
		rentalFixture("crane", models.CategoryMainEquipment, jan, money(100)),
	}, models.CategoryMainEquipment)

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header plus one record
	if len(lines) != 2 {
		t.Fatalf("expected 2 CSV lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Rental Item,") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "crane") || !strings.Contains(lines[1], "100.00") {
		t.Fatalf("record line incomplete: %q", lines[1])
	}
}

func TestWriteTextIncludesTotal(t *testing.T) {
	jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	table := RentalReport([]models.Rental{
		rentalFixture("crane", models.CategoryMainEquipment, jan, money(100)),
	}, "")

	var buf bytes.Buffer
	if err := table.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Rental Item: crane") {
		t.Fatalf("text output missing record line:\n%s", out)
	}
	if !strings.Contains(out, "Total: $100.00") {
		t.Fatalf("text output missing total:\n%s", out)
	}
}
