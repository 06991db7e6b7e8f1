// Package report builds the row/column tables behind every list, category view
// and export. One builder per record type replaces the per-category view
// duplication: the category is a parameter, not a call site.
package report

import (
	"fmt"
	"sort"
	"time"

	"rentaltracker-backend/internal/models"
)

// Table is an ordered set of export rows plus the money total over them.
// Writers (text/CSV/PDF/XLSX) only ever see this.
type Table struct {
	Title         string
	Columns       []string
	Rows          [][]string
	HasTotal      bool
	Total         float64
	SkippedTotals int
}

var rentalColumns = []string{
	"Rental Item", "First Name", "Last Name", "Title", "Department", "Vendor",
	"Purpose", "Start Rental", "End Rental", "Rental Type", "Category",
	"Total Cost", "Purchase Order", "Quote Number",
}

var rentalDetailColumns = []string{
	"Rental Item", "First Name", "Last Name", "Title", "Department", "Production",
	"Vendor", "Purpose/Scene Info", "Start Rental Date", "End Rental Date",
	"Drop Off Location", "Drop Off Time", "Pick Up Location", "Pick Up Time",
	"Rental Type", "Category", "Additional Tax Fees", "Total Cost",
	"Purchase Order", "Quote Number", "Notes 1", "Notes 2", "Notes 3",
}

var serviceColumns = []string{
	"Service", "Description", "Total", "Start Date", "End Date", "Vendor",
	"Service Location", "Requestor", "Title", "Department", "Purchase Order",
	"Payment Type",
}

var serviceDetailColumns = []string{
	"Service", "Description", "Rate", "Total", "Start Service Date",
	"End Service Date", "Vendor", "Service Location", "Requestor", "Title",
	"Production", "Department", "Purchase Order", "Payment Type",
	"Notes 1", "Notes 2", "Notes 3",
}

var vehicleColumns = []string{
	"Driver", "Title", "Department", "Vendor", "Vehicle Type", "Plate Number",
	"Make", "Model", "Color", "Start Rental", "End Rental", "Contract #",
	"PO Number", "Daily Rate", "Weekly Rate", "Monthly Rate", "Tax",
	"Misc Fees", "PO Total",
}

var vendorColumns = []string{
	"Vendor Name", "Services", "Address", "Contact", "Phone", "Email", "Notes",
}

// RentalTable builds the fixed-column rental report. An empty category means
// all rentals; otherwise only records with that tag, sorted by start date
// ascending, with their total-cost sum.
func RentalTable(rentals []models.Rental, category models.RentalCategory) Table {
	rentals = filterRentals(rentals, category)
	t := Table{Title: "Rental Report", Columns: rentalColumns, HasTotal: true}
	for _, r := range rentals {
		t.Rows = append(t.Rows, []string{
			r.RentalItem, r.FirstName, r.LastName, r.Title,
			r.Department.DepartmentName, r.Vendor.Name, str(r.SceneInfo),
			date(r.StartRentalDate), date(r.EndRentalDate),
			string(r.RentalType), string(r.Category),
			Money(r.TotalCost), str(r.PurchaseOrder), str(r.QuoteNumber),
		})
	}
	t.Total, t.SkippedTotals = SumRentalTotals(rentals)
	return t
}

// RentalReport is the long-form variant used by text and PDF exports, same
// filtering and ordering as RentalTable.
func RentalReport(rentals []models.Rental, category models.RentalCategory) Table {
	rentals = filterRentals(rentals, category)
	t := Table{Title: "Rental Report", Columns: rentalDetailColumns, HasTotal: true}
	for _, r := range rentals {
		t.Rows = append(t.Rows, []string{
			r.RentalItem, r.FirstName, r.LastName, r.Title,
			r.Department.DepartmentName, r.Production.Label(), r.Vendor.Name,
			str(r.SceneInfo), date(r.StartRentalDate), date(r.EndRentalDate),
			str(r.DropOffLocation), str(r.DropOffTime),
			str(r.PickUpLocation), str(r.PickUpTime),
			string(r.RentalType), string(r.Category),
			Money(r.AddlTaxFees), Money(r.TotalCost),
			str(r.PurchaseOrder), str(r.QuoteNumber),
			str(r.Notes1), str(r.Notes2), str(r.Notes3),
		})
	}
	t.Total, t.SkippedTotals = SumRentalTotals(rentals)
	return t
}

func ServiceTable(services []models.Service) Table {
	services = sortServices(services)
	t := Table{Title: "Service Report", Columns: serviceColumns, HasTotal: true}
	for _, s := range services {
		t.Rows = append(t.Rows, []string{
			s.ServiceName, str(s.Description), Money(s.Total),
			datePtr(s.StartServiceDate), datePtr(s.EndServiceDate),
			vendorName(s.Vendor), str(s.ServiceLocation), s.Requestor,
			str(s.Title), departmentName(s.Department),
			str(s.PurchaseOrder), string(s.PaymentType),
		})
	}
	t.Total, t.SkippedTotals = SumServiceTotals(services)
	return t
}

func ServiceReport(services []models.Service) Table {
	services = sortServices(services)
	t := Table{Title: "Service Report", Columns: serviceDetailColumns, HasTotal: true}
	for _, s := range services {
		t.Rows = append(t.Rows, []string{
			s.ServiceName, str(s.Description), Money(s.Rate), Money(s.Total),
			datePtr(s.StartServiceDate), datePtr(s.EndServiceDate),
			vendorName(s.Vendor), str(s.ServiceLocation), s.Requestor,
			str(s.Title), productionLabel(s.Production),
			departmentName(s.Department), str(s.PurchaseOrder),
			string(s.PaymentType), str(s.Notes1), str(s.Notes2), str(s.Notes3),
		})
	}
	t.Total, t.SkippedTotals = SumServiceTotals(services)
	return t
}

// VehicleTable covers both the list export and the detail export, vehicles
// share one column set.
func VehicleTable(vehicles []models.Vehicle) Table {
	vehicles = sortVehicles(vehicles)
	t := Table{Title: "Vehicle Report", Columns: vehicleColumns, HasTotal: true}
	for _, v := range vehicles {
		t.Rows = append(t.Rows, []string{
			v.Driver, v.Title, v.Department.DepartmentName, v.Vendor.Name,
			v.VehicleType, v.PlateNumber, v.Make, v.Model, v.Color,
			date(v.StartRentalDate), date(v.EndRentalDate),
			str(v.ContractNumber), v.PurchaseOrder,
			Money(v.DailyRate), Money(v.WeeklyRate), Money(v.MonthlyRate),
			Money(v.Tax), Money(v.MiscFees), fmt.Sprintf("%.2f", v.POTotal),
		})
	}
	t.Total, t.SkippedTotals = SumVehicleTotals(vehicles)
	return t
}

func VendorTable(vendors []models.Vendor) Table {
	sorted := make([]models.Vendor, len(vendors))
	copy(sorted, vendors)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	t := Table{Title: "Vendor List", Columns: vendorColumns}
	for _, v := range sorted {
		t.Rows = append(t.Rows, []string{
			v.Name, str(v.Services), v.Address, str(v.Contact),
			v.Phone, v.Email, str(v.Notes),
		})
	}
	return t
}

// SumRentalTotals adds up total_cost, treating absent totals as zero and
// reporting how many were skipped so callers can log it.
func SumRentalTotals(rentals []models.Rental) (total float64, skipped int) {
	for _, r := range rentals {
		if r.TotalCost == nil {
			skipped++
			continue
		}
		total += *r.TotalCost
	}
	return total, skipped
}

func SumServiceTotals(services []models.Service) (total float64, skipped int) {
	for _, s := range services {
		if s.Total == nil {
			skipped++
			continue
		}
		total += *s.Total
	}
	return total, skipped
}

func SumVehicleTotals(vehicles []models.Vehicle) (total float64, skipped int) {
	for _, v := range vehicles {
		total += v.POTotal
	}
	return total, 0
}

func filterRentals(rentals []models.Rental, category models.RentalCategory) []models.Rental {
	out := make([]models.Rental, 0, len(rentals))
	for _, r := range rentals {
		if category == "" || r.Category == category {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartRentalDate.Before(out[j].StartRentalDate)
	})
	return out
}

func sortServices(services []models.Service) []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	// records without a start date sort last
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].StartServiceDate, out[j].StartServiceDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return out
}

func sortVehicles(vehicles []models.Vehicle) []models.Vehicle {
	out := make([]models.Vehicle, len(vehicles))
	copy(out, vehicles)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartRentalDate.Before(out[j].StartRentalDate)
	})
	return out
}

// Money renders a nullable amount with two decimals, empty when absent.
func Money(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *f)
}

func date(t time.Time) string {
	return t.Format("2006-01-02")
}

func datePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return date(*t)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func vendorName(v *models.Vendor) string {
	if v == nil {
		return ""
	}
	return v.Name
}

func departmentName(d *models.Department) string {
	if d == nil {
		return ""
	}
	return d.DepartmentName
}

func productionLabel(p *models.Production) string {
	if p == nil {
		return ""
	}
	return p.Label()
}
