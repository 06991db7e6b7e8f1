package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rentaltracker-backend/internal/audit"
	"rentaltracker-backend/internal/database"
	"rentaltracker-backend/internal/models"
	"rentaltracker-backend/internal/report"
	"rentaltracker-backend/internal/search"

	"github.com/gofiber/fiber/v2"
)

type VehicleRequest struct {
	Driver          string   `json:"driver"`
	ProductionID    *uint    `json:"production_id"`
	Title           string   `json:"title"`
	DepartmentID    uint     `json:"department_id"`
	VendorID        uint     `json:"vendor_id"`
	VehicleType     string   `json:"vehicle_type"`
	PlateNumber     string   `json:"plate_number"`
	Make            string   `json:"make"`
	Model           string   `json:"model"`
	Color           string   `json:"color"`
	StartRentalDate string   `json:"start_rental_date"` // "2006-01-02"
	EndRentalDate   string   `json:"end_rental_date"`
	ContractNumber  *string  `json:"contract_number"`
	PurchaseOrder   string   `json:"purchase_order"`
	DailyRate       *float64 `json:"daily_rate"`
	WeeklyRate      *float64 `json:"weekly_rate"`
	MonthlyRate     *float64 `json:"monthly_rate"`
	Tax             *float64 `json:"tax"`
	MiscFees        *float64 `json:"misc_fees"`
	POTotal         float64  `json:"po_total"`
	OnRental        bool     `json:"on_rental"`
	RentalStatus    string   `json:"rental_status"`
	NewSwapped      bool     `json:"new_swapped"`
	Notes1          *string  `json:"notes1"`
	Notes2          *string  `json:"notes2"`
	Notes3          *string  `json:"notes3"`
}

// VehicleResponse includes the tier-derived rate, tax and total; they are null
// when the rental has no billable duration.
type VehicleResponse struct {
	ID              uint     `json:"id"`
	Driver          string   `json:"driver"`
	ProductionID    *uint    `json:"production_id"`
	Production      string   `json:"production"`
	Title           string   `json:"title"`
	DepartmentID    uint     `json:"department_id"`
	Department      string   `json:"department"`
	VendorID        uint     `json:"vendor_id"`
	Vendor          string   `json:"vendor"`
	VehicleType     string   `json:"vehicle_type"`
	PlateNumber     string   `json:"plate_number"`
	Make            string   `json:"make"`
	Model           string   `json:"model"`
	Color           string   `json:"color"`
	StartRentalDate string   `json:"start_rental_date"`
	EndRentalDate   string   `json:"end_rental_date"`
	ContractNumber  *string  `json:"contract_number"`
	PurchaseOrder   string   `json:"purchase_order"`
	DailyRate       *float64 `json:"daily_rate"`
	WeeklyRate      *float64 `json:"weekly_rate"`
	MonthlyRate     *float64 `json:"monthly_rate"`
	Tax             *float64 `json:"tax"`
	MiscFees        *float64 `json:"misc_fees"`
	POTotal         float64  `json:"po_total"`
	OnRental        bool     `json:"on_rental"`
	RentalStatus    string   `json:"rental_status"`
	NewSwapped      bool     `json:"new_swapped"`
	Notes1          *string  `json:"notes1"`
	Notes2          *string  `json:"notes2"`
	Notes3          *string  `json:"notes3"`

	RentalDuration *int     `json:"rental_duration"`
	CalcRates      *float64 `json:"calc_rates"`
	CalcTax        *float64 `json:"calc_tax"`
	CalcTotal      *float64 `json:"calc_total"`
}

func toVehicleResponse(v models.Vehicle) VehicleResponse {
	res := VehicleResponse{
		ID:              v.ID,
		Driver:          v.Driver,
		ProductionID:    v.ProductionID,
		Title:           v.Title,
		DepartmentID:    v.DepartmentID,
		Department:      v.Department.DepartmentName,
		VendorID:        v.VendorID,
		Vendor:          v.Vendor.Name,
		VehicleType:     v.VehicleType,
		PlateNumber:     v.PlateNumber,
		Make:            v.Make,
		Model:           v.Model,
		Color:           v.Color,
		StartRentalDate: v.StartRentalDate.Format("2006-01-02"),
		EndRentalDate:   v.EndRentalDate.Format("2006-01-02"),
		ContractNumber:  v.ContractNumber,
		PurchaseOrder:   v.PurchaseOrder,
		DailyRate:       v.DailyRate,
		WeeklyRate:      v.WeeklyRate,
		MonthlyRate:     v.MonthlyRate,
		Tax:             v.Tax,
		MiscFees:        v.MiscFees,
		POTotal:         v.POTotal,
		OnRental:        v.OnRental,
		RentalStatus:    string(v.RentalStatus),
		NewSwapped:      v.NewSwapped,
		Notes1:          v.Notes1,
		Notes2:          v.Notes2,
		Notes3:          v.Notes3,
	}
	if v.Production != nil {
		res.Production = v.Production.Label()
	}
	if d, ok := v.RentalDuration(); ok {
		res.RentalDuration = &d
	}
	if rate, ok := v.CalcRates(); ok {
		res.CalcRates = &rate
		if tax, ok := v.CalcTax(taxRateOrZero(v.Tax)); ok {
			res.CalcTax = &tax
		}
		if total, ok := v.CalcTotal(); ok {
			res.CalcTotal = &total
		}
	}
	return res
}

func taxRateOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func applyVehicleRequest(v *models.Vehicle, body VehicleRequest) error {
	body.Driver = strings.TrimSpace(body.Driver)
	body.Title = strings.TrimSpace(body.Title)
	body.VehicleType = strings.TrimSpace(body.VehicleType)
	body.PlateNumber = strings.TrimSpace(body.PlateNumber)
	body.PurchaseOrder = strings.TrimSpace(body.PurchaseOrder)
	if body.Driver == "" || body.Title == "" || body.VehicleType == "" ||
		body.PlateNumber == "" || body.PurchaseOrder == "" {
		return fiber.NewError(fiber.StatusBadRequest,
			"driver, title, vehicle_type, plate_number and purchase_order are required")
	}

	var department models.Department
	if err := database.DB.First(&department, "id = ?", body.DepartmentID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "department not found")
	}
	var vendor models.Vendor
	if err := database.DB.First(&vendor, "id = ?", body.VendorID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "vendor not found")
	}
	if body.ProductionID != nil {
		var production models.Production
		if err := database.DB.First(&production, "id = ?", *body.ProductionID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "production not found")
		}
	}

	start, err := time.Parse("2006-01-02", body.StartRentalDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "start_rental_date must be 'YYYY-MM-DD'")
	}
	end, err := time.Parse("2006-01-02", body.EndRentalDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "end_rental_date must be 'YYYY-MM-DD'")
	}

	status := models.VehicleOnRental
	if body.RentalStatus != "" {
		parsed, ok := models.ParseVehicleStatus(body.RentalStatus)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "unknown rental status")
		}
		status = parsed
	}

	v.Driver = body.Driver
	v.ProductionID = body.ProductionID
	v.Title = body.Title
	v.DepartmentID = body.DepartmentID
	v.VendorID = body.VendorID
	v.VehicleType = body.VehicleType
	v.PlateNumber = body.PlateNumber
	v.Make = body.Make
	v.Model = body.Model
	v.Color = body.Color
	v.StartRentalDate = start
	v.EndRentalDate = end
	v.ContractNumber = body.ContractNumber
	v.PurchaseOrder = body.PurchaseOrder
	v.DailyRate = body.DailyRate
	v.WeeklyRate = body.WeeklyRate
	v.MonthlyRate = body.MonthlyRate
	v.Tax = body.Tax
	v.MiscFees = body.MiscFees
	v.POTotal = body.POTotal
	v.OnRental = body.OnRental
	v.RentalStatus = status
	v.NewSwapped = body.NewSwapped
	v.Notes1 = body.Notes1
	v.Notes2 = body.Notes2
	v.Notes3 = body.Notes3

	if err := v.Validate(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: %s", verr.Field, verr.Message))
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func loadVehicle(id string) (models.Vehicle, error) {
	var v models.Vehicle
	err := database.DB.
		Preload("Department").Preload("Production").Preload("Vendor").
		First(&v, "id = ?", id).Error
	if err != nil {
		return v, fiber.NewError(fiber.StatusNotFound, "vehicle not found")
	}
	return v, nil
}

// POST /api/vehicles
func CreateVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := audit.UserInfo(c)
		if err != nil {
			return err
		}

		var body VehicleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		var v models.Vehicle
		if err := applyVehicleRequest(&v, body); err != nil {
			return err
		}

		if err := database.DB.Create(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not save vehicle")
		}

		database.DB.Preload("Department").Preload("Production").Preload("Vendor").First(&v, v.ID)

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "vehicle",
			EntityID:    v.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("created vehicle %s (%s)", v.PlateNumber, v.Driver),
			After:       v,
		})

		return c.Status(fiber.StatusCreated).JSON(toVehicleResponse(v))
	}
}

// GET /api/vehicles?status=on_rental (status filter optional)
func ListVehiclesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.
			Preload("Department").Preload("Production").Preload("Vendor").
			Order("start_rental_date asc")

		if status := c.Query("status"); status != "" {
			parsed, ok := models.ParseVehicleStatus(status)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "unknown rental status")
			}
			q = q.Where("rental_status = ?", parsed)
		}

		var vehicles []models.Vehicle
		if err := q.Find(&vehicles).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list vehicles")
		}

		total, _ := report.SumVehicleTotals(vehicles)

		res := make([]VehicleResponse, 0, len(vehicles))
		for _, v := range vehicles {
			res = append(res, toVehicleResponse(v))
		}
		return c.JSON(fiber.Map{"vehicles": res, "total_sum": total})
	}
}

// GET /api/vehicles/:id
func GetVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := loadVehicle(c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(toVehicleResponse(v))
	}
}

// GET /api/vehicles/search?q=sprinter
func SearchVehiclesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("q")

		vehicles, err := loadAllVehicles()
		if err != nil {
			return err
		}

		matches, total := search.Vehicles(vehicles, q)
		res := make([]VehicleResponse, 0, len(matches))
		for _, v := range matches {
			res = append(res, toVehicleResponse(v))
		}
		return c.JSON(fiber.Map{"query": q, "vehicles": res, "total_sum": total})
	}
}

// PUT /api/vehicles/:id
func UpdateVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := audit.UserInfo(c)
		if err != nil {
			return err
		}

		v, err := loadVehicle(c.Params("id"))
		if err != nil {
			return err
		}
		before := v

		var body VehicleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if err := applyVehicleRequest(&v, body); err != nil {
			return err
		}

		if err := database.DB.Save(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update vehicle")
		}

		database.DB.Preload("Department").Preload("Production").Preload("Vendor").First(&v, v.ID)

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "vehicle",
			EntityID:    v.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("updated vehicle %s (%s)", v.PlateNumber, v.Driver),
			Before:      before,
			After:       v,
		})

		return c.JSON(toVehicleResponse(v))
	}
}

// DELETE /api/vehicles/:id
func DeleteVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := audit.UserInfo(c)
		if err != nil {
			return err
		}

		v, err := loadVehicle(c.Params("id"))
		if err != nil {
			return err
		}

		if err := database.DB.Delete(&models.Vehicle{}, "id = ?", v.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete vehicle")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "vehicle",
			EntityID:    v.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("deleted vehicle %s (%s)", v.PlateNumber, v.Driver),
			Before:      v,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func loadAllVehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := database.DB.
		Preload("Department").Preload("Production").Preload("Vendor").
		Find(&vehicles).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "could not load vehicles")
	}
	return vehicles, nil
}
