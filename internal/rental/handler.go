package rental

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rentaltracker-backend/internal/audit"
	"rentaltracker-backend/internal/database"
	"rentaltracker-backend/internal/logger"
	"rentaltracker-backend/internal/models"
	"rentaltracker-backend/internal/report"
	"rentaltracker-backend/internal/search"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RentalRequest struct {
	RentalItem      string   `json:"rental_item"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Title           string   `json:"title"`
	DepartmentID    uint     `json:"department_id"`
	ProductionID    uint     `json:"production_id"`
	VendorID        uint     `json:"vendor_id"`
	SceneInfo       *string  `json:"scene_info"`
	StartRentalDate string   `json:"start_rental_date"` // "2006-01-02"
	EndRentalDate   string   `json:"end_rental_date"`
	DropOffLocation *string  `json:"drop_off_location"`
	DropOffTime     *string  `json:"drop_off_time"`
	PickUpLocation  *string  `json:"pick_up_location"`
	PickUpTime      *string  `json:"pick_up_time"`
	RentalType      string   `json:"rental_type"`
	Category        string   `json:"category"`
	AddlTaxFees     *float64 `json:"addl_tax_fees"`
	TotalCost       *float64 `json:"total_cost"`
	PurchaseOrder   *string  `json:"purchase_order"`
	QuoteNumber     *string  `json:"quote_number"`
	PaymentType     string   `json:"payment_type"`
	Notes1          *string  `json:"notes1"`
	Notes2          *string  `json:"notes2"`
	Notes3          *string  `json:"notes3"`
}

// RentalResponse carries the stored record plus every derived date field the
// detail screens show.
type RentalResponse struct {
	ID              uint     `json:"id"`
	RentalItem      string   `json:"rental_item"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Title           string   `json:"title"`
	DepartmentID    uint     `json:"department_id"`
	Department      string   `json:"department"`
	ProductionID    uint     `json:"production_id"`
	Production      string   `json:"production"`
	VendorID        uint     `json:"vendor_id"`
	Vendor          string   `json:"vendor"`
	SceneInfo       *string  `json:"scene_info"`
	StartRentalDate string   `json:"start_rental_date"`
	EndRentalDate   string   `json:"end_rental_date"`
	DropOffLocation *string  `json:"drop_off_location"`
	DropOffTime     *string  `json:"drop_off_time"`
	PickUpLocation  *string  `json:"pick_up_location"`
	PickUpTime      *string  `json:"pick_up_time"`
	RentalType      string   `json:"rental_type"`
	Category        string   `json:"category"`
	AddlTaxFees     *float64 `json:"addl_tax_fees"`
	TotalCost       *float64 `json:"total_cost"`
	PurchaseOrder   *string  `json:"purchase_order"`
	QuoteNumber     *string  `json:"quote_number"`
	PaymentType     string   `json:"payment_type"`
	Notes1          *string  `json:"notes1"`
	Notes2          *string  `json:"notes2"`
	Notes3          *string  `json:"notes3"`

	StartDayOfWeek string `json:"start_day_of_week"`
	EndDayOfWeek   string `json:"end_day_of_week"`
	RentalDuration *int   `json:"rental_duration"`
	DaysToWeeks    *int   `json:"days_to_weeks"`
	DaysToMonths   *int   `json:"days_to_months"`
	DaysTillRental *int   `json:"days_till_rental"`
	DaysPastRental *int   `json:"days_past_rental"`
}

func toRentalResponse(r models.Rental) RentalResponse {
	today := time.Now()
	res := RentalResponse{
		ID:              r.ID,
		RentalItem:      r.RentalItem,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Title:           r.Title,
		DepartmentID:    r.DepartmentID,
		Department:      r.Department.DepartmentName,
		ProductionID:    r.ProductionID,
		Production:      r.Production.Label(),
		VendorID:        r.VendorID,
		Vendor:          r.Vendor.Name,
		SceneInfo:       r.SceneInfo,
		StartRentalDate: r.StartRentalDate.Format("2006-01-02"),
		EndRentalDate:   r.EndRentalDate.Format("2006-01-02"),
		DropOffLocation: r.DropOffLocation,
		DropOffTime:     r.DropOffTime,
		PickUpLocation:  r.PickUpLocation,
		PickUpTime:      r.PickUpTime,
		RentalType:      string(r.RentalType),
		Category:        string(r.Category),
		AddlTaxFees:     r.AddlTaxFees,
		TotalCost:       r.TotalCost,
		PurchaseOrder:   r.PurchaseOrder,
		QuoteNumber:     r.QuoteNumber,
		PaymentType:     string(r.PaymentType),
		Notes1:          r.Notes1,
		Notes2:          r.Notes2,
		Notes3:          r.Notes3,
		StartDayOfWeek:  r.StartDayOfWeek(),
		EndDayOfWeek:    r.EndDayOfWeek(),
	}
	res.RentalDuration = optional(r.RentalDuration())
	res.DaysToWeeks = optional(r.DaysToWeeks())
	res.DaysToMonths = optional(r.DaysToMonths())
	res.DaysTillRental = optional(r.DaysTillRental(today))
	res.DaysPastRental = optional(r.DaysPastRental(today))
	return res
}

func optional(v int, ok bool) *int {
	if !ok {
		return nil
	}
	return &v
}

func applyRentalRequest(r *models.Rental, body RentalRequest) error {
	body.RentalItem = strings.TrimSpace(body.RentalItem)
	body.FirstName = strings.TrimSpace(body.FirstName)
	body.LastName = strings.TrimSpace(body.LastName)
	body.Title = strings.TrimSpace(body.Title)
	if body.RentalItem == "" || body.FirstName == "" || body.LastName == "" || body.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "rental_item, first_name, last_name and title are required")
	}

	var department models.Department
	if err := database.DB.First(&department, "id = ?", body.DepartmentID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "department not found")
	}
	var production models.Production
	if err := database.DB.First(&production, "id = ?", body.ProductionID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "production not found")
	}
	var vendor models.Vendor
	if err := database.DB.First(&vendor, "id = ?", body.VendorID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "vendor not found")
	}

	start, err := time.Parse("2006-01-02", body.StartRentalDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "start_rental_date must be 'YYYY-MM-DD'")
	}
	end, err := time.Parse("2006-01-02", body.EndRentalDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "end_rental_date must be 'YYYY-MM-DD'")
	}

	category, ok := models.ParseRentalCategory(body.Category)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown rental category")
	}

	r.RentalItem = body.RentalItem
	r.FirstName = body.FirstName
	r.LastName = body.LastName
	r.Title = body.Title
	r.DepartmentID = body.DepartmentID
	r.ProductionID = body.ProductionID
	r.VendorID = body.VendorID
	r.SceneInfo = body.SceneInfo
	r.StartRentalDate = start
	r.EndRentalDate = end
	r.DropOffLocation = body.DropOffLocation
	r.DropOffTime = body.DropOffTime
	r.PickUpLocation = body.PickUpLocation
	r.PickUpTime = body.PickUpTime
	r.RentalType = models.RentalType(body.RentalType)
	r.Category = category
	r.AddlTaxFees = body.AddlTaxFees
	r.TotalCost = body.TotalCost
	r.PurchaseOrder = body.PurchaseOrder
	r.QuoteNumber = body.QuoteNumber
	r.PaymentType = models.PaymentType(body.PaymentType)
	r.Notes1 = body.Notes1
	r.Notes2 = body.Notes2
	r.Notes3 = body.Notes3

	return validationResponse(r.Validate())
}

// validationResponse maps a model validation failure to a field-tagged 400.
func validationResponse(err error) error {
	if err == nil {
		return nil
	}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: %s", verr.Field, verr.Message))
	}
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

func loadRental(id string) (models.Rental, error) {
	var r models.Rental
	err := database.DB.
		Preload("Department").Preload("Production").Preload("Vendor").
		First(&r, "id = ?", id).Error
	if err != nil {
		return r, fiber.NewError(fiber.StatusNotFound, "rental not found")
	}
	return r, nil
}

// POST /api/rentals
func CreateRentalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := audit.UserInfo(c)
		if err != nil {
			return err
		}

		var body RentalRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		var r models.Rental
		if err := applyRentalRequest(&r, body); err != nil {
			return err
		}

		if err := database.DB.Create(&r).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not save rental")
		}

		database.DB.Preload("Department").Preload("Production").Preload("Vendor").First(&r, r.ID)

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "rental",
			EntityID:    r.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("created rental %q", r.RentalItem),
			After:       r,
		})

		return c.Status(fiber.StatusCreated).JSON(toRentalResponse(r))
	}
}

// GET /api/rentals (ordered by rental item, all categories)
func ListRentalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rentals []models.Rental
		err := database.DB.
			Preload("Department").Preload("Production").Preload("Vendor").
			Order("rental_item asc").Find(&rentals).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list rentals")
		}

		total, skipped := report.SumRentalTotals(rentals)
		warnSkipped("rental list", skipped)

		res := make([]RentalResponse, 0, len(rentals))
		for _, r := range rentals {
			res = append(res, toRentalResponse(r))
		}
		return c.JSON(fiber.Map{"rentals": res, "total_sum": total})
	}
}

// GET /api/rentals/:id
func GetRentalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := loadRental(c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(toRentalResponse(r))
	}
}

// GET /api/rentals/category/:category — one handler for all five equipment
// classes, the category is just a path parameter.
func RentalCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, ok := models.ParseRentalCategory(c.Params("category"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "unknown rental category")
		}

		var rentals []models.Rental
		err := database.DB.
			Preload("Department").Preload("Production").Preload("Vendor").
			Where("category = ?", category).
			Order("start_rental_date asc").Find(&rentals).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list rentals")
		}

		total, skipped := report.SumRentalTotals(rentals)
		warnSkipped("rental category "+string(category), skipped)

		res := make([]RentalResponse, 0, len(rentals))
		for _, r := range rentals {
			res = append(res, toRentalResponse(r))
		}
		return c.JSON(fiber.Map{"category": string(category), "rentals": res, "total_sum": total})
	}
}

// GET /api/rentals/search?q=camera
func SearchRentalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("q")

		var rentals []models.Rental
		err := database.DB.
			Preload("Department").Preload("Production").Preload("Vendor").
			Find(&rentals).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not search rentals")
		}

		matches, total, skipped := search.Rentals(rentals, q)
		warnSkipped("rental search", skipped)

		res := make([]RentalResponse, 0, len(matches))
		for _, r := range matches {
			res = append(res, toRentalResponse(r))
		}
		return c.JSON(fiber.Map{"query": q, "rentals": res, "total_sum": total})
	}
}

// PUT /api/rentals/:id
func UpdateRentalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := audit.UserInfo(c)
		if err != nil {
			return err
		}

		r, err := loadRental(c.Params("id"))
		if err != nil {
			return err
		}
		before := r

		var body RentalRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if err := applyRentalRequest(&r, body); err != nil {
			return err
		}

		if err := database.DB.Save(&r).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update rental")
		}

		database.DB.Preload("Department").Preload("Production").Preload("Vendor").First(&r, r.ID)

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "rental",
			EntityID:    r.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("updated rental %q", r.RentalItem),
			Before:      before,
			After:       r,
		})

		return c.JSON(toRentalResponse(r))
	}
}

// DELETE /api/rentals/:id
func DeleteRentalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := audit.UserInfo(c)
		if err != nil {
			return err
		}

		r, err := loadRental(c.Params("id"))
		if err != nil {
			return err
		}

		if err := database.DB.Delete(&models.Rental{}, "id = ?", r.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete rental")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "rental",
			EntityID:    r.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("deleted rental %q", r.RentalItem),
			Before:      r,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func warnSkipped(context string, skipped int) {
	if skipped > 0 {
		logger.Get().Warn("records without total excluded from sum",
			zap.String("context", context),
			zap.Int("skipped", skipped))
	}
}
