package service

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

type ServiceRequest struct {
	ServiceName      string   `json:"service_name"`
	Description      *string  `json:"description"`
	Rate             *float64 `json:"rate"`
	Total            *float64 `json:"total"`
	Requestor        string   `json:"requestor"`
	Title            *string  `json:"title"`
	DepartmentID     *uint    `json:"department_id"`
	ProductionID     *uint    `json:"production_id"`
	ServiceLocation  *string  `json:"service_location"`
	StartServiceDate *string  `json:"start_service_date"` // "2006-01-02"
	EndServiceDate   *string  `json:"end_service_date"`
	VendorID         *uint    `json:"vendor_id"`
	PurchaseOrder    *string  `json:"purchase_order"`
	PaymentType      string   `json:"payment_type"`
	Notes1           *string  `json:"notes1"`
	Notes2           *string  `json:"notes2"`
	Notes3           *string  `json:"notes3"`
}

type ServiceResponse struct {
	ID               uint     `json:"id"`
	ServiceName      string   `json:"service_name"`
	Description      *string  `json:"description"`
	Rate             *float64 `json:"rate"`
	Total            *float64 `json:"total"`
	Requestor        string   `json:"requestor"`
	Title            *string  `json:"title"`
	DepartmentID     *uint    `json:"department_id"`
	Department       string   `json:"department"`
	ProductionID     *uint    `json:"production_id"`
	Production       string   `json:"production"`
	ServiceLocation  *string  `json:"service_location"`
	StartServiceDate *string  `json:"start_service_date"`
	EndServiceDate   *string  `json:"end_service_date"`
	VendorID         *uint    `json:"vendor_id"`
	Vendor           string   `json:"vendor"`
	PurchaseOrder    *string  `json:"purchase_order"`
	PaymentType      string   `json:"payment_type"`
	Notes1           *string  `json:"notes1"`
	Notes2           *string  `json:"notes2"`
	Notes3           *string  `json:"notes3"`

	StartDayOfWeek   string `json:"start_day_of_week"`
	EndDayOfWeek     string `json:"end_day_of_week"`
	ServiceDuration  *int   `json:"service_duration"`
	DaysToWeeks      *int   `json:"days_to_weeks"`
	DaysTillService  *int   `json:"days_till_service"`
	DaysToEndService *int   `json:"days_to_end_service"`
	DaysPastService  *int   `json:"days_past_service"`
}

func toServiceResponse(s models.Service) ServiceResponse {
	today := time.Now()
	res := ServiceResponse{
		ID:              s.ID,
		ServiceName:     s.ServiceName,
		Description:     s.Description,
		Rate:            s.Rate,
		Total:           s.Total,
		Requestor:       s.Requestor,
		Title:           s.Title,
		DepartmentID:    s.DepartmentID,
		ProductionID:    s.ProductionID,
		ServiceLocation: s.ServiceLocation,
		VendorID:        s.VendorID,
		PurchaseOrder:   s.PurchaseOrder,
		PaymentType:     string(s.PaymentType),
		Notes1:          s.Notes1,
		Notes2:          s.Notes2,
		Notes3:          s.Notes3,
		StartDayOfWeek:  s.StartDayOfWeek(),
		EndDayOfWeek:    s.EndDayOfWeek(),
	}
	if s.Department != nil {
		res.Department = s.Department.DepartmentName
	}
	if s.Production != nil {
		res.Production = s.Production.Label()
	}
	if s.Vendor != nil {
		res.Vendor = s.Vendor.Name
	}
	if s.StartServiceDate != nil {
		d := s.StartServiceDate.Format("2006-01-02")
		res.StartServiceDate = &d
	}
	if s.EndServiceDate != nil {
		d := s.EndServiceDate.Format("2006-01-02")
		res.EndServiceDate = &d
	}
	res.ServiceDuration = optional(s.ServiceDuration())
	res.DaysToWeeks = optional(s.DaysToWeeks())
	res.DaysTillService = optional(s.DaysTillService(today))
	res.DaysToEndService = optional(s.DaysToEndService(today))
	res.DaysPastService = optional(s.DaysPastService(today))
	return res
}

func optional(v int, ok bool) *int {
	if !ok {
		return nil
	}
	return &v
}

func parseDatePtr(s *string, field string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, field+" must be 'YYYY-MM-DD'")
	}
	return &d, nil
}

func applyServiceRequest(s *models.Service, body ServiceRequest) error {
	body.ServiceName = strings.TrimSpace(body.ServiceName)
	body.Requestor = strings.TrimSpace(body.Requestor)
	if body.ServiceName == "" || body.Requestor == "" {
		return fiber.NewError(fiber.StatusBadRequest, "service_name and requestor are required")
	}

	if body.DepartmentID != nil {
		var department models.Department
		if err := database.DB.First(&department, "id = ?", *body.DepartmentID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "department not found")
		}
	}
	if body.ProductionID != nil {
		var production models.Production
		if err := database.DB.First(&production, "id = ?", *body.ProductionID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "production not found")
		}
	}
	if body.VendorID != nil {
		var vendor models.Vendor
		if err := database.DB.First(&vendor, "id = ?", *body.VendorID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "vendor not found")
		}
	}

	start, err := parseDatePtr(body.StartServiceDate, "start_service_date")
	if err != nil {
		return err
	}
	end, err := parseDatePtr(body.EndServiceDate, "end_service_date")
	if err != nil {
		return err
	}

	s.ServiceName = body.ServiceName
	s.Description = body.Description
	s.Rate = body.Rate
	s.Total = body.Total
	s.Requestor = body.Requestor
	s.Title = body.Title
	s.DepartmentID = body.DepartmentID
	s.ProductionID = body.ProductionID
	s.ServiceLocation = body.ServiceLocation
	s.StartServiceDate = start
	s.EndServiceDate = end
	s.VendorID = body.VendorID
	s.PurchaseOrder = body.PurchaseOrder
	s.PaymentType = models.PaymentType(body.PaymentType)
	s.Notes1 = body.Notes1
	s.Notes2 = body.Notes2
	s.Notes3 = body.Notes3

	if err := s.Validate(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: %s", verr.Field, verr.Message))
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func loadService(id string) (models.Service, error) {
	var s models.Service
	err := database.DB.
		Preload("Department").Preload("Production").Preload("Vendor").
		First(&s, "id = ?", id).Error
	if err != nil {
		return s, fiber.NewError(fiber.StatusNotFound, "service not found")
	}
	return s, nil
}

// POST /api/services
func CreateServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := audit.UserInfo(c)
		if err != nil {
			return err
		}

		var body ServiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		var s models.Service
		if err := applyServiceRequest(&s, body); err != nil {
			return err
		}

		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not save service")
		}

		database.DB.Preload("Department").Preload("Production").Preload("Vendor").First(&s, s.ID)

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "service",
			EntityID:    s.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("created service %q", s.ServiceName),
			After:       s,
		})

		return c.Status(fiber.StatusCreated).JSON(toServiceResponse(s))
	}
}

// GET /api/services (sorted by start date, undated records last)
func ListServicesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var services []models.Service
		err := database.DB.
			Preload("Department").Preload("Production").Preload("Vendor").
			Order("start_service_date asc NULLS LAST").
			Find(&services).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list services")
		}

		total, skipped := report.SumServiceTotals(services)
		warnSkipped("service list", skipped)

		res := make([]ServiceResponse, 0, len(services))
		for _, s := range services {
			res = append(res, toServiceResponse(s))
		}
		return c.JSON(fiber.Map{"services": res, "total_sum": total})
	}
}

// GET /api/services/:id
func GetServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := loadService(c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(toServiceResponse(s))
	}
}

// GET /api/services/search?q=catering
func SearchServicesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("q")

		services, err := loadAllServices()
		if err != nil {
			return err
		}

		matches, total, skipped := search.Services(services, q)
		warnSkipped("service search", skipped)

		res := make([]ServiceResponse, 0, len(matches))
		for _, s := range matches {
			res = append(res, toServiceResponse(s))
		}
		return c.JSON(fiber.Map{"query": q, "services": res, "total_sum": total})
	}
}

// PUT /api/services/:id
func UpdateServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := audit.UserInfo(c)
		if err != nil {
			return err
		}

		s, err := loadService(c.Params("id"))
		if err != nil {
			return err
		}
		before := s

		var body ServiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if err := applyServiceRequest(&s, body); err != nil {
			return err
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update service")
		}

		database.DB.Preload("Department").Preload("Production").Preload("Vendor").First(&s, s.ID)

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "service",
			EntityID:    s.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("updated service %q", s.ServiceName),
			Before:      before,
			After:       s,
		})

		return c.JSON(toServiceResponse(s))
	}
}

// DELETE /api/services/:id
func DeleteServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, userName, err := audit.UserInfo(c)
		if err != nil {
			return err
		}

		s, err := loadService(c.Params("id"))
		if err != nil {
			return err
		}

		if err := database.DB.Delete(&models.Service{}, "id = ?", s.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete service")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "service",
			EntityID:    s.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("deleted service %q", s.ServiceName),
			Before:      s,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func loadAllServices() ([]models.Service, error) {
	var services []models.Service
	err := database.DB.
		Preload("Department").Preload("Production").Preload("Vendor").
		Find(&services).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "could not load services")
	}
	return services, nil
}

func warnSkipped(context string, skipped int) {
	if skipped > 0 {
		logger.Get().Warn("records without total excluded from sum",
			zap.String("context", context),
			zap.Int("skipped", skipped))
	}
}
