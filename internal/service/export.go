package service

import (
	"fmt"

	"rentaltracker-backend/internal/export"
	"rentaltracker-backend/internal/models"
	"rentaltracker-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

// GET /api/services/export/:format (txt, csv, pdf)
func ExportServicesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		services, err := loadAllServices()
		if err != nil {
			return err
		}

		format := c.Params("format")
		var t report.Table
		if format == "csv" || format == "xlsx" {
			t = report.ServiceTable(services)
		} else {
			t = report.ServiceReport(services)
		}
		return export.Send(c, t, format, "service_report")
	}
}

// GET /api/services/:id/export/:format (txt, pdf)
func ExportServiceDetailHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := loadService(c.Params("id"))
		if err != nil {
			return err
		}

		format := c.Params("format")
		if format != "txt" && format != "pdf" {
			return fiber.NewError(fiber.StatusBadRequest, "unknown export format")
		}

		t := report.ServiceReport([]models.Service{s})
		return export.Send(c, t, format, fmt.Sprintf("service_%d", s.ID))
	}
}
