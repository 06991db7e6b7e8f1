package vehicle

import (
	"fmt"

	"rentaltracker-backend/internal/export"
	"rentaltracker-backend/internal/models"
	"rentaltracker-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

// GET /api/vehicles/export/:format (txt, csv)
func ExportVehiclesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		vehicles, err := loadAllVehicles()
		if err != nil {
			return err
		}

		t := report.VehicleTable(vehicles)
		return export.Send(c, t, c.Params("format"), "vehicle_report")
	}
}

// GET /api/vehicles/:id/export/:format (txt, pdf)
func ExportVehicleDetailHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := loadVehicle(c.Params("id"))
		if err != nil {
			return err
		}

		format := c.Params("format")
		if format != "txt" && format != "pdf" {
			return fiber.NewError(fiber.StatusBadRequest, "unknown export format")
		}

		t := report.VehicleTable([]models.Vehicle{v})
		return export.Send(c, t, format, fmt.Sprintf("vehicle_%d", v.ID))
	}
}
