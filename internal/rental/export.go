package rental

import (
	"fmt"

	"rentaltracker-backend/internal/database"
	"rentaltracker-backend/internal/export"
	"rentaltracker-backend/internal/models"
	"rentaltracker-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

// tableFor picks the column set by output format: the grid formats get the
// compact table, the document formats the long-form report.
func tableFor(rentals []models.Rental, category models.RentalCategory, format string) report.Table {
	switch format {
	case "csv", "xlsx":
		return report.RentalTable(rentals, category)
	default:
		return report.RentalReport(rentals, category)
	}
}

// GET /api/rentals/export/:format (txt, csv, pdf, xlsx)
func ExportRentalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rentals, err := loadAllRentals()
		if err != nil {
			return err
		}

		format := c.Params("format")
		t := tableFor(rentals, "", format)
		return export.Send(c, t, format, "rental_report")
	}
}

// GET /api/rentals/category/:category/export/:format
func ExportRentalCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, ok := models.ParseRentalCategory(c.Params("category"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "unknown rental category")
		}

		rentals, err := loadAllRentals()
		if err != nil {
			return err
		}

		format := c.Params("format")
		t := tableFor(rentals, category, format)
		return export.Send(c, t, format, string(category)+"_report")
	}
}

// GET /api/rentals/:id/export/:format (txt, pdf)
func ExportRentalDetailHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := loadRental(c.Params("id"))
		if err != nil {
			return err
		}

		format := c.Params("format")
		if format != "txt" && format != "pdf" {
			return fiber.NewError(fiber.StatusBadRequest, "unknown export format")
		}

		t := report.RentalReport([]models.Rental{r}, "")
		return export.Send(c, t, format, fmt.Sprintf("rental_%d", r.ID))
	}
}

func loadAllRentals() ([]models.Rental, error) {
	var rentals []models.Rental
	err := database.DB.
		Preload("Department").Preload("Production").Preload("Vendor").
		Find(&rentals).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "could not load rentals")
	}
	return rentals, nil
}
