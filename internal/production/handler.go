package production

import (
	"strings"

	"rentaltracker-backend/internal/database"
	"rentaltracker-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProductionRequest struct {
	ProductionCompany string `json:"production_company"`
	ShowName          string `json:"show_name"`
}

type ProductionResponse struct {
	ID                uint   `json:"id"`
	ProductionCompany string `json:"production_company"`
	ShowName          string `json:"show_name"`
}

func toProductionResponse(p models.Production) ProductionResponse {
	return ProductionResponse{ID: p.ID, ProductionCompany: p.ProductionCompany, ShowName: p.ShowName}
}

// POST /api/productions
func CreateProductionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.ProductionCompany = strings.TrimSpace(body.ProductionCompany)
		body.ShowName = strings.TrimSpace(body.ShowName)
		if body.ProductionCompany == "" || body.ShowName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "production_company and show_name are required")
		}

		p := models.Production{ProductionCompany: body.ProductionCompany, ShowName: body.ShowName}
		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not save production")
		}

		return c.Status(fiber.StatusCreated).JSON(toProductionResponse(p))
	}
}

// GET /api/productions
func ListProductionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var productions []models.Production
		if err := database.DB.Order("production_company asc").Find(&productions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list productions")
		}

		res := make([]ProductionResponse, 0, len(productions))
		for _, p := range productions {
			res = append(res, toProductionResponse(p))
		}
		return c.JSON(res)
	}
}

// PUT /api/productions/:id
func UpdateProductionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Production
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "production not found")
		}

		var body ProductionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if v := strings.TrimSpace(body.ProductionCompany); v != "" {
			p.ProductionCompany = v
		}
		if v := strings.TrimSpace(body.ShowName); v != "" {
			p.ShowName = v
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update production")
		}

		return c.JSON(toProductionResponse(p))
	}
}

// DELETE /api/productions/:id (cascades to rentals/services/vehicles)
func DeleteProductionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Production{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete production")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
