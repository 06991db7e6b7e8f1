package production

import (
	"strings"

	"rentaltracker-backend/internal/database"
	"rentaltracker-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DepartmentRequest struct {
	DepartmentName string `json:"department_name"`
}

type DepartmentResponse struct {
	ID             uint   `json:"id"`
	DepartmentName string `json:"department_name"`
}

// POST /api/departments
func CreateDepartmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DepartmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.DepartmentName = strings.TrimSpace(body.DepartmentName)
		if body.DepartmentName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "department_name is required")
		}

		d := models.Department{DepartmentName: body.DepartmentName}
		if err := database.DB.Create(&d).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not save department")
		}

		return c.Status(fiber.StatusCreated).JSON(DepartmentResponse{ID: d.ID, DepartmentName: d.DepartmentName})
	}
}

// GET /api/departments
func ListDepartmentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var departments []models.Department
		if err := database.DB.Order("department_name asc").Find(&departments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list departments")
		}

		res := make([]DepartmentResponse, 0, len(departments))
		for _, d := range departments {
			res = append(res, DepartmentResponse{ID: d.ID, DepartmentName: d.DepartmentName})
		}
		return c.JSON(res)
	}
}

// PUT /api/departments/:id
func UpdateDepartmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var d models.Department
		if err := database.DB.First(&d, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "department not found")
		}

		var body DepartmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		name := strings.TrimSpace(body.DepartmentName)
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "department_name cannot be empty")
		}
		d.DepartmentName = name

		if err := database.DB.Save(&d).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update department")
		}

		return c.JSON(DepartmentResponse{ID: d.ID, DepartmentName: d.DepartmentName})
	}
}

// DELETE /api/departments/:id (cascades to rentals/services/vehicles)
func DeleteDepartmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Department{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete department")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
