package audit

import (
	"encoding/json"
	"fmt"

	"rentaltracker-backend/internal/auth"
	"rentaltracker-backend/internal/database"
	"rentaltracker-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog appends one audit entry. Snapshots marshal to JSON, "null" when a
// side is absent (jsonb rejects the empty string).
func WriteLog(opts LogOptions) error {
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("could not write audit log: %w", err)
	}

	return nil
}

// UserInfo resolves the authenticated user's id and name for audit entries.
func UserInfo(c *fiber.Ctx) (uint, string, error) {
	idVal := c.Locals(auth.CtxUserIDKey)
	id, ok := idVal.(uint)
	if !ok {
		return 0, "", fiber.NewError(fiber.StatusForbidden, "missing user information")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "user not found")
	}

	return id, user.Name, nil
}
