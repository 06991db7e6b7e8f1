package auth

import (
	"strings"

	"rentaltracker-backend/internal/config"
	"rentaltracker-backend/internal/database"
	"rentaltracker-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterHandler creates an account. The very first account becomes the
// admin, everyone after that is a coordinator.
func RegisterHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Name == "" || body.Email == "" || len(body.Password) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "name, email and a password of at least 8 characters are required")
		}

		var existing models.User
		if err := database.DB.First(&existing, "email = ?", body.Email).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "email is already registered")
		} else if err != gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusInternalServerError, "could not check existing users")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not hash password")
		}

		role := models.RoleCoordinator
		var count int64
		database.DB.Model(&models.User{}).Count(&count)
		if count == 0 {
			role = models.RoleAdmin
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create user")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not generate token")
		}

		return c.Status(fiber.StatusCreated).JSON(LoginResponse{
			Token: token,
			User:  UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
		})
	}
}

func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		var user models.User
		if err := database.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(body.Email))).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not generate token")
		}

		return c.JSON(LoginResponse{
			Token: token,
			User:  UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
		})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idVal := c.Locals(CtxUserIDKey)
		id, ok := idVal.(uint)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "missing user information")
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}

		return c.JSON(UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
	}
}

// ListUsersHandler is admin-only, ordered by name like the original user list.
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("name asc").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list users")
		}

		res := make([]UserResponse, 0, len(users))
		for _, u := range users {
			res = append(res, UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
		}
		return c.JSON(res)
	}
}
