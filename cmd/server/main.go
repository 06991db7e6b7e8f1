package main

import (
	"rentaltracker-backend/internal/audit"
	"rentaltracker-backend/internal/auth"
	"rentaltracker-backend/internal/config"
	"rentaltracker-backend/internal/database"
	"rentaltracker-backend/internal/logger"
	"rentaltracker-backend/internal/metrics"
	"rentaltracker-backend/internal/models"
	"rentaltracker-backend/internal/production"
	"rentaltracker-backend/internal/rental"
	"rentaltracker-backend/internal/service"
	"rentaltracker-backend/internal/vehicle"
	"rentaltracker-backend/internal/vendor"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg)
	defer logger.Get().Sync()

	database.Init(cfg)
	metrics.Register()

	app := fiber.New(fiber.Config{
		AppName:      "rentaltracker-backend",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(logger.RequestLogger())
	app.Use(metrics.Middleware())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	registerRoutes(app, cfg)

	logger.Get().Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Get().Fatal("server stopped", zap.Error(err))
	}
}

func registerRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	// auth
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// everything past this point requires a valid token
	api.Use(auth.JWTMiddleware(cfg))
	adminOnly := auth.RequireRole(models.RoleAdmin)

	api.Get("/auth/me", auth.MeHandler())
	api.Get("/users", adminOnly, auth.ListUsersHandler())

	// reference data: deletes are admin-only, they cascade
	productions := api.Group("/productions")
	productions.Post("/", production.CreateProductionHandler())
	productions.Get("/", production.ListProductionsHandler())
	productions.Put("/:id", production.UpdateProductionHandler())
	productions.Delete("/:id", adminOnly, production.DeleteProductionHandler())

	departments := api.Group("/departments")
	departments.Post("/", production.CreateDepartmentHandler())
	departments.Get("/", production.ListDepartmentsHandler())
	departments.Put("/:id", production.UpdateDepartmentHandler())
	departments.Delete("/:id", adminOnly, production.DeleteDepartmentHandler())

	categories := api.Group("/vendor-categories")
	categories.Post("/", vendor.CreateCategoryHandler())
	categories.Get("/", vendor.ListCategoriesHandler())
	categories.Put("/:id", vendor.UpdateCategoryHandler())
	categories.Delete("/:id", adminOnly, vendor.DeleteCategoryHandler())

	vendors := api.Group("/vendors")
	vendors.Post("/", vendor.CreateVendorHandler())
	vendors.Get("/", vendor.ListVendorsHandler())
	vendors.Get("/search", vendor.SearchVendorsHandler())
	vendors.Get("/export/:format", vendor.ExportVendorsHandler())
	vendors.Get("/:id", vendor.GetVendorHandler())
	vendors.Put("/:id", vendor.UpdateVendorHandler())
	vendors.Delete("/:id", adminOnly, vendor.DeleteVendorHandler())

	rentals := api.Group("/rentals")
	rentals.Post("/", rental.CreateRentalHandler())
	rentals.Get("/", rental.ListRentalsHandler())
	rentals.Get("/search", rental.SearchRentalsHandler())
	rentals.Get("/export/:format", rental.ExportRentalsHandler())
	rentals.Get("/category/:category", rental.RentalCategoryHandler())
	rentals.Get("/category/:category/export/:format", rental.ExportRentalCategoryHandler())
	rentals.Get("/:id", rental.GetRentalHandler())
	rentals.Get("/:id/export/:format", rental.ExportRentalDetailHandler())
	rentals.Put("/:id", rental.UpdateRentalHandler())
	rentals.Delete("/:id", rental.DeleteRentalHandler())

	services := api.Group("/services")
	services.Post("/", service.CreateServiceHandler())
	services.Get("/", service.ListServicesHandler())
	services.Get("/search", service.SearchServicesHandler())
	services.Get("/export/:format", service.ExportServicesHandler())
	services.Get("/:id", service.GetServiceHandler())
	services.Get("/:id/export/:format", service.ExportServiceDetailHandler())
	services.Put("/:id", service.UpdateServiceHandler())
	services.Delete("/:id", service.DeleteServiceHandler())

	vehicles := api.Group("/vehicles")
	vehicles.Post("/", vehicle.CreateVehicleHandler())
	vehicles.Get("/", vehicle.ListVehiclesHandler())
	vehicles.Get("/search", vehicle.SearchVehiclesHandler())
	vehicles.Get("/export/:format", vehicle.ExportVehiclesHandler())
	vehicles.Get("/:id", vehicle.GetVehicleHandler())
	vehicles.Get("/:id/export/:format", vehicle.ExportVehicleDetailHandler())
	vehicles.Put("/:id", vehicle.UpdateVehicleHandler())
	vehicles.Delete("/:id", vehicle.DeleteVehicleHandler())

	api.Get("/audit-logs", adminOnly, audit.ListAuditLogsHandler())
}

// errorHandler shapes every error as {"error": "..."} with the right status.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		logger.Get().Error("unhandled error", zap.Error(err))
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
