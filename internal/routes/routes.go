package routes

import (
	"time"

	"github.com/clinicore/clinic-backend/internal/config"
	"github.com/clinicore/clinic-backend/internal/handlers"
	"github.com/clinicore/clinic-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	patientHandler *handlers.PatientHandler,
	doctorHandler *handlers.DoctorHandler,
	diagnosisHistoryHandler *handlers.DiagnosisHistoryHandler,
	diagnosticHandler *handlers.DiagnosticHandler,
	labResultHandler *handlers.LabResultHandler,
	appointmentHandler *handlers.AppointmentHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth (public). Stricter rate limit: 10 req/min per IP

	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - apply middleware to individual routes
	// so it doesn't affect the public auth endpoints above
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Get("/me/appointments", middleware.JWTProtected(cfg), appointmentHandler.Mine)

	// Admin console (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))

	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.CreateAdmin)
	admin.Get("/users/:id", userHandler.Get)
	admin.Put("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)

	admin.Get("/patients", patientHandler.List)
	admin.Post("/patients", patientHandler.Create)
	admin.Get("/patients/:id", patientHandler.Get)
	admin.Put("/patients/:id", patientHandler.Update)
	admin.Delete("/patients/:id", patientHandler.Delete)

	admin.Get("/doctors", doctorHandler.List)
	admin.Post("/doctors", doctorHandler.Create)
	admin.Get("/doctors/:id", doctorHandler.Get)
	admin.Put("/doctors/:id", doctorHandler.Update)
	admin.Delete("/doctors/:id", doctorHandler.Delete)

	admin.Get("/diagnosis-histories", diagnosisHistoryHandler.List)
	admin.Post("/diagnosis-histories", diagnosisHistoryHandler.Create)
	admin.Get("/diagnosis-histories/:id", diagnosisHistoryHandler.Get)
	admin.Put("/diagnosis-histories/:id", diagnosisHistoryHandler.Update)
	admin.Delete("/diagnosis-histories/:id", diagnosisHistoryHandler.Delete)

	admin.Get("/diagnostics", diagnosticHandler.List)
	admin.Post("/diagnostics", diagnosticHandler.Create)
	admin.Get("/diagnostics/:id", diagnosticHandler.Get)
	admin.Put("/diagnostics/:id", diagnosticHandler.Update)
	admin.Delete("/diagnostics/:id", diagnosticHandler.Delete)

	admin.Get("/lab-results", labResultHandler.List)
	admin.Post("/lab-results", labResultHandler.Create)
	admin.Get("/lab-results/:id", labResultHandler.Get)
	admin.Put("/lab-results/:id", labResultHandler.Update)
	admin.Delete("/lab-results/:id", labResultHandler.Delete)

	admin.Get("/appointments", appointmentHandler.List)
	admin.Post("/appointments", appointmentHandler.Create)
	admin.Get("/appointments/:id", appointmentHandler.Get)
	admin.Put("/appointments/:id", appointmentHandler.Update)
	admin.Delete("/appointments/:id", appointmentHandler.Delete)
}
