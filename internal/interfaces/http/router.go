package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Parqueadero-api/internal/application/auth"
	"github.com/jhoicas/Parqueadero-api/internal/application/usecase"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	SessionUC  *usecase.SessionUseCase
	ReportUC   *usecase.ShiftReportUseCase
	DeletionUC *usecase.DeletionUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleOperador)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Categorías: lectura para todos, escritura y borrado solo admin
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.DeletionUC)
	categories.Get("/", anyRole, categoryHandler.List)
	categories.Get("/:id", anyRole, categoryHandler.GetByID)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Post("/:id/deletion", adminOnly, categoryHandler.RequestDeletion)

	// Sesiones
	sessions := protected.Group("/sessions")
	sessionHandler := NewSessionHandler(deps.SessionUC, deps.DeletionUC)
	sessions.Get("/", anyRole, sessionHandler.List)
	sessions.Post("/", anyRole, sessionHandler.Open)
	sessions.Get("/:id", anyRole, sessionHandler.Detail)
	sessions.Post("/:id/close", anyRole, sessionHandler.Close)
	sessions.Post("/:id/deletion", adminOnly, sessionHandler.RequestDeletion)

	// Confirmaciones de borrado
	deletions := protected.Group("/deletions", adminOnly)
	deletionHandler := NewDeletionHandler(deps.DeletionUC)
	deletions.Post("/:cid/confirm", deletionHandler.Confirm)
	deletions.Post("/:cid/dismiss", deletionHandler.Dismiss)
	deletions.Post("/:cid/click", deletionHandler.Click)

	// Reportes
	reports := protected.Group("/reports", anyRole)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/shift", reportHandler.Shift)
}
