package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/materiales-api/internal/application/analytics"
	"github.com/jhoicas/materiales-api/internal/application/auth"
	"github.com/jhoicas/materiales-api/internal/application/usecase"
	"github.com/jhoicas/materiales-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC  *usecase.MaterialUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todo requiere Bearer Token salvo el
// login; eliminar materiales exige además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Materials
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/labels", materialHandler.Labels)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", RequireRole(entity.RoleAdmin), materialHandler.Delete)
	materials.Get("/:id/qrcode", materialHandler.QRCode)

	// Conferencia (scan de QR)
	scanHandler := NewScanHandler(deps.MaterialUC)
	protected.Post("/scan", scanHandler.Scan)

	// Dashboard y proyecciones de ubicación
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
	sectors := protected.Group("/sectors")
	sectors.Get("/", dashboardHandler.Sectors)
	sectors.Get("/:sector/rooms", dashboardHandler.Rooms)
	sectors.Get("/:sector/rooms/:room/materials", dashboardHandler.MaterialsAt)
}
