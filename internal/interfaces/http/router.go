package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pagos-pro/internal/application/payments"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PlanUC    *payments.PlanUseCase
	ExportUC  *payments.ExportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Facturas pendientes (protegido, cualquier rol)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.PlanUC)
	invoices.Get("/outstanding", invoiceHandler.ListOutstanding)

	// Planeación de pagos (protegido)
	plans := protected.Group("/plans")
	planHandler := NewPlanHandler(deps.PlanUC, deps.ExportUC)
	plans.Post("/", planHandler.Generate)
	plans.Get("/rank", planHandler.Rank)
	plans.Post("/simulate", planHandler.Simulate)

	// Exportaciones: documento de salida para tesorería, solo roles operativos
	exports := plans.Group("/export", RequireRole(RoleAdmin, RoleTesorero))
	exports.Post("/csv", planHandler.ExportCSV)
	exports.Post("/xml", planHandler.ExportXML)
	exports.Post("/pdf", planHandler.ExportPDF)
}
