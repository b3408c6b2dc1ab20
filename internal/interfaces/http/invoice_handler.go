package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pagos-pro/internal/application/dto"
	"github.com/tu-usuario/pagos-pro/internal/application/payments"
)

// InvoiceHandler expone las facturas pendientes de la empresa (protegido).
type InvoiceHandler struct {
	planUC *payments.PlanUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(planUC *payments.PlanUseCase) *InvoiceHandler {
	return &InvoiceHandler{planUC: planUC}
}

// ListOutstanding devuelve todas las facturas OUTSTANDING de la empresa del token.
// GET /api/invoices/outstanding
func (h *InvoiceHandler) ListOutstanding(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	invoices, err := h.planUC.ListOutstanding(c.Context(), companyID)
	if err != nil {
		return planError(c, err)
	}
	return c.JSON(invoices)
}
