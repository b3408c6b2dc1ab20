package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pagos-pro/internal/application/dto"
	"github.com/tu-usuario/pagos-pro/internal/application/payments"
	"github.com/tu-usuario/pagos-pro/internal/domain"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
	"github.com/tu-usuario/pagos-pro/internal/domain/planning"
)

// PlanHandler maneja las peticiones HTTP de planeación de pagos (protegido).
type PlanHandler struct {
	planUC   *payments.PlanUseCase
	exportUC *payments.ExportUseCase
}

// NewPlanHandler construye el handler.
func NewPlanHandler(planUC *payments.PlanUseCase, exportUC *payments.ExportUseCase) *PlanHandler {
	return &PlanHandler{planUC: planUC, exportUC: exportUC}
}

// Generate corre la planeación y devuelve el plan completo.
// POST /api/plans
func (h *PlanHandler) Generate(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.GeneratePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	plan, err := h.planUC.GeneratePlan(c.Context(), companyID, in)
	if err != nil {
		return planError(c, err)
	}
	return c.JSON(toPlanResponse(plan))
}

// Rank devuelve solo el ranking de facturas bajo una estrategia.
// GET /api/plans/rank?strategy=BY_DUE_DATE&as_of=2026-03-10
func (h *PlanHandler) Rank(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	// El "hoy" de la corrida se congela aquí, una sola vez por petición.
	asOf := planning.AtMidnight(time.Now())
	if s := c.Query("as_of"); s != "" {
		parsed, err := planning.ParseDate(s)
		if err != nil {
			return planError(c, err)
		}
		asOf = parsed
	}

	strategy := c.Query("strategy")
	scores, err := h.planUC.RankInvoices(c.Context(), companyID, strategy, asOf)
	if err != nil {
		return planError(c, err)
	}
	if strategy == "" {
		strategy = string(h.planUC.DefaultStrategy())
	}
	return c.JSON(dto.RankingResponse{
		Strategy: strategy,
		AsOf:     asOf.Format(planning.DateLayout),
		Scores:   scores,
	})
}

// Simulate evalúa la consecuencia de pagar una factura en una fecha candidata.
// POST /api/plans/simulate
func (h *PlanHandler) Simulate(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SimulatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.planUC.SimulatePayment(c.Context(), companyID, in)
	if err != nil {
		return planError(c, err)
	}
	return c.JSON(res)
}

// ExportCSV corre la planeación y descarga el plan como CSV.
// POST /api/plans/export/csv
func (h *PlanHandler) ExportCSV(c *fiber.Ctx) error {
	return h.export(c, "csv", "text/csv", h.exportUC.ExportCSV)
}

// ExportXML corre la planeación y descarga el plan como XML.
// POST /api/plans/export/xml
func (h *PlanHandler) ExportXML(c *fiber.Ctx) error {
	return h.export(c, "xml", "application/xml", h.exportUC.ExportXML)
}

// ExportPDF corre la planeación y descarga el plan como PDF.
// POST /api/plans/export/pdf
func (h *PlanHandler) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, "pdf", "application/pdf", h.exportUC.ExportPDF)
}

type exportFn func(ctx context.Context, companyID string, req dto.GeneratePlanRequest) ([]byte, *entity.PaymentPlan, error)

func (h *PlanHandler) export(c *fiber.Ctx, ext, contentType string, fn exportFn) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.GeneratePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	data, plan, err := fn(c.Context(), companyID, in)
	if err != nil {
		return planError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="plan-`+plan.RunID+`.`+ext+`"`)
	return c.Send(data)
}

// planError mapea errores de dominio a códigos HTTP.
func planError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInvoice):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_INVOICE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvoiceNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// toPlanResponse adapta la entidad al contrato JSON.
func toPlanResponse(plan *entity.PaymentPlan) dto.PaymentPlanResponse {
	out := dto.PaymentPlanResponse{
		RunID:          plan.RunID,
		Strategy:       plan.Strategy,
		GeneratedAt:    plan.GeneratedAt.Format(planning.DateLayout),
		AvailableCash:  plan.AvailableCash,
		TotalScheduled: plan.TotalScheduled,
		TotalPenalties: plan.TotalPenalties,
		TotalDiscounts: plan.TotalDiscounts,
		RemainingCash:  plan.RemainingCash,
		Lines:          make([]dto.PlanLineResponse, 0, len(plan.Lines)),
	}
	for _, l := range plan.Lines {
		lr := dto.PlanLineResponse{
			InvoiceID:     l.InvoiceID,
			InvoiceNumber: l.InvoiceNumber,
			SupplierName:  l.SupplierName,
			Amount:        l.Amount,
			DueDate:       l.DueDate.Format(planning.DateLayout),
			Score:         l.Score,
			Status:        l.Status,
			DaysLate:      l.DaysLate,
			Penalty:       l.Penalty,
			DaysEarly:     l.DaysEarly,
			Discount:      l.Discount,
		}
		if !l.ScheduledDate.IsZero() {
			lr.ScheduledDate = l.ScheduledDate.Format(planning.DateLayout)
		}
		out.Lines = append(out.Lines, lr)
	}
	return out
}
