package payments

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pagos-pro/internal/application/dto"
	"github.com/tu-usuario/pagos-pro/internal/domain"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
	"github.com/tu-usuario/pagos-pro/internal/domain/planning"
	"github.com/tu-usuario/pagos-pro/internal/domain/repository"
)

// PlanUseCase orquesta una corrida de planeación: trae las facturas pendientes,
// las puntúa bajo la estrategia elegida y asigna la caja disponible en orden
// de prioridad. Cada corrida es independiente e idempotente para los mismos
// (facturas, estrategia, asOf, caja); el plan resultante es efímero.
type PlanUseCase struct {
	invoiceRepo     repository.InvoiceRepository
	defaultStrategy planning.Strategy
}

// NewPlanUseCase construye el caso de uso de planeación.
func NewPlanUseCase(invoiceRepo repository.InvoiceRepository, defaultStrategy planning.Strategy) *PlanUseCase {
	if !defaultStrategy.IsKnown() {
		defaultStrategy = planning.StrategyByDueDate
	}
	return &PlanUseCase{invoiceRepo: invoiceRepo, defaultStrategy: defaultStrategy}
}

// GeneratePlan produce el plan de pagos de la empresa.
//
// Asignación (decisión de diseño registrada en DESIGN.md): greedy por puntaje
// descendente con desempate por ID ascendente; la fecha factible más temprana
// con una sola bolsa de caja es el mismo asOf, así que toda factura fondeada
// se programa para asOf y las que no caben quedan DEFERRED. Sin pagos
// parciales. Solo este paso tiene estado secuencial (el total comprometido);
// el puntaje y las consecuencias por factura son independientes entre sí.
func (uc *PlanUseCase) GeneratePlan(ctx context.Context, companyID string, req dto.GeneratePlanRequest) (*entity.PaymentPlan, error) {
	if companyID == "" {
		return nil, fmt.Errorf("%w: companyID requerido", domain.ErrInvalidInput)
	}
	if req.AvailableCash.IsNegative() {
		return nil, fmt.Errorf("%w: la caja disponible no puede ser negativa", domain.ErrInvalidInput)
	}

	asOf, err := uc.resolveAsOf(req.AsOf)
	if err != nil {
		return nil, err
	}
	strategy := uc.resolveStrategy(req.Strategy)

	invoices, err := uc.invoiceRepo.ListOutstanding(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar facturas pendientes: %w", err)
	}
	for _, inv := range invoices {
		if err := planning.ValidateInvoice(inv); err != nil {
			return nil, err
		}
	}

	ranked := rankInvoices(invoices, strategy, asOf)

	plan := &entity.PaymentPlan{
		RunID:          uuid.New().String(),
		CompanyID:      companyID,
		Strategy:       string(strategy),
		GeneratedAt:    asOf,
		AvailableCash:  req.AvailableCash,
		TotalScheduled: decimal.Zero,
		TotalPenalties: decimal.Zero,
		TotalDiscounts: decimal.Zero,
		Lines:          make([]entity.PlanLine, 0, len(ranked)),
	}

	committed := decimal.Zero
	for _, r := range ranked {
		line := entity.PlanLine{
			InvoiceID:     r.inv.ID,
			InvoiceNumber: r.inv.Number,
			SupplierName:  r.inv.SupplierName(),
			Amount:        r.inv.Amount,
			DueDate:       planning.AtMidnight(r.inv.DueDate),
			Score:         r.score,
			Penalty:       decimal.Zero,
			Discount:      decimal.Zero,
		}

		if committed.Add(r.inv.Amount).LessThanOrEqual(req.AvailableCash) {
			committed = committed.Add(r.inv.Amount)
			line.Status = entity.PlanLineScheduled
			line.ScheduledDate = asOf

			pen := planning.LatePenalty(r.inv, asOf)
			dis := planning.EarlyDiscount(r.inv, asOf)
			line.DaysLate = pen.DaysLate
			line.Penalty = pen.Penalty
			line.DaysEarly = dis.DaysEarly
			line.Discount = dis.Discount

			plan.TotalScheduled = plan.TotalScheduled.Add(r.inv.Amount)
			plan.TotalPenalties = plan.TotalPenalties.Add(pen.Penalty)
			plan.TotalDiscounts = plan.TotalDiscounts.Add(dis.Discount)
		} else {
			line.Status = entity.PlanLineDeferred
		}

		plan.Lines = append(plan.Lines, line)
	}
	plan.RemainingCash = req.AvailableCash.Sub(committed)

	return plan, nil
}

// DefaultStrategy devuelve la estrategia aplicada cuando la petición no indica una.
func (uc *PlanUseCase) DefaultStrategy() planning.Strategy {
	return uc.defaultStrategy
}

// RankInvoices devuelve solo el ranking por puntaje, sin asignar caja.
func (uc *PlanUseCase) RankInvoices(ctx context.Context, companyID, strategy string, asOf time.Time) ([]dto.ScoreResponse, error) {
	if companyID == "" {
		return nil, fmt.Errorf("%w: companyID requerido", domain.ErrInvalidInput)
	}

	invoices, err := uc.invoiceRepo.ListOutstanding(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar facturas pendientes: %w", err)
	}
	for _, inv := range invoices {
		if err := planning.ValidateInvoice(inv); err != nil {
			return nil, err
		}
	}

	ranked := rankInvoices(invoices, uc.resolveStrategy(strategy), planning.AtMidnight(asOf))

	out := make([]dto.ScoreResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, dto.ScoreResponse{
			InvoiceID:     r.inv.ID,
			InvoiceNumber: r.inv.Number,
			SupplierName:  r.inv.SupplierName(),
			Amount:        r.inv.Amount,
			DueDate:       r.inv.DueDate.Format(planning.DateLayout),
			Score:         r.score,
		})
	}
	return out, nil
}

// SimulatePayment evalúa hipotéticamente pagar una factura en una fecha
// candidata. No compromete caja ni modifica nada: sirve para comparar el
// resultado de varias fechas posibles sobre la misma factura.
func (uc *PlanUseCase) SimulatePayment(ctx context.Context, companyID string, req dto.SimulatePaymentRequest) (*dto.SimulationResponse, error) {
	if req.InvoiceID == "" {
		return nil, fmt.Errorf("%w: invoice_id requerido", domain.ErrInvalidInput)
	}
	scheduled, err := planning.ParseDate(req.ScheduledDate)
	if err != nil {
		return nil, err
	}

	inv, err := uc.invoiceRepo.GetByID(ctx, companyID, req.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("buscar factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	if err := planning.ValidateInvoice(inv); err != nil {
		return nil, err
	}

	pen := planning.LatePenalty(inv, scheduled)
	dis := planning.EarlyDiscount(inv, scheduled)

	return &dto.SimulationResponse{
		InvoiceID:     inv.ID,
		ScheduledDate: scheduled.Format(planning.DateLayout),
		DueDate:       inv.DueDate.Format(planning.DateLayout),
		DaysLate:      pen.DaysLate,
		Penalty:       pen.Penalty,
		DaysEarly:     dis.DaysEarly,
		Discount:      dis.Discount,
	}, nil
}

// ListOutstanding expone la lista cruda de facturas pendientes.
func (uc *PlanUseCase) ListOutstanding(ctx context.Context, companyID string) ([]dto.OutstandingInvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.ListOutstanding(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar facturas pendientes: %w", err)
	}
	out := make([]dto.OutstandingInvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.OutstandingInvoiceResponse{
			InvoiceID:            inv.ID,
			InvoiceNumber:        inv.Number,
			SupplierName:         inv.SupplierName(),
			Importance:           string(inv.ImportanceOrDefault()),
			Amount:               inv.Amount,
			DueDate:              inv.DueDate.Format(planning.DateLayout),
			LatePaymentPenalty:   inv.LatePenaltyRate(),
			EarlyPaymentDiscount: inv.EarlyDiscountRate(),
		})
	}
	return out, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

type scoredInvoice struct {
	inv   *entity.Invoice
	score float64
}

// rankInvoices puntúa y ordena: puntaje descendente, desempate por ID
// ascendente para que la corrida sea determinista.
func rankInvoices(invoices []*entity.Invoice, strategy planning.Strategy, asOf time.Time) []scoredInvoice {
	ranked := make([]scoredInvoice, 0, len(invoices))
	for _, inv := range invoices {
		ranked = append(ranked, scoredInvoice{inv: inv, score: planning.Score(inv, strategy, asOf)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].inv.ID < ranked[j].inv.ID
	})
	return ranked
}

// resolveAsOf congela el "hoy" de la corrida: el valor pedido o la fecha
// actual, siempre normalizado a medianoche.
func (uc *PlanUseCase) resolveAsOf(s string) (time.Time, error) {
	if s == "" {
		return planning.AtMidnight(time.Now()), nil
	}
	t, err := planning.ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// resolveStrategy aplica la estrategia por defecto si falta; un valor
// desconocido se conserva tal cual (el scorer degrada a la fórmula por
// defecto sin fallar).
func (uc *PlanUseCase) resolveStrategy(s string) planning.Strategy {
	if s == "" {
		return uc.defaultStrategy
	}
	return planning.Strategy(s)
}
