package dto

import "github.com/shopspring/decimal"

// GeneratePlanRequest parámetros de una corrida de planeación.
// AsOf congela el "hoy" de la corrida (YYYY-MM-DD); vacío = fecha actual.
type GeneratePlanRequest struct {
	Strategy      string          `json:"strategy"`
	AvailableCash decimal.Decimal `json:"available_cash"`
	AsOf          string          `json:"as_of,omitempty"`
}

// SimulatePaymentRequest evalúa la consecuencia de pagar una factura en una
// fecha candidata (análisis what-if, no compromete nada).
type SimulatePaymentRequest struct {
	InvoiceID     string `json:"invoice_id"`
	ScheduledDate string `json:"scheduled_date"` // YYYY-MM-DD
}

// PlanLineResponse una factura dentro del plan.
type PlanLineResponse struct {
	InvoiceID     string          `json:"invoice_id"`
	InvoiceNumber string          `json:"invoice_number"`
	SupplierName  string          `json:"supplier_name"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date"`
	Score         float64         `json:"score"`
	Status        string          `json:"status"`
	ScheduledDate string          `json:"scheduled_date,omitempty"`
	DaysLate      int             `json:"days_late,omitempty"`
	Penalty       decimal.Decimal `json:"penalty"`
	DaysEarly     int             `json:"days_early,omitempty"`
	Discount      decimal.Decimal `json:"discount"`
}

// PaymentPlanResponse plan de pagos completo de una corrida.
type PaymentPlanResponse struct {
	RunID          string             `json:"run_id"`
	Strategy       string             `json:"strategy"`
	GeneratedAt    string             `json:"generated_at"`
	AvailableCash  decimal.Decimal    `json:"available_cash"`
	TotalScheduled decimal.Decimal    `json:"total_scheduled"`
	TotalPenalties decimal.Decimal    `json:"total_penalties"`
	TotalDiscounts decimal.Decimal    `json:"total_discounts"`
	RemainingCash  decimal.Decimal    `json:"remaining_cash"`
	Lines          []PlanLineResponse `json:"lines"`
}

// ScoreResponse puntaje de una factura en el ranking.
type ScoreResponse struct {
	InvoiceID     string          `json:"invoice_id"`
	InvoiceNumber string          `json:"invoice_number"`
	SupplierName  string          `json:"supplier_name"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date"`
	Score         float64         `json:"score"`
}

// RankingResponse ranking de facturas bajo una estrategia.
type RankingResponse struct {
	Strategy string          `json:"strategy"`
	AsOf     string          `json:"as_of"`
	Scores   []ScoreResponse `json:"scores"`
}

// SimulationResponse consecuencia financiera de una fecha de pago candidata.
type SimulationResponse struct {
	InvoiceID     string          `json:"invoice_id"`
	ScheduledDate string          `json:"scheduled_date"`
	DueDate       string          `json:"due_date"`
	DaysLate      int             `json:"days_late"`
	Penalty       decimal.Decimal `json:"penalty"`
	DaysEarly     int             `json:"days_early"`
	Discount      decimal.Decimal `json:"discount"`
}

// OutstandingInvoiceResponse factura pendiente tal como la entrega la capa de datos.
type OutstandingInvoiceResponse struct {
	InvoiceID            string          `json:"invoice_id"`
	InvoiceNumber        string          `json:"invoice_number"`
	SupplierName         string          `json:"supplier_name"`
	Importance           string          `json:"importance"`
	Amount               decimal.Decimal `json:"amount"`
	DueDate              string          `json:"due_date"`
	LatePaymentPenalty   decimal.Decimal `json:"late_payment_penalty"`
	EarlyPaymentDiscount decimal.Decimal `json:"early_payment_discount"`
}
