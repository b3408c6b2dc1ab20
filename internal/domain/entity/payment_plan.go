package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una línea dentro del plan de pagos.
const (
	PlanLineScheduled = "SCHEDULED" // Fondeada: tiene fecha de pago asignada
	PlanLineDeferred  = "DEFERRED"  // Sin caja disponible en esta corrida
)

// PlanLine es el resultado de planear una factura: su puntaje de prioridad,
// la fecha asignada (si alcanzó la caja) y la consecuencia financiera de pagar
// en esa fecha (mora o descuento, nunca ambos).
type PlanLine struct {
	InvoiceID     string
	InvoiceNumber string
	SupplierName  string
	Amount        decimal.Decimal
	DueDate       time.Time
	Score         float64
	Status        string
	ScheduledDate time.Time // cero si Status == DEFERRED
	DaysLate      int
	Penalty       decimal.Decimal
	DaysEarly     int
	Discount      decimal.Decimal
}

// PaymentPlan es el resultado de una corrida de planeación. Es efímero:
// se recalcula en cada petición y nunca se persiste (los días restantes al
// vencimiento cambian a diario).
type PaymentPlan struct {
	RunID          string
	CompanyID      string
	Strategy       string
	GeneratedAt    time.Time
	AvailableCash  decimal.Decimal
	TotalScheduled decimal.Decimal
	TotalPenalties decimal.Decimal
	TotalDiscounts decimal.Decimal
	RemainingCash  decimal.Decimal
	Lines          []PlanLine
}
