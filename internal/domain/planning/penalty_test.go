package planning_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
	"github.com/tu-usuario/pagos-pro/internal/domain/planning"
)

// invoiceWithPenalty factura de monto amount con tasa anual de mora rate (%).
func invoiceWithPenalty(amount int64, rate float64, dueDate time.Time) *entity.Invoice {
	return &entity.Invoice{
		ID:      "fac-mora",
		Amount:  decimal.NewFromInt(amount),
		DueDate: dueDate,
		Supplier: &entity.Supplier{
			ID:                 "prov-mora",
			LatePaymentPenalty: decimal.NewFromFloat(rate),
		},
	}
}

func TestLatePenalty_PagoEnFechaNoCausaMora(t *testing.T) {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	inv := invoiceWithPenalty(1000, 5, due)

	res := planning.LatePenalty(inv, due)

	assert.Equal(t, 0, res.DaysLate, "pagar el día del vencimiento no es mora")
	assert.True(t, res.Penalty.IsZero(), "la mora debe ser cero, fue %s", res.Penalty)
}

func TestLatePenalty_PagoAnticipadoNoCausaMora(t *testing.T) {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	inv := invoiceWithPenalty(1000, 5, due)

	res := planning.LatePenalty(inv, due.AddDate(0, 0, -15))

	assert.Equal(t, 0, res.DaysLate, "los días de mora nunca son negativos")
	assert.True(t, res.Penalty.IsZero())
}

// Vector de referencia: 10 días tarde, 5% anual, monto 1000.
// 1000 * (5/365/100) * 10 = 1.3698... → 1.37
func TestLatePenalty_VectorDiezDiasTarde(t *testing.T) {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	inv := invoiceWithPenalty(1000, 5, due)

	res := planning.LatePenalty(inv, due.AddDate(0, 0, 10))

	assert.Equal(t, 10, res.DaysLate)
	got, _ := res.Penalty.Float64()
	assert.InDelta(t, 1.37, got, 0.1, "mora prorrateada diaria de la tasa anual")
}

func TestLatePenalty_EscalaLinealConElMonto(t *testing.T) {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	simple := invoiceWithPenalty(1000, 5, due)
	doble := invoiceWithPenalty(2000, 5, due)
	scheduled := due.AddDate(0, 0, 30)

	resSimple := planning.LatePenalty(simple, scheduled)
	resDoble := planning.LatePenalty(doble, scheduled)

	require.False(t, resSimple.Penalty.IsZero())
	assert.True(t, resDoble.Penalty.Equal(resSimple.Penalty.Mul(decimal.NewFromInt(2))),
		"doblar el monto debe doblar la mora: %s vs %s", resSimple.Penalty, resDoble.Penalty)
}

func TestLatePenalty_SinTasaPactadaEsCero(t *testing.T) {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	inv := invoiceWithPenalty(1000, 0, due)

	res := planning.LatePenalty(inv, due.AddDate(0, 0, 45))

	assert.Equal(t, 45, res.DaysLate, "los días de mora se reportan aunque la tasa sea cero")
	assert.True(t, res.Penalty.IsZero(), "sin tasa de mora no hay cobro")
}

func TestLatePenalty_ProveedorAusenteUsaTasaCero(t *testing.T) {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{ID: "huerfana", Amount: decimal.NewFromInt(500), DueDate: due}

	var res planning.PenaltyResult
	require.NotPanics(t, func() { res = planning.LatePenalty(inv, due.AddDate(0, 0, 5)) })
	assert.True(t, res.Penalty.IsZero())
}

// La hora del día no cambia los días de mora: ambas fechas se normalizan a
// medianoche antes de restar.
func TestLatePenalty_HoraDelDiaSeNormaliza(t *testing.T) {
	due := time.Date(2026, 3, 20, 23, 59, 0, 0, time.UTC)
	inv := invoiceWithPenalty(1000, 5, due)
	scheduled := time.Date(2026, 3, 21, 0, 1, 0, 0, time.UTC)

	res := planning.LatePenalty(inv, scheduled)

	assert.Equal(t, 1, res.DaysLate,
		"pagar al día calendario siguiente es exactamente 1 día de mora")
}

func TestLatePenalty_EsIdempotente(t *testing.T) {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	inv := invoiceWithPenalty(1234, 8.5, due)
	scheduled := due.AddDate(0, 0, 17)

	first := planning.LatePenalty(inv, scheduled)
	second := planning.LatePenalty(inv, scheduled)

	assert.Equal(t, first.DaysLate, second.DaysLate)
	assert.True(t, first.Penalty.Equal(second.Penalty),
		"función pura: el mismo input produce siempre la misma mora")
}
