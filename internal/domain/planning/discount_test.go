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

// invoiceWithDiscount factura de monto amount con descuento por pronto pago rate (%).
func invoiceWithDiscount(amount int64, rate float64, dueDate time.Time) *entity.Invoice {
	return &entity.Invoice{
		ID:      "fac-desc",
		Amount:  decimal.NewFromInt(amount),
		DueDate: dueDate,
		Supplier: &entity.Supplier{
			ID:                   "prov-desc",
			EarlyPaymentDiscount: decimal.NewFromFloat(rate),
		},
	}
}

func TestEarlyDiscount_CincoDiasNoAlcanzaElUmbral(t *testing.T) {
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	inv := invoiceWithDiscount(1000, 2, due)

	res := planning.EarlyDiscount(inv, due.AddDate(0, 0, -5))

	assert.Equal(t, 5, res.DaysEarly)
	assert.True(t, res.Discount.IsZero(),
		"con menos de %d días de anticipación no hay descuento", planning.MinDiscountLeadDays)
}

// Vector de referencia: 10 días de anticipación, 2% sobre 1000 → 20.00.
func TestEarlyDiscount_VectorDiezDiasAnticipado(t *testing.T) {
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	inv := invoiceWithDiscount(1000, 2, due)

	res := planning.EarlyDiscount(inv, due.AddDate(0, 0, -10))

	assert.Equal(t, 10, res.DaysEarly)
	assert.True(t, res.Discount.Equal(decimal.NewFromInt(20)),
		"2%% de 1000 debe ser 20.00, fue %s", res.Discount)
}

func TestEarlyDiscount_ExactamenteSieteDiasCalifica(t *testing.T) {
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	inv := invoiceWithDiscount(1000, 2, due)

	res := planning.EarlyDiscount(inv, due.AddDate(0, 0, -planning.MinDiscountLeadDays))

	assert.Equal(t, planning.MinDiscountLeadDays, res.DaysEarly)
	assert.True(t, res.Discount.Equal(decimal.NewFromInt(20)),
		"el umbral de 7 días es inclusivo")
}

func TestEarlyDiscount_EsPorcentajePlanoNoEscalaConDias(t *testing.T) {
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	inv := invoiceWithDiscount(1000, 2, due)

	res10 := planning.EarlyDiscount(inv, due.AddDate(0, 0, -10))
	res60 := planning.EarlyDiscount(inv, due.AddDate(0, 0, -60))

	assert.True(t, res10.Discount.Equal(res60.Discount),
		"más allá del umbral, el descuento no depende de cuántos días antes se pague")
}

func TestEarlyDiscount_EscalaLinealConElMonto(t *testing.T) {
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	simple := invoiceWithDiscount(1000, 2, due)
	doble := invoiceWithDiscount(2000, 2, due)
	scheduled := due.AddDate(0, 0, -15)

	resSimple := planning.EarlyDiscount(simple, scheduled)
	resDoble := planning.EarlyDiscount(doble, scheduled)

	require.False(t, resSimple.Discount.IsZero())
	assert.True(t, resDoble.Discount.Equal(resSimple.Discount.Mul(decimal.NewFromInt(2))),
		"doblar el monto debe doblar el descuento")
}

func TestEarlyDiscount_PagoTardioNoGanaDescuento(t *testing.T) {
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	inv := invoiceWithDiscount(1000, 2, due)

	res := planning.EarlyDiscount(inv, due.AddDate(0, 0, 3))

	assert.Equal(t, 0, res.DaysEarly, "los días de anticipación nunca son negativos")
	assert.True(t, res.Discount.IsZero())
}

func TestEarlyDiscount_SinTasaPactadaEsCero(t *testing.T) {
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	inv := invoiceWithDiscount(1000, 0, due)

	res := planning.EarlyDiscount(inv, due.AddDate(0, 0, -30))

	assert.Equal(t, 30, res.DaysEarly)
	assert.True(t, res.Discount.IsZero(), "sin descuento pactado no se gana nada")
}

// Mora y descuento son mutuamente excluyentes para una misma fecha de pago:
// la factura está vencida, al día o anticipada, nunca dos cosas a la vez.
func TestPenaltyYDiscount_MutuamenteExcluyentes(t *testing.T) {
	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		ID:      "ambas",
		Amount:  decimal.NewFromInt(1000),
		DueDate: due,
		Supplier: &entity.Supplier{
			LatePaymentPenalty:   decimal.NewFromInt(5),
			EarlyPaymentDiscount: decimal.NewFromInt(2),
		},
	}

	for _, tc := range []struct {
		name      string
		scheduled time.Time
	}{
		{"anticipado", due.AddDate(0, 0, -20)},
		{"al dia", due},
		{"tarde", due.AddDate(0, 0, 20)},
	} {
		pen := planning.LatePenalty(inv, tc.scheduled)
		dis := planning.EarlyDiscount(inv, tc.scheduled)
		assert.False(t, pen.Penalty.IsPositive() && dis.Discount.IsPositive(),
			"caso %s: nunca puede haber mora y descuento a la vez", tc.name)
	}
}
