package planning

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
)

// daysPerYear base para prorratear la tasa anual de mora a tasa diaria.
var daysPerYear = decimal.NewFromInt(365)

// PenaltyResult es la mora causada por pagar una factura en una fecha dada.
type PenaltyResult struct {
	Penalty  decimal.Decimal // redondeada a 2 decimales, nunca negativa
	DaysLate int             // nunca negativo
}

// LatePenalty calcula la mora de pagar la factura en scheduled.
// Pagar en o antes del vencimiento, o sin tasa de mora pactada, produce cero.
// Fórmula: amount * (tasaAnual/365/100) * díasDeMora, redondeada a centavos.
func LatePenalty(inv *entity.Invoice, scheduled time.Time) PenaltyResult {
	daysLate := DaysBetween(inv.DueDate, scheduled)
	if daysLate < 0 {
		daysLate = 0
	}

	rate := inv.LatePenaltyRate()
	if daysLate == 0 || !rate.IsPositive() {
		return PenaltyResult{Penalty: decimal.Zero, DaysLate: daysLate}
	}

	dailyRate := rate.Div(daysPerYear)
	penalty := inv.Amount.
		Mul(dailyRate.Div(decimal.NewFromInt(100))).
		Mul(decimal.NewFromInt(int64(daysLate))).
		Round(2)

	return PenaltyResult{Penalty: penalty, DaysLate: daysLate}
}
