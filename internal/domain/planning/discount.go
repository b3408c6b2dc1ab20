package planning

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
)

// MinDiscountLeadDays anticipación mínima (días calendario) para que el pago
// califique al descuento por pronto pago. Pagar con menos aviso no gana nada.
const MinDiscountLeadDays = 7

// DiscountResult es el descuento ganado por pagar una factura anticipadamente.
type DiscountResult struct {
	Discount  decimal.Decimal // redondeado a 2 decimales, nunca negativo
	DaysEarly int             // nunca negativo
}

// EarlyDiscount calcula el descuento de pagar la factura en scheduled.
// El descuento es un porcentaje plano del monto (no escala con los días de
// anticipación más allá del umbral mínimo de 7 días).
func EarlyDiscount(inv *entity.Invoice, scheduled time.Time) DiscountResult {
	daysEarly := DaysBetween(scheduled, inv.DueDate)
	if daysEarly < 0 {
		daysEarly = 0
	}

	rate := inv.EarlyDiscountRate()
	if daysEarly < MinDiscountLeadDays || !rate.IsPositive() {
		return DiscountResult{Discount: decimal.Zero, DaysEarly: daysEarly}
	}

	discount := inv.Amount.
		Mul(rate.Div(decimal.NewFromInt(100))).
		Round(2)

	return DiscountResult{Discount: discount, DaysEarly: daysEarly}
}
