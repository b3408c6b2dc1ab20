package planning

import (
	"fmt"

	"github.com/tu-usuario/pagos-pro/internal/domain"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
)

// ValidateInvoice verifica los invariantes mínimos que el motor asume antes de
// puntuar o calcular consecuencias. Falla rápido con errores de dominio en
// lugar de producir resultados sin sentido.
func ValidateInvoice(inv *entity.Invoice) error {
	if inv == nil {
		return fmt.Errorf("%w: factura nula", domain.ErrInvalidInvoice)
	}
	if inv.ID == "" {
		return fmt.Errorf("%w: id requerido", domain.ErrInvalidInvoice)
	}
	if !inv.Amount.IsPositive() {
		return fmt.Errorf("%w: el monto debe ser positivo (factura %s: %s)",
			domain.ErrInvalidInvoice, inv.ID, inv.Amount.String())
	}
	if inv.DueDate.IsZero() {
		return fmt.Errorf("%w: la factura %s no tiene fecha de vencimiento",
			domain.ErrInvalidDate, inv.ID)
	}
	if inv.LatePenaltyRate().IsNegative() || inv.EarlyDiscountRate().IsNegative() {
		return fmt.Errorf("%w: las tasas de mora y descuento no pueden ser negativas (factura %s)",
			domain.ErrInvalidInvoice, inv.ID)
	}
	return nil
}
