package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Importance clasifica la relevancia comercial de un proveedor.
type Importance string

// Niveles de importancia del proveedor. Valores desconocidos se tratan como NORMAL.
const (
	ImportanceCritical Importance = "CRITICAL"
	ImportanceHigh     Importance = "HIGH"
	ImportanceNormal   Importance = "NORMAL"
	ImportanceLow      Importance = "LOW"
)

// ParseImportance normaliza un valor de importancia; desconocido o vacío → NORMAL.
func ParseImportance(s string) Importance {
	switch Importance(s) {
	case ImportanceCritical, ImportanceHigh, ImportanceNormal, ImportanceLow:
		return Importance(s)
	default:
		return ImportanceNormal
	}
}

// Supplier representa un proveedor con sus condiciones de pago.
// LatePaymentPenalty es una tasa anual (%) que se causa al pagar después del vencimiento.
// EarlyPaymentDiscount es un descuento (%) por pronto pago (mínimo 7 días de anticipación).
type Supplier struct {
	ID                   string
	CompanyID            string
	Name                 string
	TaxID                string
	Importance           Importance
	LatePaymentPenalty   decimal.Decimal
	EarlyPaymentDiscount decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
