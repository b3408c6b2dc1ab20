package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de proveedor dentro del ciclo de cuentas por pagar.
const (
	InvoiceStatusOutstanding = "OUTSTANDING" // Pendiente de pago
	InvoiceStatusScheduled   = "SCHEDULED"   // Incluida en un plan de pagos
	InvoiceStatusPaid        = "PAID"        // Pagada (fuera del alcance del motor)
)

// Invoice representa una factura de proveedor pendiente de pago.
// El motor de planeación la trata como entrada de solo lectura: nunca muta
// Amount ni DueDate.
type Invoice struct {
	ID         string
	CompanyID  string
	SupplierID string
	Number     string
	Amount     decimal.Decimal
	IssueDate  time.Time
	DueDate    time.Time // semántica de fecha (la hora se normaliza antes de usar)
	Status     string
	Supplier   *Supplier // resuelto por la capa de datos; puede venir nil
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ImportanceOrDefault devuelve la importancia del proveedor, NORMAL si falta.
func (i *Invoice) ImportanceOrDefault() Importance {
	if i.Supplier == nil {
		return ImportanceNormal
	}
	return ParseImportance(string(i.Supplier.Importance))
}

// LatePenaltyRate devuelve la tasa anual de mora (%), 0 si el proveedor falta.
func (i *Invoice) LatePenaltyRate() decimal.Decimal {
	if i.Supplier == nil {
		return decimal.Zero
	}
	return i.Supplier.LatePaymentPenalty
}

// EarlyDiscountRate devuelve el descuento por pronto pago (%), 0 si el proveedor falta.
func (i *Invoice) EarlyDiscountRate() decimal.Decimal {
	if i.Supplier == nil {
		return decimal.Zero
	}
	return i.Supplier.EarlyPaymentDiscount
}

// SupplierName devuelve el nombre del proveedor o cadena vacía si falta.
func (i *Invoice) SupplierName() string {
	if i.Supplier == nil {
		return ""
	}
	return i.Supplier.Name
}
