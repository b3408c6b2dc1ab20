package repository

import (
	"context"

	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
)

// InvoiceRepository es el puerto de acceso a datos del motor de planeación.
// La capa de datos entrega las facturas pendientes ya resueltas con las
// condiciones del proveedor (importancia, tasa de mora, descuento); el motor
// nunca las busca por su cuenta.
type InvoiceRepository interface {
	// ListOutstanding devuelve las facturas pendientes de pago de la empresa,
	// con el Supplier poblado.
	ListOutstanding(ctx context.Context, companyID string) ([]*entity.Invoice, error)

	// GetByID devuelve una factura con su proveedor, o nil si no existe.
	GetByID(ctx context.Context, companyID, invoiceID string) (*entity.Invoice, error)
}
