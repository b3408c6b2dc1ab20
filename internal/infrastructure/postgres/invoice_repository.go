package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
	"github.com/tu-usuario/pagos-pro/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
// Entrega las facturas pendientes ya resueltas con las condiciones de pago
// del proveedor (una sola consulta con JOIN), que es el contrato que el motor
// de planeación espera de la capa de datos.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	i.id, i.company_id, i.supplier_id, i.number, i.amount, i.issue_date, i.due_date, i.status,
	i.created_at, i.updated_at,
	s.id, s.company_id, s.name, s.tax_id, COALESCE(s.importance, 'NORMAL'),
	COALESCE(s.late_payment_penalty, 0), COALESCE(s.early_payment_discount, 0)`

// ListOutstanding devuelve las facturas pendientes de la empresa con su proveedor.
func (r *InvoiceRepo) ListOutstanding(ctx context.Context, companyID string) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM supplier_invoices i
		JOIN suppliers s ON s.id = i.supplier_id
		WHERE i.company_id = $1 AND i.status = $2
		ORDER BY i.due_date, i.id`
	rows, err := r.q.Query(ctx, query, companyID, entity.InvoiceStatusOutstanding)
	if err != nil {
		return nil, fmt.Errorf("listar facturas pendientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// GetByID obtiene una factura con su proveedor, o nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, companyID, invoiceID string) (*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM supplier_invoices i
		JOIN suppliers s ON s.id = i.supplier_id
		WHERE i.company_id = $1 AND i.id = $2`
	row := r.q.QueryRow(ctx, query, companyID, invoiceID)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar factura: %w", err)
	}
	return inv, nil
}

// scanInvoice materializa una fila factura+proveedor. El importance llega ya
// con COALESCE a NORMAL; ParseImportance cubre valores no reconocidos.
func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var sup entity.Supplier
	var importance string
	err := row.Scan(
		&inv.ID, &inv.CompanyID, &inv.SupplierID, &inv.Number, &inv.Amount,
		&inv.IssueDate, &inv.DueDate, &inv.Status,
		&inv.CreatedAt, &inv.UpdatedAt,
		&sup.ID, &sup.CompanyID, &sup.Name, &sup.TaxID, &importance,
		&sup.LatePaymentPenalty, &sup.EarlyPaymentDiscount,
	)
	if err != nil {
		return nil, err
	}
	sup.Importance = entity.ParseImportance(importance)
	inv.Supplier = &sup
	return &inv, nil
}
