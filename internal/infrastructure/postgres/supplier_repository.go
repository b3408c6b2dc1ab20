package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
)

// SupplierRepo persistencia de proveedores y sus condiciones de pago.
// Lo usa el seeder de datos de demostración; el motor de planeación lee los
// proveedores ya resueltos dentro de cada factura.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now()
	query := `
		INSERT INTO suppliers (id, company_id, name, tax_id, importance, late_payment_penalty, early_payment_discount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CompanyID, s.Name, s.TaxID, string(entity.ParseImportance(string(s.Importance))),
		s.LatePaymentPenalty, s.EarlyPaymentDiscount, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("proveedor ya existe: %w", err)
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// CreateInvoice persiste una factura pendiente del proveedor.
func (r *SupplierRepo) CreateInvoice(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	now := time.Now()
	query := `
		INSERT INTO supplier_invoices (id, company_id, supplier_id, number, amount, issue_date, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	status := inv.Status
	if status == "" {
		status = entity.InvoiceStatusOutstanding
	}
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.CompanyID, inv.SupplierID, inv.Number, inv.Amount,
		inv.IssueDate, inv.DueDate, status, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("número de factura ya existe: %w", err)
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}
