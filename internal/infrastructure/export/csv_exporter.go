// Package export serializa planes de pago para las capas de presentación e
// integración: CSV para hojas de cálculo y XML para sistemas externos.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/tu-usuario/pagos-pro/internal/application/payments"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
	"github.com/tu-usuario/pagos-pro/internal/domain/planning"
)

var _ payments.PlanCSVExporter = (*CSVExporter)(nil)

// CSVExporter serializa un plan de pagos a CSV (una fila por factura más una
// fila de totales). Los montos van como números planos para que la hoja de
// cálculo los reconozca.
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// ExportCSV serializa el plan.
func (e *CSVExporter) ExportCSV(plan *entity.PaymentPlan) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"invoice_id", "invoice_number", "supplier", "amount", "due_date",
		"score", "status", "scheduled_date", "days_late", "penalty", "days_early", "discount",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}

	for _, l := range plan.Lines {
		scheduled := ""
		if !l.ScheduledDate.IsZero() {
			scheduled = l.ScheduledDate.Format(planning.DateLayout)
		}
		record := []string{
			l.InvoiceID,
			l.InvoiceNumber,
			l.SupplierName,
			l.Amount.StringFixed(2),
			l.DueDate.Format(planning.DateLayout),
			strconv.FormatFloat(l.Score, 'f', 2, 64),
			l.Status,
			scheduled,
			strconv.Itoa(l.DaysLate),
			l.Penalty.StringFixed(2),
			strconv.Itoa(l.DaysEarly),
			l.Discount.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv línea %s: %w", l.InvoiceID, err)
		}
	}

	totals := []string{
		"TOTAL", "", "",
		plan.TotalScheduled.StringFixed(2),
		"", "", "", "",
		"", plan.TotalPenalties.StringFixed(2),
		"", plan.TotalDiscounts.StringFixed(2),
	}
	if err := w.Write(totals); err != nil {
		return nil, fmt.Errorf("csv totales: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}
