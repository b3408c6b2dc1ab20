package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/tu-usuario/pagos-pro/internal/application/payments"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
	"github.com/tu-usuario/pagos-pro/internal/domain/planning"
)

var _ payments.PlanXMLExporter = (*XMLExporter)(nil)

// XMLExporter serializa un plan de pagos a XML para sistemas externos
// (ERP, tesorería bancaria). Estructura: un <payment_plan> con resumen y una
// <line> por factura.
type XMLExporter struct{}

// NewXMLExporter construye el exportador.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// ExportXML serializa el plan con indentación de 2 espacios.
func (e *XMLExporter) ExportXML(plan *entity.PaymentPlan) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("payment_plan")
	root.CreateAttr("run_id", plan.RunID)
	root.CreateAttr("strategy", plan.Strategy)
	root.CreateAttr("generated_at", plan.GeneratedAt.Format(planning.DateLayout))

	summary := root.CreateElement("summary")
	summary.CreateElement("available_cash").SetText(plan.AvailableCash.StringFixed(2))
	summary.CreateElement("total_scheduled").SetText(plan.TotalScheduled.StringFixed(2))
	summary.CreateElement("total_penalties").SetText(plan.TotalPenalties.StringFixed(2))
	summary.CreateElement("total_discounts").SetText(plan.TotalDiscounts.StringFixed(2))
	summary.CreateElement("remaining_cash").SetText(plan.RemainingCash.StringFixed(2))
	summary.CreateElement("line_count").SetText(strconv.Itoa(len(plan.Lines)))

	lines := root.CreateElement("lines")
	for _, l := range plan.Lines {
		line := lines.CreateElement("line")
		line.CreateAttr("invoice_id", l.InvoiceID)
		line.CreateAttr("status", l.Status)
		line.CreateElement("invoice_number").SetText(l.InvoiceNumber)
		line.CreateElement("supplier").SetText(l.SupplierName)
		line.CreateElement("amount").SetText(l.Amount.StringFixed(2))
		line.CreateElement("due_date").SetText(l.DueDate.Format(planning.DateLayout))
		line.CreateElement("score").SetText(strconv.FormatFloat(l.Score, 'f', 2, 64))
		if !l.ScheduledDate.IsZero() {
			line.CreateElement("scheduled_date").SetText(l.ScheduledDate.Format(planning.DateLayout))
		}
		if l.DaysLate > 0 {
			penalty := line.CreateElement("penalty")
			penalty.CreateAttr("days_late", strconv.Itoa(l.DaysLate))
			penalty.SetText(l.Penalty.StringFixed(2))
		}
		if l.DaysEarly > 0 && l.Discount.IsPositive() {
			discount := line.CreateElement("discount")
			discount.CreateAttr("days_early", strconv.Itoa(l.DaysEarly))
			discount.SetText(l.Discount.StringFixed(2))
		}
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializar plan XML: %w", err)
	}
	return data, nil
}
