// Package pdf implementa la representación imprimible del plan de pagos a
// proveedores (la salida que consume tesorería).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Plan de pagos + estrategia  │  Fecha de corrida    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Caja disponible / Programado / Mora / Descuentos  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Factura | Proveedor | Monto | Vence | Estado | ...  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: RunID + leyenda                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/pagos-pro/internal/application/payments"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
	"github.com/tu-usuario/pagos-pro/internal/domain/planning"
	"github.com/tu-usuario/pagos-pro/pkg/moneyfmt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 40}
)

var _ payments.PlanPDFGenerator = (*MarotoPlanGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPlanGenerator implementa payments.PlanPDFGenerator usando Maroto v2.
type MarotoPlanGenerator struct{}

// NewMarotoPlanGenerator construye el generador.
func NewMarotoPlanGenerator() *MarotoPlanGenerator { return &MarotoPlanGenerator{} }

// GeneratePlanPDF genera el PDF del plan y devuelve sus bytes.
func (g *MarotoPlanGenerator) GeneratePlanPDF(_ context.Context, plan *entity.PaymentPlan) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plan de Pagos a Proveedores", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(plan))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(plan))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(plan.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(plan))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + estrategia (izq) y fecha de corrida (der).
func headerRow(plan *entity.PaymentPlan) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("PLAN DE PAGOS A PROVEEDORES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estrategia: "+plan.Strategy, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Corrida: "+plan.GeneratedAt.Format(planning.DateLayout), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 3,
			}),
			text.New(fmt.Sprintf("%d facturas", len(plan.Lines)), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// summaryRow: caja disponible, programado, mora, descuentos y caja restante.
func summaryRow(plan *entity.PaymentPlan) core.Row {
	cell := func(label, value string, valueColor *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 9, Top: 5, Color: valueColor}),
		)
	}
	return row.New(12).Add(
		cell("Caja disponible", moneyfmt.Format(plan.AvailableCash), nil),
		cell("Programado", moneyfmt.Format(plan.TotalScheduled), colorPrimary),
		cell("Mora causada", moneyfmt.Format(plan.TotalPenalties), colorAlert),
		cell("Descuentos ganados", moneyfmt.Format(plan.TotalDiscounts), colorPrimary),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas del plan.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Factura", 2, align.Left),
		h("Proveedor", 3, align.Left),
		h("Monto", 2, align.Right),
		h("Vence", 2, align.Center),
		h("Estado", 1, align.Center),
		h("Mora/Desc.", 2, align.Right),
	)
}

// tableLineRows: una fila por factura del plan.
func tableLineRows(lines []entity.PlanLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		outcome := "—"
		outcomeColor := colorGray
		if l.Penalty.IsPositive() {
			outcome = "+" + moneyfmt.Format(l.Penalty)
			outcomeColor = colorAlert
		} else if l.Discount.IsPositive() {
			outcome = "-" + moneyfmt.Format(l.Discount)
			outcomeColor = colorPrimary
		}

		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.InvoiceNumber,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				l.SupplierName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				moneyfmt.Format(l.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				l.DueDate.Format(planning.DateLayout),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				l.Status,
				props.Text{Size: 7, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				outcome,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: outcomeColor},
			)),
		))
	}
	return result
}

// footerRow: identificador de la corrida + leyenda.
func footerRow(plan *entity.PaymentPlan) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Corrida: "+plan.RunID, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New("Documento de planeación interna. No constituye orden de pago bancaria.",
				props.Text{Size: 7, Color: colorGray, Top: 5}),
		),
	)
}
