package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
	"github.com/tu-usuario/pagos-pro/internal/infrastructure/export"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// samplePlan arma un plan con una línea programada en mora, una programada con
// descuento y una diferida por falta de caja.
func samplePlan() *entity.PaymentPlan {
	return &entity.PaymentPlan{
		RunID:          "run-0001",
		CompanyID:      "empresa-1",
		Strategy:       "BY_DUE_DATE",
		GeneratedAt:    day(2026, 3, 10),
		AvailableCash:  dec("1500.00"),
		TotalScheduled: dec("1300.00"),
		TotalPenalties: dec("1.37"),
		TotalDiscounts: dec("20.00"),
		RemainingCash:  dec("200.00"),
		Lines: []entity.PlanLine{
			{
				InvoiceID:     "f-001",
				InvoiceNumber: "FV-001",
				SupplierName:  "Aceros SAS",
				Amount:        dec("1000.00"),
				DueDate:       day(2026, 2, 28),
				Score:         1110,
				Status:        entity.PlanLineScheduled,
				ScheduledDate: day(2026, 3, 10),
				DaysLate:      10,
				Penalty:       dec("1.37"),
				Discount:      decimal.Zero,
			},
			{
				InvoiceID:     "f-002",
				InvoiceNumber: "FV-002",
				SupplierName:  "Papelería Central",
				Amount:        dec("300.00"),
				DueDate:       day(2026, 3, 25),
				Score:         985,
				Status:        entity.PlanLineScheduled,
				ScheduledDate: day(2026, 3, 10),
				DaysEarly:     15,
				Penalty:       decimal.Zero,
				Discount:      dec("20.00"),
			},
			{
				InvoiceID:     "f-003",
				InvoiceNumber: "FV-003",
				SupplierName:  "Suministros SA",
				Amount:        dec("500.00"),
				DueDate:       day(2026, 4, 1),
				Score:         978,
				Status:        entity.PlanLineDeferred,
				Penalty:       decimal.Zero,
				Discount:      decimal.Zero,
			},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestCSVExporter_EstructuraYTotales(t *testing.T) {
	data, err := export.NewCSVExporter().ExportCSV(samplePlan())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err, "el CSV generado debe ser parseable")

	// Cabecera + 3 líneas + fila TOTAL
	require.Len(t, records, 5)
	assert.Equal(t, "invoice_id", records[0][0])

	// Línea en mora: días y monto de mora en sus columnas
	assert.Equal(t, "FV-001", records[1][1])
	assert.Equal(t, "10", records[1][8], "days_late de la primera línea")
	assert.Equal(t, "1.37", records[1][9], "penalty de la primera línea")

	// Línea con descuento
	assert.Equal(t, "15", records[2][10], "days_early de la segunda línea")
	assert.Equal(t, "20.00", records[2][11], "discount de la segunda línea")

	// Diferida: sin fecha programada
	assert.Equal(t, entity.PlanLineDeferred, records[3][6])
	assert.Empty(t, records[3][7], "una línea diferida no lleva scheduled_date")

	// Totales al cierre
	total := records[4]
	assert.Equal(t, "TOTAL", total[0])
	assert.Equal(t, "1300.00", total[3])
	assert.Equal(t, "1.37", total[9])
	assert.Equal(t, "20.00", total[11])
}

// ──────────────────────────────────────────────────────────────────────────────
// XML
// ──────────────────────────────────────────────────────────────────────────────

func TestXMLExporter_DocumentoCompleto(t *testing.T) {
	data, err := export.NewXMLExporter().ExportXML(samplePlan())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data), "el XML generado debe ser parseable")

	root := doc.SelectElement("payment_plan")
	require.NotNil(t, root)
	assert.Equal(t, "run-0001", root.SelectAttrValue("run_id", ""))
	assert.Equal(t, "BY_DUE_DATE", root.SelectAttrValue("strategy", ""))
	assert.Equal(t, "2026-03-10", root.SelectAttrValue("generated_at", ""))

	summary := root.SelectElement("summary")
	require.NotNil(t, summary)
	assert.Equal(t, "1500.00", summary.SelectElement("available_cash").Text())
	assert.Equal(t, "1300.00", summary.SelectElement("total_scheduled").Text())
	assert.Equal(t, "200.00", summary.SelectElement("remaining_cash").Text())
	assert.Equal(t, "3", summary.SelectElement("line_count").Text())

	lines := root.SelectElement("lines").SelectElements("line")
	require.Len(t, lines, 3)

	// Línea en mora: elemento <penalty> con días
	penalty := lines[0].SelectElement("penalty")
	require.NotNil(t, penalty, "la línea en mora debe llevar <penalty>")
	assert.Equal(t, "10", penalty.SelectAttrValue("days_late", ""))
	assert.Equal(t, "1.37", penalty.Text())
	assert.Nil(t, lines[0].SelectElement("discount"))

	// Línea con descuento: elemento <discount> con días de anticipación
	discount := lines[1].SelectElement("discount")
	require.NotNil(t, discount, "la línea con descuento debe llevar <discount>")
	assert.Equal(t, "15", discount.SelectAttrValue("days_early", ""))
	assert.Equal(t, "20.00", discount.Text())
	assert.Nil(t, lines[1].SelectElement("penalty"))

	// Línea diferida: sin scheduled_date ni consecuencias
	assert.Equal(t, "DEFERRED", lines[2].SelectAttrValue("status", ""))
	assert.Nil(t, lines[2].SelectElement("scheduled_date"))
	assert.Nil(t, lines[2].SelectElement("penalty"))
	assert.Nil(t, lines[2].SelectElement("discount"))
}
