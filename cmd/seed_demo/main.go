// seed_demo carga proveedores y facturas pendientes de demostración para
// probar el motor de planeación de pagos contra una base real.
//
// Uso: go run ./cmd/seed_demo [company_id]
// Por defecto usa la empresa "demo". Las fechas de vencimiento se generan
// relativas a hoy para que la corrida muestre facturas vencidas, urgentes y
// con descuento alcanzable.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
	"github.com/tu-usuario/pagos-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/pagos-pro/pkg/config"
	"github.com/tu-usuario/pagos-pro/pkg/logger"
)

type demoSupplier struct {
	name       string
	taxID      string
	importance entity.Importance
	penalty    string // tasa anual de mora (%)
	discount   string // descuento por pronto pago (%)
	invoices   []demoInvoice
}

type demoInvoice struct {
	number   string
	amount   string
	dueDays  int // días desde hoy (negativo = vencida)
	ageDays  int // antigüedad de emisión
}

func main() {
	companyID := "demo"
	if len(os.Args) > 1 {
		companyID = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewSupplierRepository(pool)
	today := time.Now()

	suppliers := []demoSupplier{
		{
			name: "Aceros del Norte SAS", taxID: "900100200-1",
			importance: entity.ImportanceCritical, penalty: "12", discount: "0",
			invoices: []demoInvoice{
				{number: "AN-4501", amount: "8500000.00", dueDays: -12, ageDays: 45},
				{number: "AN-4502", amount: "3200000.00", dueDays: 3, ageDays: 27},
			},
		},
		{
			name: "Transportes La Sabana Ltda", taxID: "800233445-6",
			importance: entity.ImportanceHigh, penalty: "8", discount: "2",
			invoices: []demoInvoice{
				{number: "TS-0091", amount: "1450000.00", dueDays: 10, ageDays: 20},
				{number: "TS-0095", amount: "980000.00", dueDays: 21, ageDays: 9},
			},
		},
		{
			name: "Papelería Central", taxID: "901556677-2",
			importance: entity.ImportanceNormal, penalty: "0", discount: "3",
			invoices: []demoInvoice{
				{number: "PC-2210", amount: "320000.00", dueDays: 15, ageDays: 15},
			},
		},
		{
			name: "Suministros Varios SA", taxID: "830998811-9",
			importance: entity.ImportanceLow, penalty: "5", discount: "0",
			invoices: []demoInvoice{
				{number: "SV-7788", amount: "210000.00", dueDays: -4, ageDays: 34},
				{number: "SV-7801", amount: "540000.00", dueDays: 30, ageDays: 5},
			},
		},
	}

	var totalInvoices int
	for _, ds := range suppliers {
		sup := &entity.Supplier{
			CompanyID:            companyID,
			Name:                 ds.name,
			TaxID:                ds.taxID,
			Importance:           ds.importance,
			LatePaymentPenalty:   decimal.RequireFromString(ds.penalty),
			EarlyPaymentDiscount: decimal.RequireFromString(ds.discount),
		}
		if err := repo.Create(ctx, sup); err != nil {
			log.Fatal().Err(err).Str("supplier", ds.name).Msg("crear proveedor")
		}

		for _, di := range ds.invoices {
			inv := &entity.Invoice{
				CompanyID:  companyID,
				SupplierID: sup.ID,
				Number:     di.number,
				Amount:     decimal.RequireFromString(di.amount),
				IssueDate:  today.AddDate(0, 0, -di.ageDays),
				DueDate:    today.AddDate(0, 0, di.dueDays),
				Status:     entity.InvoiceStatusOutstanding,
			}
			if err := repo.CreateInvoice(ctx, inv); err != nil {
				log.Fatal().Err(err).Str("invoice", di.number).Msg("crear factura")
			}
			totalInvoices++
		}
		log.Info().Str("supplier", ds.name).Int("invoices", len(ds.invoices)).Msg("proveedor sembrado")
	}

	log.Info().
		Str("company_id", companyID).
		Int("suppliers", len(suppliers)).
		Int("invoices", totalInvoices).
		Msg("datos de demostración cargados")
}
