package payments

import (
	"context"

	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
)

// PlanCSVExporter serializa un plan de pagos a CSV para hojas de cálculo.
type PlanCSVExporter interface {
	ExportCSV(plan *entity.PaymentPlan) ([]byte, error)
}

// PlanXMLExporter serializa un plan de pagos a XML para integraciones.
type PlanXMLExporter interface {
	ExportXML(plan *entity.PaymentPlan) ([]byte, error)
}

// PlanPDFGenerator genera la representación imprimible del plan de pagos.
type PlanPDFGenerator interface {
	GeneratePlanPDF(ctx context.Context, plan *entity.PaymentPlan) ([]byte, error)
}
