package payments

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pagos-pro/internal/application/dto"
	"github.com/tu-usuario/pagos-pro/internal/domain/entity"
)

// ExportUseCase genera un plan y lo entrega en el formato pedido por la capa
// de presentación (CSV para hojas de cálculo, XML para integraciones, PDF
// para tesorería).
type ExportUseCase struct {
	planUC *PlanUseCase
	csv    PlanCSVExporter
	xml    PlanXMLExporter
	pdf    PlanPDFGenerator
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(planUC *PlanUseCase, csv PlanCSVExporter, xml PlanXMLExporter, pdf PlanPDFGenerator) *ExportUseCase {
	return &ExportUseCase{planUC: planUC, csv: csv, xml: xml, pdf: pdf}
}

// ExportCSV corre la planeación y devuelve el plan como CSV.
func (uc *ExportUseCase) ExportCSV(ctx context.Context, companyID string, req dto.GeneratePlanRequest) ([]byte, *entity.PaymentPlan, error) {
	plan, err := uc.planUC.GeneratePlan(ctx, companyID, req)
	if err != nil {
		return nil, nil, err
	}
	data, err := uc.csv.ExportCSV(plan)
	if err != nil {
		return nil, nil, fmt.Errorf("exportar plan a CSV: %w", err)
	}
	return data, plan, nil
}

// ExportXML corre la planeación y devuelve el plan como XML.
func (uc *ExportUseCase) ExportXML(ctx context.Context, companyID string, req dto.GeneratePlanRequest) ([]byte, *entity.PaymentPlan, error) {
	plan, err := uc.planUC.GeneratePlan(ctx, companyID, req)
	if err != nil {
		return nil, nil, err
	}
	data, err := uc.xml.ExportXML(plan)
	if err != nil {
		return nil, nil, fmt.Errorf("exportar plan a XML: %w", err)
	}
	return data, plan, nil
}

// ExportPDF corre la planeación y devuelve el plan como PDF.
func (uc *ExportUseCase) ExportPDF(ctx context.Context, companyID string, req dto.GeneratePlanRequest) ([]byte, *entity.PaymentPlan, error) {
	plan, err := uc.planUC.GeneratePlan(ctx, companyID, req)
	if err != nil {
		return nil, nil, err
	}
	data, err := uc.pdf.GeneratePlanPDF(ctx, plan)
	if err != nil {
		return nil, nil, fmt.Errorf("generar PDF del plan: %w", err)
	}
	return data, plan, nil
}
