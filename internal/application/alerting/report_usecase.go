package alerting

import (
	"context"
	"fmt"

	"github.com/jhoicas/Alertas-api/internal/domain"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

// AlertReportUseCase genera la representación en PDF del listado de alertas,
// pensada para imprimirse o adjuntarse en el correo semanal de compras.
type AlertReportUseCase struct {
	alerts      *LowStockAlertsUseCase
	companyRepo repository.CompanyRepository
	generator   AlertReportGenerator
}

// NewAlertReportUseCase construye el caso de uso inyectando sus dependencias.
func NewAlertReportUseCase(
	alerts *LowStockAlertsUseCase,
	companyRepo repository.CompanyRepository,
	generator AlertReportGenerator,
) *AlertReportUseCase {
	return &AlertReportUseCase{alerts: alerts, companyRepo: companyRepo, generator: generator}
}

// DownloadAlertsPDF calcula las alertas vigentes y las renderiza como PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)    si todo sale bien (incluida una lista vacía).
//   - domain.ErrCompanyNotFound    si la empresa no existe.
//   - domain.ErrDataUnavailable    si alguna consulta falla.
func (uc *AlertReportUseCase) DownloadAlertsPDF(ctx context.Context, companyID string) (pdfBytes []byte, filename string, err error) {
	res, err := uc.alerts.GetLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, "", err
	}

	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: obtener empresa: %v", domain.ErrDataUnavailable, err)
	}
	if company == nil {
		return nil, "", domain.ErrCompanyNotFound
	}

	generatedAt := uc.alerts.Clock()
	pdfBytes, err = uc.generator.GenerateAlertsPDF(ctx, company, res.Alerts, generatedAt)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("alertas_stock_%s.pdf", generatedAt.Format("2006-01-02"))
	return pdfBytes, filename, nil
}
