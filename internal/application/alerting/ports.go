package alerting

import (
	"context"
	"time"

	"github.com/jhoicas/Alertas-api/internal/application/dto"
	"github.com/jhoicas/Alertas-api/internal/domain/entity"
)

// AlertReportGenerator puerto para renderizar el listado de alertas como PDF.
// La implementación (Maroto) vive en infrastructure.
type AlertReportGenerator interface {
	GenerateAlertsPDF(
		ctx context.Context,
		company *entity.Company,
		alerts []dto.LowStockAlertDTO,
		generatedAt time.Time,
	) ([]byte, error)
}
