package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appalerting "github.com/jhoicas/Alertas-api/internal/application/alerting"
	"github.com/jhoicas/Alertas-api/internal/application/dto"
	"github.com/jhoicas/Alertas-api/internal/domain"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock bajo.
type AlertHandler struct {
	alerts *appalerting.LowStockAlertsUseCase
	report *appalerting.AlertReportUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(alerts *appalerting.LowStockAlertsUseCase, report *appalerting.AlertReportUseCase) *AlertHandler {
	return &AlertHandler{alerts: alerts, report: report}
}

// GetLowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Posiciones en o bajo su umbral de reorden con ventas recientes,
//
//	con proyección de días hasta quiebre y proveedor preferido.
//
// @Tags         alerts
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if CompanyMismatch(c, companyID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la empresa del token no coincide con la solicitada"})
	}

	res, err := h.alerts.GetLowStockAlerts(c.Context(), companyID)
	if err != nil {
		return alertError(c, err)
	}
	return c.JSON(res)
}

// DownloadPDF godoc
// @Summary      Reporte PDF de alertas de stock bajo
// @Tags         alerts
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/alerts/low-stock/pdf [get]
func (h *AlertHandler) DownloadPDF(c *fiber.Ctx) error {
	companyID := c.Params("id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if CompanyMismatch(c, companyID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la empresa del token no coincide con la solicitada"})
	}

	pdfBytes, filename, err := h.report.DownloadAlertsPDF(c.Context(), companyID)
	if err != nil {
		return alertError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// alertError mapea los errores del caso de uso a condiciones HTTP.
// Empresa inexistente y almacén caído son condiciones distintas: 404 vs 503.
func alertError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCompanyNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "empresa no encontrada"})
	case errors.Is(err, domain.ErrDataUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DATA_UNAVAILABLE", Message: "almacén de datos no disponible"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
