package http

import (
	"github.com/gofiber/fiber/v2"

	appalerting "github.com/jhoicas/Alertas-api/internal/application/alerting"
	"github.com/jhoicas/Alertas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	Alerts      *appalerting.LowStockAlertsUseCase
	AlertReport *appalerting.AlertReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Con JWTSecret configurado toda la API
// exige Bearer Token y el tenant del token debe coincidir con la empresa del path;
// sin secreto la API corre abierta (la autenticación es del colaborador externo).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
	}

	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	alertHandler := NewAlertHandler(deps.Alerts, deps.AlertReport)
	companies.Get("/:id/alerts/low-stock", alertHandler.GetLowStock)
	companies.Get("/:id/alerts/low-stock/pdf", alertHandler.DownloadPDF)
}
