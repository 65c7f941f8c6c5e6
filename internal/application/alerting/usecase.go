// Package alerting orquesta el cálculo de alertas de stock bajo: candidatos,
// agregados de ventas en dos ventanas, proveedor preferido y proyección de quiebre.
package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Alertas-api/internal/application/dto"
	"github.com/jhoicas/Alertas-api/internal/domain"
	domalerting "github.com/jhoicas/Alertas-api/internal/domain/alerting"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

// LowStockAlertsUseCase calcula las alertas de reposición de una empresa.
// Cómputo sin estado, de una sola pasada por petición; no escribe nada.
type LowStockAlertsUseCase struct {
	companyRepo   repository.CompanyRepository
	inventoryRepo repository.InventoryRepository
	salesRepo     repository.SalesRepository
	supplierRepo  repository.SupplierRepository

	avgWindowDays      int
	activityWindowDays int

	// Clock instante de referencia del cálculo (UTC). Inyectable para fijarlo en tests.
	Clock func() time.Time
}

// NewLowStockAlertsUseCase construye el caso de uso. Las ventanas llegan de la
// configuración: actividad (elegibilidad) y promedio (velocidad), independientes.
func NewLowStockAlertsUseCase(
	companyRepo repository.CompanyRepository,
	inventoryRepo repository.InventoryRepository,
	salesRepo repository.SalesRepository,
	supplierRepo repository.SupplierRepository,
	avgWindowDays, activityWindowDays int,
) *LowStockAlertsUseCase {
	return &LowStockAlertsUseCase{
		companyRepo:        companyRepo,
		inventoryRepo:      inventoryRepo,
		salesRepo:          salesRepo,
		supplierRepo:       supplierRepo,
		avgWindowDays:      avgWindowDays,
		activityWindowDays: activityWindowDays,
		Clock:              func() time.Time { return time.Now().UTC() },
	}
}

// GetLowStockAlerts devuelve las alertas de stock bajo de la empresa.
//
// Reglas:
//   - Candidata: posición con quantity <= threshold en bodegas de la empresa.
//   - Elegible: candidata cuyo producto registró ventas en la ventana de actividad;
//     sin actividad se excluye por completo, sin importar el nivel de stock.
//   - Proyección: ceil(stock / velocidad) con la ventana de promedio; null si esa
//     ventana sumó cero (puede pasar aun siendo elegible).
//   - Proveedor: el preferido según la reducción primario-primero, o null.
//
// Las alertas se emiten en el orden de los candidatos. Cero alertas = lista vacía.
// Retorna domain.ErrCompanyNotFound si la empresa no existe y envuelve toda falla
// de consulta en domain.ErrDataUnavailable; nunca se arma un resultado parcial.
func (uc *LowStockAlertsUseCase) GetLowStockAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	exists, err := uc.companyRepo.Exists(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: verificar empresa: %v", domain.ErrDataUnavailable, err)
	}
	if !exists {
		return nil, domain.ErrCompanyNotFound
	}

	candidates, err := uc.inventoryRepo.GetLowStockCandidates(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: candidatos de inventario: %v", domain.ErrDataUnavailable, err)
	}
	if len(candidates) == 0 {
		return &dto.LowStockAlertsResponse{Alerts: []dto.LowStockAlertDTO{}}, nil
	}

	productIDs := collectProductIDs(candidates)

	now := uc.Clock()
	activitySince := now.AddDate(0, 0, -uc.activityWindowDays)
	avgSince := now.AddDate(0, 0, -uc.avgWindowDays)

	// Los tres fetches agregados son independientes entre sí: se lanzan en
	// paralelo y se espera la barrera antes de armar una sola alerta.
	g, gctx := errgroup.WithContext(ctx)

	var recentSales, avgSales map[string]decimal.Decimal
	var links []repository.ProductSupplierLink

	g.Go(func() error {
		m, err := uc.salesRepo.SumSoldByProduct(gctx, companyID, productIDs, activitySince)
		if err != nil {
			return fmt.Errorf("ventas ventana de actividad: %w", err)
		}
		recentSales = m
		return nil
	})
	g.Go(func() error {
		m, err := uc.salesRepo.SumSoldByProduct(gctx, companyID, productIDs, avgSince)
		if err != nil {
			return fmt.Errorf("ventas ventana de promedio: %w", err)
		}
		avgSales = m
		return nil
	})
	g.Go(func() error {
		ls, err := uc.supplierRepo.ListLinksByProducts(gctx, productIDs)
		if err != nil {
			return fmt.Errorf("enlaces de proveedor: %w", err)
		}
		links = ls
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}

	preferred := domalerting.ResolvePreferredSuppliers(links)

	alerts := make([]dto.LowStockAlertDTO, 0, len(candidates))
	for _, c := range candidates {
		// Regla de elegibilidad: sin ventas en la ventana de actividad no hay alerta.
		if recentSales[c.ProductID].IsZero() {
			continue
		}

		days := domalerting.ProjectStockout(c.Quantity, avgSales[c.ProductID], uc.avgWindowDays)

		var supplier *dto.SupplierDTO
		if s, ok := preferred[c.ProductID]; ok {
			supplier = &dto.SupplierDTO{ID: s.ID, Name: s.Name, ContactEmail: s.ContactEmail}
		}

		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:         c.ProductID,
			ProductName:       c.ProductName,
			SKU:               c.SKU,
			WarehouseID:       c.WarehouseID,
			WarehouseName:     c.WarehouseName,
			CurrentStock:      c.Quantity,
			Threshold:         c.Threshold,
			DaysUntilStockout: days,
			Supplier:          supplier,
		})
	}

	return &dto.LowStockAlertsResponse{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}

// collectProductIDs deduplica los ids de producto preservando el orden de los candidatos.
func collectProductIDs(candidates []repository.LowStockCandidate) []string {
	seen := make(map[string]struct{}, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.ProductID]; ok {
			continue
		}
		seen[c.ProductID] = struct{}{}
		ids = append(ids, c.ProductID)
	}
	return ids
}
