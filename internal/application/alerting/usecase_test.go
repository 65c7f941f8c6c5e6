package alerting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appalerting "github.com/jhoicas/Alertas-api/internal/application/alerting"
	"github.com/jhoicas/Alertas-api/internal/domain"
	"github.com/jhoicas/Alertas-api/internal/domain/entity"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de lectura.
// Las ventas se indexan por la marca de tiempo de cada venta para que las dos
// ventanas (actividad y promedio) filtren de verdad contra `since`.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSale struct {
	productID string
	quantity  decimal.Decimal
	soldAt    time.Time
}

type fakeStore struct {
	companies  map[string]bool
	candidates []repository.LowStockCandidate
	sales      []fakeSale
	links      []repository.ProductSupplierLink

	failExists     bool
	failCandidates bool
	failSales      bool
	failLinks      bool
}

var errDown = errors.New("connection refused")

func (f *fakeStore) Exists(_ context.Context, id string) (bool, error) {
	if f.failExists {
		return false, errDown
	}
	return f.companies[id], nil
}

// GetByID y List completan repository.CompanyRepository; el caso de uso bajo
// prueba solo consulta Exists, así que basta con stubs vacíos.
func (f *fakeStore) GetByID(_ context.Context, _ string) (*entity.Company, error) {
	return nil, nil
}

func (f *fakeStore) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	return nil, nil
}

func (f *fakeStore) GetLowStockCandidates(_ context.Context, _ string) ([]repository.LowStockCandidate, error) {
	if f.failCandidates {
		return nil, errDown
	}
	return f.candidates, nil
}

func (f *fakeStore) SumSoldByProduct(_ context.Context, _ string, productIDs []string, since time.Time) (map[string]decimal.Decimal, error) {
	if f.failSales {
		return nil, errDown
	}
	wanted := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}
	sums := make(map[string]decimal.Decimal)
	for _, s := range f.sales {
		if !wanted[s.productID] || s.soldAt.Before(since) {
			continue
		}
		sums[s.productID] = sums[s.productID].Add(s.quantity)
	}
	return sums, nil
}

func (f *fakeStore) ListLinksByProducts(_ context.Context, _ []string) ([]repository.ProductSupplierLink, error) {
	if f.failLinks {
		return nil, errDown
	}
	return f.links, nil
}

// Instante de referencia fijo para todo el paquete de tests.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newUseCase(store *fakeStore) *appalerting.LowStockAlertsUseCase {
	uc := appalerting.NewLowStockAlertsUseCase(store, store, store, store, 30, 60)
	uc.Clock = func() time.Time { return testNow }
	return uc
}

func candidate(productID, name, sku string, qty, threshold int64) repository.LowStockCandidate {
	return repository.LowStockCandidate{
		ProductID:     productID,
		ProductName:   name,
		SKU:           sku,
		WarehouseID:   "w1",
		WarehouseName: "Bodega Central",
		Quantity:      qty,
		Threshold:     threshold,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: stock=5, umbral=10, 20 unidades vendidas hace 10 días,
// sin proveedor enlazado → alerta con days_until_stockout = ceil(5/(20/30)) = 8
// y supplier null.
func TestGetLowStockAlerts_EscenarioReferencia(t *testing.T) {
	store := &fakeStore{
		companies:  map[string]bool{"c1": true},
		candidates: []repository.LowStockCandidate{candidate("p1", "Café 500g", "CAF-500", 5, 10)},
		sales: []fakeSale{
			{productID: "p1", quantity: decimal.NewFromInt(20), soldAt: testNow.AddDate(0, 0, -10)},
		},
	}
	uc := newUseCase(store)

	res, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)

	a := res.Alerts[0]
	assert.Equal(t, "p1", a.ProductID)
	assert.Equal(t, int64(5), a.CurrentStock)
	assert.Equal(t, int64(10), a.Threshold)
	require.NotNil(t, a.DaysUntilStockout, "con ventas en la ventana de promedio debe haber proyección")
	assert.Equal(t, int64(8), *a.DaysUntilStockout, "ceil(5 / (20/30)) = 8 días")
	assert.Nil(t, a.Supplier, "sin enlace de proveedor el supplier es null")
	assert.Equal(t, 1, res.TotalAlerts)
}

// Producto en umbral exacto pero sin ventas en 60 días → se excluye por completo.
func TestGetLowStockAlerts_SinActividadSeExcluye(t *testing.T) {
	store := &fakeStore{
		companies:  map[string]bool{"c1": true},
		candidates: []repository.LowStockCandidate{candidate("p2", "Harina 1kg", "HAR-001", 3, 3)},
		sales: []fakeSale{
			// Venta vieja, fuera de la ventana de actividad de 60 días.
			{productID: "p2", quantity: decimal.NewFromInt(50), soldAt: testNow.AddDate(0, 0, -90)},
		},
	}
	uc := newUseCase(store)

	res, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, res.Alerts, "sin ventas recientes no hay alerta, sin importar el stock")
	assert.Equal(t, 0, res.TotalAlerts)
}

// Ventas solo entre los días 30 y 60: pasa la puerta de actividad pero la
// ventana de promedio suma cero → alerta con proyección null.
func TestGetLowStockAlerts_ActividadSinPromedioProyeccionNull(t *testing.T) {
	store := &fakeStore{
		companies:  map[string]bool{"c1": true},
		candidates: []repository.LowStockCandidate{candidate("p3", "Azúcar 1kg", "AZU-001", 4, 6)},
		sales: []fakeSale{
			{productID: "p3", quantity: decimal.NewFromInt(12), soldAt: testNow.AddDate(0, 0, -45)},
		},
	}
	uc := newUseCase(store)

	res, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Nil(t, res.Alerts[0].DaysUntilStockout,
		"actividad en 60d con promedio 30d en cero produce proyección null")
}

// Empresa inexistente → ErrCompanyNotFound, nunca éxito vacío ni error genérico.
func TestGetLowStockAlerts_EmpresaInexistente(t *testing.T) {
	store := &fakeStore{companies: map[string]bool{}}
	uc := newUseCase(store)

	res, err := uc.GetLowStockAlerts(context.Background(), "nope")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.NotErrorIs(t, err, domain.ErrDataUnavailable,
		"empresa inexistente no es una falla de infraestructura")
}

// Falla del almacén al verificar la empresa → ErrDataUnavailable, no not-found.
func TestGetLowStockAlerts_FallaDeAlmacen(t *testing.T) {
	store := &fakeStore{companies: map[string]bool{"c1": true}, failExists: true}
	uc := newUseCase(store)

	_, err := uc.GetLowStockAlerts(context.Background(), "c1")
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.NotErrorIs(t, err, domain.ErrCompanyNotFound)
}

// Si cualquiera de los fetches en paralelo falla, no se arma resultado parcial.
func TestGetLowStockAlerts_SinResultadoParcial(t *testing.T) {
	store := &fakeStore{
		companies:  map[string]bool{"c1": true},
		candidates: []repository.LowStockCandidate{candidate("p1", "Café 500g", "CAF-500", 5, 10)},
		sales: []fakeSale{
			{productID: "p1", quantity: decimal.NewFromInt(20), soldAt: testNow.AddDate(0, 0, -10)},
		},
		failLinks: true,
	}
	uc := newUseCase(store)

	res, err := uc.GetLowStockAlerts(context.Background(), "c1")
	assert.Nil(t, res, "una consulta fallida no debe dejar alertas a medias")
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

// Sin candidatos → lista vacía con total 0, no error.
func TestGetLowStockAlerts_SinCandidatosListaVacia(t *testing.T) {
	store := &fakeStore{companies: map[string]bool{"c1": true}}
	uc := newUseCase(store)

	res, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotNil(t, res.Alerts, "la lista vacía se serializa como [], no null")
	assert.Empty(t, res.Alerts)
	assert.Equal(t, 0, res.TotalAlerts)
}

// El proveedor preferido se adjunta sin el flag is_primary; un primario tardío
// gana sobre el no-primario visto antes.
func TestGetLowStockAlerts_ProveedorPreferidoAdjunto(t *testing.T) {
	store := &fakeStore{
		companies:  map[string]bool{"c1": true},
		candidates: []repository.LowStockCandidate{candidate("p1", "Café 500g", "CAF-500", 5, 10)},
		sales: []fakeSale{
			{productID: "p1", quantity: decimal.NewFromInt(20), soldAt: testNow.AddDate(0, 0, -10)},
		},
		links: []repository.ProductSupplierLink{
			{ProductID: "p1", SupplierID: "s1", SupplierName: "Acme", ContactEmail: "ventas@acme.test", IsPrimary: false},
			{ProductID: "p1", SupplierID: "s2", SupplierName: "Norte", ContactEmail: "compras@norte.test", IsPrimary: true},
		},
	}
	uc := newUseCase(store)

	res, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)

	sup := res.Alerts[0].Supplier
	require.NotNil(t, sup)
	assert.Equal(t, "s2", sup.ID, "el enlace primario debe ganar aunque aparezca después")
	assert.Equal(t, "compras@norte.test", sup.ContactEmail)
}

// Las alertas se emiten en el orden de los candidatos y el cómputo es idempotente.
func TestGetLowStockAlerts_OrdenDeCandidatosEIdempotencia(t *testing.T) {
	store := &fakeStore{
		companies: map[string]bool{"c1": true},
		candidates: []repository.LowStockCandidate{
			candidate("p9", "Sal 500g", "SAL-500", 2, 4),
			candidate("p1", "Café 500g", "CAF-500", 5, 10),
		},
		sales: []fakeSale{
			{productID: "p1", quantity: decimal.NewFromInt(20), soldAt: testNow.AddDate(0, 0, -10)},
			{productID: "p9", quantity: decimal.NewFromInt(8), soldAt: testNow.AddDate(0, 0, -5)},
		},
	}
	uc := newUseCase(store)

	first, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, first.Alerts, 2)
	assert.Equal(t, "p9", first.Alerts[0].ProductID, "el orden de emisión sigue al fetch de candidatos")
	assert.Equal(t, "p1", first.Alerts[1].ProductID)

	second, err := uc.GetLowStockAlerts(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, first, second, "datos sin cambios deben producir alertas idénticas")
}
