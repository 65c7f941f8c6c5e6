// Comando seed: carga un dataset de demostración para probar las alertas de
// stock bajo en local. Crea una empresa con dos bodegas, productos en o bajo su
// umbral, historial de ventas de los últimos días y enlaces de proveedor
// (incluido un producto con primario tardío para ejercitar el desempate).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Alertas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Alertas-api/pkg/config"
	"github.com/jhoicas/Alertas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	now := time.Now().UTC()

	companyID := uuid.New().String()
	if _, err := pool.Exec(ctx, `
		INSERT INTO companies (id, name, nit, address, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		companyID, "Distribuciones Andinas SAS", "900123456-7",
		"Cra 45 # 12-34, Bogotá", "+57 601 555 0101", "compras@andinas.test", now,
	); err != nil {
		log.Fatal().Err(err).Msg("insertar empresa")
	}

	warehouses := map[string]string{
		"Bodega Central": uuid.New().String(),
		"Bodega Norte":   uuid.New().String(),
	}
	for name, id := range warehouses {
		if _, err := pool.Exec(ctx, `
			INSERT INTO warehouses (id, company_id, name, address, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)`,
			id, companyID, name, "—", now,
		); err != nil {
			log.Fatal().Err(err).Msg("insertar bodega")
		}
	}

	type seedProduct struct {
		name, sku string
		id        string
	}
	products := []seedProduct{
		{name: "Café 500g", sku: "CAF-500"},
		{name: "Harina 1kg", sku: "HAR-001"},
		{name: "Azúcar 1kg", sku: "AZU-001"},
		{name: "Aceite 1L", sku: "ACE-001"},
	}
	for i := range products {
		products[i].id = uuid.New().String()
		if _, err := pool.Exec(ctx, `
			INSERT INTO products (id, company_id, sku, name, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, '', $5, $5)`,
			products[i].id, companyID, products[i].sku, products[i].name, now,
		); err != nil {
			log.Fatal().Err(err).Msg("insertar producto")
		}
	}
	cafe, harina, azucar, aceite := products[0], products[1], products[2], products[3]

	central := warehouses["Bodega Central"]
	norte := warehouses["Bodega Norte"]

	// Posiciones de inventario:
	//   café    5/10  → candidata con ventas recientes (alerta con proyección)
	//   harina  3/3   → candidata sin ventas en 60 días (se excluye)
	//   azúcar  4/6   → candidata con ventas solo entre 30 y 60 días (proyección null)
	//   aceite 80/20  → sana, nunca candidata
	inventories := []struct {
		productID, warehouseID string
		quantity, threshold    int64
	}{
		{cafe.id, central, 5, 10},
		{harina.id, central, 3, 3},
		{azucar.id, norte, 4, 6},
		{aceite.id, central, 80, 20},
	}
	for _, inv := range inventories {
		if _, err := pool.Exec(ctx, `
			INSERT INTO inventories (id, product_id, warehouse_id, quantity, threshold, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New().String(), inv.productID, inv.warehouseID, inv.quantity, inv.threshold, now,
		); err != nil {
			log.Fatal().Err(err).Msg("insertar inventario")
		}
	}

	// Historial de ventas: 20 unidades de café hace 10 días, 12 de azúcar hace
	// 45 días, harina solo hace 90 días (fuera de la ventana de actividad).
	sales := []struct {
		productID string
		quantity  int64
		daysAgo   int
	}{
		{cafe.id, 20, 10},
		{azucar.id, 12, 45},
		{harina.id, 50, 90},
	}
	for _, s := range sales {
		orderID := uuid.New().String()
		soldAt := now.AddDate(0, 0, -s.daysAgo)
		if _, err := pool.Exec(ctx, `
			INSERT INTO orders (id, company_id, created_at) VALUES ($1, $2, $3)`,
			orderID, companyID, soldAt,
		); err != nil {
			log.Fatal().Err(err).Msg("insertar pedido")
		}
		if _, err := pool.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.New().String(), orderID, s.productID, s.quantity, soldAt,
		); err != nil {
			log.Fatal().Err(err).Msg("insertar línea de pedido")
		}
	}

	// Proveedores: azúcar con no-primario primero y primario después
	// (el resolutor debe elegir el primario); café queda sin proveedor.
	acme := uuid.New().String()
	norteSup := uuid.New().String()
	suppliers := []struct{ id, name, email string }{
		{acme, "Acme Insumos", "ventas@acme.test"},
		{norteSup, "Proveedora del Norte", "compras@norte.test"},
	}
	for _, s := range suppliers {
		if _, err := pool.Exec(ctx, `
			INSERT INTO suppliers (id, name, contact_email, phone, created_at, updated_at)
			VALUES ($1, $2, $3, '', $4, $4)`,
			s.id, s.name, s.email, now,
		); err != nil {
			log.Fatal().Err(err).Msg("insertar proveedor")
		}
	}
	links := []struct {
		productID, supplierID string
		isPrimary             bool
	}{
		{azucar.id, acme, false},
		{azucar.id, norteSup, true},
	}
	for _, l := range links {
		if _, err := pool.Exec(ctx, `
			INSERT INTO product_suppliers (product_id, supplier_id, is_primary, created_at)
			VALUES ($1, $2, $3, $4)`,
			l.productID, l.supplierID, l.isPrimary, now,
		); err != nil {
			log.Fatal().Err(err).Msg("insertar enlace producto-proveedor")
		}
	}

	log.Info().Str("company_id", companyID).Msg("dataset de demostración cargado")
	fmt.Printf("GET /api/companies/%s/alerts/low-stock\n", companyID)
}
