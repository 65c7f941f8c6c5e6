package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (solo lectura).
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

// GetLowStockCandidates devuelve toda posición con quantity <= threshold (inclusivo)
// en bodegas de la empresa, ya unida con producto y bodega en filas planas.
// El orden de emisión de alertas sigue el orden de esta consulta.
func (r *InventoryRepo) GetLowStockCandidates(ctx context.Context, companyID string) ([]repository.LowStockCandidate, error) {
	const query = `
		SELECT
			p.id,
			p.name,
			p.sku,
			w.id,
			w.name,
			i.quantity,
			i.threshold
		FROM inventories i
		JOIN warehouses w ON w.id = i.warehouse_id
		JOIN products   p ON p.id = i.product_id
		WHERE w.company_id = $1
		  AND i.quantity  <= i.threshold
		ORDER BY w.name, p.sku`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("get low stock candidates: %w", err)
	}
	defer rows.Close()

	var candidates []repository.LowStockCandidate
	for rows.Next() {
		var c repository.LowStockCandidate
		if err := rows.Scan(
			&c.ProductID, &c.ProductName, &c.SKU,
			&c.WarehouseID, &c.WarehouseName,
			&c.Quantity, &c.Threshold,
		); err != nil {
			return nil, fmt.Errorf("scan low stock candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
