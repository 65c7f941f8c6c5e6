package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo agregación de ventas históricas sobre PostgreSQL (solo lectura).
// Una sola consulta por ventana: el I/O queda acotado sin importar cuántos candidatos haya.
type SalesRepo struct {
	pool *pgxpool.Pool
}

// NewSalesRepository construye el adaptador de agregación de ventas.
func NewSalesRepository(pool *pgxpool.Pool) *SalesRepo {
	return &SalesRepo{pool: pool}
}

// SumSoldByProduct suma las cantidades vendidas por producto desde `since`,
// acotado a pedidos de la empresa. Productos sin líneas en la ventana quedan
// ausentes del mapa (el caller trata ausencia como cero).
func (r *SalesRepo) SumSoldByProduct(
	ctx context.Context,
	companyID string,
	productIDs []string,
	since time.Time,
) (map[string]decimal.Decimal, error) {
	const query = `
		SELECT
			oi.product_id,
			COALESCE(SUM(oi.quantity), 0) AS qty
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.company_id   = $1
		  AND oi.product_id  = ANY($2)
		  AND oi.created_at >= $3
		GROUP BY oi.product_id`

	rows, err := r.pool.Query(ctx, query, companyID, productIDs, since)
	if err != nil {
		return nil, fmt.Errorf("sum sold by product: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal, len(productIDs))
	for rows.Next() {
		var (
			productID string
			qty       decimal.Decimal
		)
		if err := rows.Scan(&productID, &qty); err != nil {
			return nil, fmt.Errorf("scan sales sum: %w", err)
		}
		sums[productID] = qty
	}
	return sums, rows.Err()
}
