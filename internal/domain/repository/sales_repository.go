package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesRepository define el puerto de agregación de ventas históricas.
type SalesRepository interface {
	// SumSoldByProduct suma order_items.quantity por producto para los pedidos de la
	// empresa con created_at >= since. Productos sin líneas en la ventana quedan
	// ausentes del mapa: el caller debe tratar ausencia como cero.
	// Se invoca dos veces por petición con ventanas independientes (actividad y promedio).
	SumSoldByProduct(ctx context.Context, companyID string, productIDs []string, since time.Time) (map[string]decimal.Decimal, error)
}
