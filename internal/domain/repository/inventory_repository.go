package repository

import "context"

// LowStockCandidate fila plana de una posición de inventario en o bajo su umbral,
// ya unida con producto y bodega. El repositorio no aplica más reglas de negocio.
type LowStockCandidate struct {
	ProductID     string
	ProductName   string
	SKU           string
	WarehouseID   string
	WarehouseName string
	Quantity      int64
	Threshold     int64
}

// InventoryRepository define el puerto de lectura sobre posiciones de inventario.
type InventoryRepository interface {
	// GetLowStockCandidates devuelve toda posición con quantity <= threshold
	// restringida a bodegas de la empresa, en el orden de la consulta.
	// Sin paginación: el resultado es acotado a este alcance.
	GetLowStockCandidates(ctx context.Context, companyID string) ([]LowStockCandidate, error)
}
