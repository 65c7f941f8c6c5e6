package entity

import "time"

// Inventory representa la posición de stock de un producto en una bodega,
// con su umbral de reorden. Una posición está "baja" si Quantity <= Threshold (inclusivo).
// Quantity y Threshold son enteros no negativos.
type Inventory struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	Threshold   int64
	UpdatedAt   time.Time
}
