package entity

import "time"

// Product representa un producto o SKU del catálogo (independiente de bodega).
// Un producto puede tener inventario en varias bodegas y varios proveedores enlazados.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
