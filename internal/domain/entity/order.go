package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa un pedido de venta de una empresa. El historial de ventas
// que alimenta las alertas proviene de sus líneas (OrderItem), no del pedido en sí.
type Order struct {
	ID        string
	CompanyID string
	CreatedAt time.Time
}

// OrderItem línea de pedido: única fuente de historial de ventas por producto.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	CreatedAt time.Time
}
