package dto

// SupplierDTO proveedor preferido adjunto a una alerta. El flag is_primary es
// interno al desempate y no forma parte de la respuesta.
type SupplierDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una alerta de stock bajo para una posición (producto, bodega).
// DaysUntilStockout es null cuando la ventana de promedio no registró ventas
// (velocidad indefinida); Supplier es null si el producto no tiene proveedor enlazado.
type LowStockAlertDTO struct {
	ProductID         string       `json:"product_id"`
	ProductName       string       `json:"product_name"`
	SKU               string       `json:"sku"`
	WarehouseID       string       `json:"warehouse_id"`
	WarehouseName     string       `json:"warehouse_name"`
	CurrentStock      int64        `json:"current_stock"`
	Threshold         int64        `json:"threshold"`
	DaysUntilStockout *int64       `json:"days_until_stockout"`
	Supplier          *SupplierDTO `json:"supplier"`
}

// LowStockAlertsResponse respuesta completa del cálculo de alertas.
// Cero alertas es un resultado válido: lista vacía, nunca error.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
