package entity

import "time"

// Supplier representa un proveedor con su canal de contacto.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductSupplier enlace muchos-a-muchos entre producto y proveedor.
// Conceptualmente debería existir a lo sumo un enlace primario por producto,
// pero el modelo no lo garantiza: el resolutor debe tolerar cero o varios primarios.
type ProductSupplier struct {
	ProductID  string
	SupplierID string
	IsPrimary  bool
	CreatedAt  time.Time
}
