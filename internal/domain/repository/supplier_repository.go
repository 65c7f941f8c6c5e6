package repository

import "context"

// ProductSupplierLink fila plana del enlace producto→proveedor, ya unida con el proveedor.
type ProductSupplierLink struct {
	ProductID    string
	SupplierID   string
	SupplierName string
	ContactEmail string
	IsPrimary    bool
}

// SupplierRepository define el puerto de lectura sobre proveedores enlazados.
type SupplierRepository interface {
	// ListLinksByProducts devuelve los enlaces de los productos indicados en el
	// orden por defecto del almacén. Ese orden decide el desempate del resolutor,
	// por lo que no se impone aquí ningún ORDER BY adicional.
	ListLinksByProducts(ctx context.Context, productIDs []string) ([]ProductSupplierLink, error)
}
