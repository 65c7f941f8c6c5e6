package alerting

import "github.com/jhoicas/Alertas-api/internal/domain/repository"

// PreferredSupplier proveedor elegido para un producto. IsPrimary es interno
// al desempate y no se expone en la respuesta.
type PreferredSupplier struct {
	ID           string
	Name         string
	ContactEmail string
	IsPrimary    bool
}

// ResolvePreferredSuppliers reduce los enlaces producto→proveedor a un único
// proveedor preferido por producto. Regla: gana el primer enlace visto; un
// candidato solo desplaza al vigente cuando el candidato es primario y el
// vigente no. Entre no-primarios gana el primero visto; si hay varios primarios
// para el mismo producto también gana el primero visto, es decir, el orden de
// filas del almacén decide. Preservar ese desempate tal cual; no sustituir por
// menor id u otro criterio.
// Productos sin enlace alguno quedan ausentes del mapa.
func ResolvePreferredSuppliers(links []repository.ProductSupplierLink) map[string]PreferredSupplier {
	preferred := make(map[string]PreferredSupplier, len(links))
	for _, l := range links {
		current, seen := preferred[l.ProductID]
		if seen && !(l.IsPrimary && !current.IsPrimary) {
			continue
		}
		preferred[l.ProductID] = PreferredSupplier{
			ID:           l.SupplierID,
			Name:         l.SupplierName,
			ContactEmail: l.ContactEmail,
			IsPrimary:    l.IsPrimary,
		}
	}
	return preferred
}
