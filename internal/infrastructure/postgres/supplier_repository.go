package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo lectura de enlaces producto→proveedor sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// ListLinksByProducts devuelve los enlaces de los productos indicados en una sola
// consulta. Sin ORDER BY a propósito: el orden por defecto del almacén decide el
// desempate del resolutor (primero visto gana) y no debe alterarse aquí.
func (r *SupplierRepo) ListLinksByProducts(ctx context.Context, productIDs []string) ([]repository.ProductSupplierLink, error) {
	const query = `
		SELECT
			ps.product_id,
			s.id,
			s.name,
			s.contact_email,
			ps.is_primary
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list supplier links: %w", err)
	}
	defer rows.Close()

	var links []repository.ProductSupplierLink
	for rows.Next() {
		var l repository.ProductSupplierLink
		if err := rows.Scan(&l.ProductID, &l.SupplierID, &l.SupplierName, &l.ContactEmail, &l.IsPrimary); err != nil {
			return nil, fmt.Errorf("scan supplier link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
