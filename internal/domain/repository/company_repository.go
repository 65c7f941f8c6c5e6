package repository

import (
	"context"

	"github.com/jhoicas/Alertas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de lectura para Company (DIP).
// La implementación vive en infrastructure. Este servicio nunca escribe entidades.
type CompanyRepository interface {
	// Exists informa si la empresa existe. Un error aquí es falla de infraestructura,
	// nunca debe interpretarse como "no encontrada".
	Exists(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
}
