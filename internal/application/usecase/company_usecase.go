package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Alertas-api/internal/application/dto"
	"github.com/jhoicas/Alertas-api/internal/domain"
	"github.com/jhoicas/Alertas-api/internal/domain/entity"
	"github.com/jhoicas/Alertas-api/internal/domain/repository"
)

// CompanyUseCase lecturas del recurso Company. Las empresas se administran en
// el sistema upstream; este servicio solo las consulta.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetByID devuelve la empresa o domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: obtener empresa: %v", domain.ErrDataUnavailable, err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := toCompanyResponse(c)
	return &out, nil
}

// List devuelve empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) (*dto.CompanyListResponse, error) {
	companies, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: listar empresas: %v", domain.ErrDataUnavailable, err)
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Companies: out, Total: len(out)}, nil
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		NIT:       c.NIT,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}
