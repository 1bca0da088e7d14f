package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/clock"
)

// GrupoUseCase casos de uso CRUD para grupos. Desactivar un grupo no toca sus subgrupos.
type GrupoUseCase struct {
	repo  repository.GrupoRepository
	clock clock.Clock
}

func NewGrupoUseCase(repo repository.GrupoRepository, clk clock.Clock) *GrupoUseCase {
	return &GrupoUseCase{repo: repo, clock: clk}
}

func (uc *GrupoUseCase) List(ctx context.Context, filtro repository.Filtro) ([]dto.GrupoResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return dto.Lista(list, dto.NewGrupoResponse), nil
}

func (uc *GrupoUseCase) GetByID(ctx context.Context, id string) (*dto.GrupoResponse, error) {
	g, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewGrupoResponse(g)
	return &out, nil
}

func (uc *GrupoUseCase) Create(ctx context.Context, in dto.CreateGrupoRequest) (*dto.GrupoResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	g := &entity.Grupo{Catalogo: nuevoCatalogo(uc.clock.Now(), in.Nombre, in.Descripcion)}
	if err := uc.nombreLibre(ctx, g); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	out := dto.NewGrupoResponse(g)
	return &out, nil
}

func (uc *GrupoUseCase) Update(ctx context.Context, id string, in dto.UpdateGrupoRequest) (*dto.GrupoResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	g, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	reemplazar(&g.Catalogo, uc.clock.Now(), in.Nombre, in.Descripcion)
	if err := uc.nombreLibre(ctx, g); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	out := dto.NewGrupoResponse(g)
	return &out, nil
}

func (uc *GrupoUseCase) SetEstado(ctx context.Context, id string, activo bool) (*dto.GrupoResponse, error) {
	g, err := uc.repo.SetEstado(ctx, id, entity.EstadoDesdeBool(activo), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	out := dto.NewGrupoResponse(g)
	return &out, nil
}

func (uc *GrupoUseCase) get(ctx context.Context, id string) (*entity.Grupo, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, noEncontrado(entity.KindGrupos, id)
	}
	return g, nil
}

// nombreLibre: el nombre de grupo es único sin importar el estado.
func (uc *GrupoUseCase) nombreLibre(ctx context.Context, g *entity.Grupo) error {
	otro, err := uc.repo.GetByClaveNombre(ctx, entity.ClaveNombre(g.Nombre))
	if err != nil {
		return err
	}
	if otro != nil && otro.ID != g.ID {
		return duplicado("nombre", g.Nombre)
	}
	return nil
}
