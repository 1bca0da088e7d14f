package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/clock"
)

// SubgrupoUseCase casos de uso CRUD para subgrupos.
// GrupoID se verifica antes de escribir; la FK del almacenamiento cubre las carreras.
// Toda lectura devuelve SubgrupoVista con la marca de huérfano calculada al momento.
type SubgrupoUseCase struct {
	repo   repository.SubgrupoRepository
	grupos repository.GrupoRepository
	clock  clock.Clock
}

func NewSubgrupoUseCase(repo repository.SubgrupoRepository, grupos repository.GrupoRepository, clk clock.Clock) *SubgrupoUseCase {
	return &SubgrupoUseCase{repo: repo, grupos: grupos, clock: clk}
}

func (uc *SubgrupoUseCase) List(ctx context.Context, filtro repository.Filtro) ([]dto.SubgrupoVista, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	grupos, err := uc.grupos.List(ctx, repository.Filtro{})
	if err != nil {
		return nil, err
	}
	activos := make(map[string]bool, len(grupos))
	for _, g := range grupos {
		activos[g.ID] = g.Estado.Activo()
	}
	out := make([]dto.SubgrupoVista, 0, len(list))
	for _, sg := range list {
		out = append(out, dto.NewSubgrupoVista(sg, activos[sg.GrupoID]))
	}
	return out, nil
}

// ListByGrupo lista los subgrupos de un grupo (ErrNotFound si el grupo no existe).
func (uc *SubgrupoUseCase) ListByGrupo(ctx context.Context, grupoID string, filtro repository.Filtro) ([]dto.SubgrupoVista, error) {
	g, err := uc.grupos.GetByID(ctx, grupoID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, noEncontrado(entity.KindGrupos, grupoID)
	}
	list, err := uc.repo.ListByGrupo(ctx, grupoID, filtro)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubgrupoVista, 0, len(list))
	for _, sg := range list {
		out = append(out, dto.NewSubgrupoVista(sg, g.Estado.Activo()))
	}
	return out, nil
}

func (uc *SubgrupoUseCase) GetByID(ctx context.Context, id string) (*dto.SubgrupoVista, error) {
	sg, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.vista(ctx, sg)
}

func (uc *SubgrupoUseCase) Create(ctx context.Context, in dto.CreateSubgrupoRequest) (*dto.SubgrupoVista, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	grupoID := strings.TrimSpace(in.GrupoID)
	if err := uc.grupoExiste(ctx, grupoID); err != nil {
		return nil, err
	}
	sg := &entity.Subgrupo{Catalogo: nuevoCatalogo(uc.clock.Now(), in.Nombre, in.Descripcion), GrupoID: grupoID}
	if err := uc.repo.Create(ctx, sg); err != nil {
		return nil, err
	}
	return uc.vista(ctx, sg)
}

func (uc *SubgrupoUseCase) Update(ctx context.Context, id string, in dto.UpdateSubgrupoRequest) (*dto.SubgrupoVista, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	sg, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	grupoID := strings.TrimSpace(in.GrupoID)
	if err := uc.grupoExiste(ctx, grupoID); err != nil {
		return nil, err
	}
	reemplazar(&sg.Catalogo, uc.clock.Now(), in.Nombre, in.Descripcion)
	sg.GrupoID = grupoID
	if err := uc.repo.Update(ctx, sg); err != nil {
		return nil, err
	}
	return uc.vista(ctx, sg)
}

func (uc *SubgrupoUseCase) SetEstado(ctx context.Context, id string, activo bool) (*dto.SubgrupoVista, error) {
	sg, err := uc.repo.SetEstado(ctx, id, entity.EstadoDesdeBool(activo), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return uc.vista(ctx, sg)
}

func (uc *SubgrupoUseCase) get(ctx context.Context, id string) (*entity.Subgrupo, error) {
	sg, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sg == nil {
		return nil, noEncontrado(entity.KindSubgrupos, id)
	}
	return sg, nil
}

func (uc *SubgrupoUseCase) vista(ctx context.Context, sg *entity.Subgrupo) (*dto.SubgrupoVista, error) {
	g, err := uc.grupos.GetByID(ctx, sg.GrupoID)
	if err != nil {
		return nil, err
	}
	out := dto.NewSubgrupoVista(sg, g != nil && g.Estado.Activo())
	return &out, nil
}

// grupoExiste acepta grupos inactivos: desactivar no invalida referencias.
func (uc *SubgrupoUseCase) grupoExiste(ctx context.Context, grupoID string) error {
	g, err := uc.grupos.GetByID(ctx, grupoID)
	if err != nil {
		return err
	}
	if g == nil {
		return fmt.Errorf("%w: el grupo %q no existe", domain.ErrIntegrity, grupoID)
	}
	return nil
}
