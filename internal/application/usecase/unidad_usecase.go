package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/clock"
	"golang.org/x/sync/errgroup"
)

// UnidadUseCase casos de uso de unidades de medida.
// El catálogo administrado y el contrato de sincronización se leen por separado;
// Conciliar es la única operación que los compara.
type UnidadUseCase struct {
	repo  repository.UnidadRepository
	sync  repository.UnidadSyncRepository
	clock clock.Clock
}

func NewUnidadUseCase(repo repository.UnidadRepository, sync repository.UnidadSyncRepository, clk clock.Clock) *UnidadUseCase {
	return &UnidadUseCase{repo: repo, sync: sync, clock: clk}
}

func (uc *UnidadUseCase) List(ctx context.Context, filtro repository.Filtro) ([]dto.UnidadResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return dto.Lista(list, dto.NewUnidadResponse), nil
}

func (uc *UnidadUseCase) GetByID(ctx context.Context, id string) (*dto.UnidadResponse, error) {
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewUnidadResponse(u)
	return &out, nil
}

func (uc *UnidadUseCase) Create(ctx context.Context, in dto.CreateUnidadRequest) (*dto.UnidadResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	u := &entity.Unidad{
		Catalogo:    nuevoCatalogo(uc.clock.Now(), in.Nombre, in.Descripcion),
		Clave:       in.Clave,
		Abreviacion: strings.TrimSpace(in.Abreviacion),
	}
	if err := uc.claveLibre(ctx, u); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	out := dto.NewUnidadResponse(u)
	return &out, nil
}

func (uc *UnidadUseCase) Update(ctx context.Context, id string, in dto.UpdateUnidadRequest) (*dto.UnidadResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	reemplazar(&u.Catalogo, uc.clock.Now(), in.Nombre, in.Descripcion)
	u.Clave = in.Clave
	u.Abreviacion = strings.TrimSpace(in.Abreviacion)
	if err := uc.claveLibre(ctx, u); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	out := dto.NewUnidadResponse(u)
	return &out, nil
}

func (uc *UnidadUseCase) SetEstado(ctx context.Context, id string, activo bool) (*dto.UnidadResponse, error) {
	u, err := uc.repo.SetEstado(ctx, id, entity.EstadoDesdeBool(activo), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	out := dto.NewUnidadResponse(u)
	return &out, nil
}

// ListSync devuelve el contrato de sincronización tal cual llega de la integración.
func (uc *UnidadUseCase) ListSync(ctx context.Context) ([]dto.UnidadSyncResponse, error) {
	list, err := uc.sync.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.Lista(list, dto.NewUnidadSyncResponse), nil
}

// Conciliar compara ambos contratos por clave (sin distinguir mayúsculas). No escribe nada.
func (uc *UnidadUseCase) Conciliar(ctx context.Context) (*dto.ConciliacionUnidadesResponse, error) {
	var (
		catalogo []*entity.Unidad
		sync     []*entity.UnidadSync
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalogo, err = uc.repo.List(gctx, repository.Filtro{IncluirInactivos: true})
		return err
	})
	g.Go(func() error {
		var err error
		sync, err = uc.sync.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.ConciliacionUnidadesResponse{
		Coincide:     []string{},
		Difiere:      []dto.DiferenciaUnidad{},
		SoloCatalogo: []dto.UnidadResponse{},
		SoloSync:     []dto.UnidadSyncResponse{},
		Invalidas:    []dto.SyncInvalida{},
	}

	porClave := make(map[string]*entity.Unidad, len(catalogo))
	for _, u := range catalogo {
		porClave[strings.ToUpper(u.Clave)] = u
	}

	vistas := make(map[string]bool, len(sync))
	for _, s := range sync {
		clave := strings.ToUpper(strings.TrimSpace(s.Clave))
		if motivos := motivosInvalida(s, clave, vistas); len(motivos) > 0 {
			out.Invalidas = append(out.Invalidas, dto.SyncInvalida{Unidad: dto.NewUnidadSyncResponse(s), Motivos: motivos})
			continue
		}
		vistas[clave] = true

		u, ok := porClave[clave]
		if !ok {
			out.SoloSync = append(out.SoloSync, dto.NewUnidadSyncResponse(s))
			continue
		}
		delete(porClave, clave)

		var campos []string
		if entity.ClaveNombre(u.Nombre) != entity.ClaveNombre(s.Nombre) {
			campos = append(campos, "nombre")
		}
		if !strings.EqualFold(strings.TrimSpace(u.Abreviacion), strings.TrimSpace(s.Abreviacion)) {
			campos = append(campos, "abreviacion")
		}
		if len(campos) == 0 {
			out.Coincide = append(out.Coincide, u.Clave)
			continue
		}
		out.Difiere = append(out.Difiere, dto.DiferenciaUnidad{
			Clave:    u.Clave,
			Campos:   campos,
			Catalogo: dto.NewUnidadResponse(u),
			Sync:     dto.NewUnidadSyncResponse(s),
		})
	}
	for _, u := range porClave {
		out.SoloCatalogo = append(out.SoloCatalogo, dto.NewUnidadResponse(u))
	}

	sort.Strings(out.Coincide)
	sort.Slice(out.Difiere, func(i, j int) bool { return out.Difiere[i].Clave < out.Difiere[j].Clave })
	sort.Slice(out.SoloCatalogo, func(i, j int) bool { return out.SoloCatalogo[i].Clave < out.SoloCatalogo[j].Clave })
	sort.Slice(out.SoloSync, func(i, j int) bool { return out.SoloSync[i].Clave < out.SoloSync[j].Clave })
	return out, nil
}

// motivosInvalida valida la auditoría de la fila y descarta claves vacías o repetidas.
func motivosInvalida(s *entity.UnidadSync, clave string, vistas map[string]bool) []string {
	var motivos []string
	if clave == "" {
		motivos = append(motivos, "clave vacía")
	} else if vistas[clave] {
		motivos = append(motivos, "clave repetida en la sincronización")
	}
	err := validation.Validate(dto.UnidadSyncAuditoria{UsuarioULID: s.UsuarioULID, EmpresaULID: s.EmpresaULID})
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, c := range ve.Campos {
			motivos = append(motivos, c.Mensaje)
		}
	}
	return motivos
}

func (uc *UnidadUseCase) get(ctx context.Context, id string) (*entity.Unidad, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, noEncontrado(entity.KindUnidades, id)
	}
	return u, nil
}

func (uc *UnidadUseCase) claveLibre(ctx context.Context, u *entity.Unidad) error {
	otra, err := uc.repo.GetByClave(ctx, u.Clave)
	if err != nil {
		return err
	}
	if otra != nil && otra.ID != u.ID {
		return duplicado("clave", u.Clave)
	}
	return nil
}
