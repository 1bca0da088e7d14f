package memoria

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// ── Áreas de producción ─────────────────────────────────────────────────────

// AreaProduccionRepository implementa repository.AreaProduccionRepository.
type AreaProduccionRepository struct{ s *Store }

func (s *Store) AreasProduccion() *AreaProduccionRepository { return &AreaProduccionRepository{s: s} }

// nombre único entre las áreas activas
func (r *AreaProduccionRepository) unico(a *entity.AreaProduccion) error {
	if !a.Estado.Activo() {
		return nil
	}
	clave := entity.ClaveNombre(a.Nombre)
	return r.s.areas.unicoL(a, "nombre", func(o *entity.AreaProduccion) bool {
		return o.Estado.Activo() && entity.ClaveNombre(o.Nombre) == clave
	})
}

func (r *AreaProduccionRepository) List(ctx context.Context, f repository.Filtro) ([]*entity.AreaProduccion, error) {
	return r.s.areas.list(ctx, f, nil)
}

func (r *AreaProduccionRepository) GetByID(ctx context.Context, id string) (*entity.AreaProduccion, error) {
	return r.s.areas.get(ctx, id)
}

func (r *AreaProduccionRepository) Create(ctx context.Context, a *entity.AreaProduccion) error {
	return r.s.areas.create(ctx, a, r.unico)
}

func (r *AreaProduccionRepository) Update(ctx context.Context, a *entity.AreaProduccion) error {
	return r.s.areas.update(ctx, a, func(a *entity.AreaProduccion) error {
		// el estado no se cambia por Update
		if prev := r.s.areas.getL(a.ID); prev != nil {
			a.Estado = prev.Estado
		}
		return r.unico(a)
	})
}

func (r *AreaProduccionRepository) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.AreaProduccion, error) {
	return r.s.areas.setEstado(ctx, id, e, at, r.unico)
}

func (r *AreaProduccionRepository) GetActivaByClaveNombre(ctx context.Context, clave string) (*entity.AreaProduccion, error) {
	l, err := r.s.areas.list(ctx, repository.Filtro{}, func(a *entity.AreaProduccion) bool {
		return entity.ClaveNombre(a.Nombre) == clave
	})
	if err != nil || len(l) == 0 {
		return nil, err
	}
	return l[0], nil
}

// ── Grupos ──────────────────────────────────────────────────────────────────

// GrupoRepository implementa repository.GrupoRepository.
type GrupoRepository struct{ s *Store }

func (s *Store) Grupos() *GrupoRepository { return &GrupoRepository{s: s} }

func (r *GrupoRepository) unico(g *entity.Grupo) error {
	clave := entity.ClaveNombre(g.Nombre)
	return r.s.grupos.unicoL(g, "nombre", func(o *entity.Grupo) bool { return entity.ClaveNombre(o.Nombre) == clave })
}

func (r *GrupoRepository) List(ctx context.Context, f repository.Filtro) ([]*entity.Grupo, error) {
	return r.s.grupos.list(ctx, f, nil)
}

func (r *GrupoRepository) GetByID(ctx context.Context, id string) (*entity.Grupo, error) {
	return r.s.grupos.get(ctx, id)
}

func (r *GrupoRepository) Create(ctx context.Context, g *entity.Grupo) error {
	return r.s.grupos.create(ctx, g, r.unico)
}

func (r *GrupoRepository) Update(ctx context.Context, g *entity.Grupo) error {
	return r.s.grupos.update(ctx, g, func(g *entity.Grupo) error {
		if prev := r.s.grupos.getL(g.ID); prev != nil {
			g.Estado = prev.Estado
		}
		return r.unico(g)
	})
}

func (r *GrupoRepository) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.Grupo, error) {
	return r.s.grupos.setEstado(ctx, id, e, at, nil)
}

func (r *GrupoRepository) GetByClaveNombre(ctx context.Context, clave string) (*entity.Grupo, error) {
	l, err := r.s.grupos.list(ctx, repository.Filtro{IncluirInactivos: true}, func(g *entity.Grupo) bool {
		return entity.ClaveNombre(g.Nombre) == clave
	})
	if err != nil || len(l) == 0 {
		return nil, err
	}
	return l[0], nil
}

// ── Subgrupos ───────────────────────────────────────────────────────────────

// SubgrupoRepository implementa repository.SubgrupoRepository.
// La existencia del grupo se comprueba dentro del mismo lock de escritura.
type SubgrupoRepository struct{ s *Store }

func (s *Store) Subgrupos() *SubgrupoRepository { return &SubgrupoRepository{s: s} }

func (r *SubgrupoRepository) integridad(sg *entity.Subgrupo) error {
	if !r.s.grupos.existe(sg.GrupoID) {
		return fmt.Errorf("%w: grupo %s", domain.ErrIntegrity, sg.GrupoID)
	}
	return nil
}

func (r *SubgrupoRepository) List(ctx context.Context, f repository.Filtro) ([]*entity.Subgrupo, error) {
	return r.s.subgrupos.list(ctx, f, nil)
}

func (r *SubgrupoRepository) ListByGrupo(ctx context.Context, grupoID string, f repository.Filtro) ([]*entity.Subgrupo, error) {
	return r.s.subgrupos.list(ctx, f, func(sg *entity.Subgrupo) bool { return sg.GrupoID == grupoID })
}

func (r *SubgrupoRepository) GetByID(ctx context.Context, id string) (*entity.Subgrupo, error) {
	return r.s.subgrupos.get(ctx, id)
}

func (r *SubgrupoRepository) Create(ctx context.Context, sg *entity.Subgrupo) error {
	return r.s.subgrupos.create(ctx, sg, r.integridad)
}

func (r *SubgrupoRepository) Update(ctx context.Context, sg *entity.Subgrupo) error {
	return r.s.subgrupos.update(ctx, sg, func(sg *entity.Subgrupo) error {
		if prev := r.s.subgrupos.getL(sg.ID); prev != nil {
			sg.Estado = prev.Estado
		}
		return r.integridad(sg)
	})
}

func (r *SubgrupoRepository) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.Subgrupo, error) {
	return r.s.subgrupos.setEstado(ctx, id, e, at, nil)
}

// ── Métodos de pago ─────────────────────────────────────────────────────────

// MetodoPagoRepository implementa repository.MetodoPagoRepository.
type MetodoPagoRepository struct{ s *Store }

func (s *Store) MetodosPago() *MetodoPagoRepository { return &MetodoPagoRepository{s: s} }

func (r *MetodoPagoRepository) List(ctx context.Context, f repository.Filtro) ([]*entity.MetodoPago, error) {
	return r.s.metodos.list(ctx, f, nil)
}

func (r *MetodoPagoRepository) GetByID(ctx context.Context, id string) (*entity.MetodoPago, error) {
	return r.s.metodos.get(ctx, id)
}

func (r *MetodoPagoRepository) Create(ctx context.Context, m *entity.MetodoPago) error {
	return r.s.metodos.create(ctx, m, nil)
}

func (r *MetodoPagoRepository) Update(ctx context.Context, m *entity.MetodoPago) error {
	return r.s.metodos.update(ctx, m, func(m *entity.MetodoPago) error {
		if prev := r.s.metodos.getL(m.ID); prev != nil {
			m.Estado = prev.Estado
		}
		return nil
	})
}

func (r *MetodoPagoRepository) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.MetodoPago, error) {
	return r.s.metodos.setEstado(ctx, id, e, at, nil)
}

// ── Tipos de cliente ────────────────────────────────────────────────────────

// TipoClienteRepository implementa repository.TipoClienteRepository.
type TipoClienteRepository struct{ s *Store }

func (s *Store) TiposCliente() *TipoClienteRepository { return &TipoClienteRepository{s: s} }

func (r *TipoClienteRepository) List(ctx context.Context, f repository.Filtro) ([]*entity.TipoCliente, error) {
	return r.s.tipos.list(ctx, f, nil)
}

func (r *TipoClienteRepository) GetByID(ctx context.Context, id string) (*entity.TipoCliente, error) {
	return r.s.tipos.get(ctx, id)
}

func (r *TipoClienteRepository) Create(ctx context.Context, t *entity.TipoCliente) error {
	return r.s.tipos.create(ctx, t, nil)
}

func (r *TipoClienteRepository) Update(ctx context.Context, t *entity.TipoCliente) error {
	return r.s.tipos.update(ctx, t, func(t *entity.TipoCliente) error {
		if prev := r.s.tipos.getL(t.ID); prev != nil {
			t.Estado = prev.Estado
			t.CreatedAt = prev.CreatedAt
		}
		return nil
	})
}

func (r *TipoClienteRepository) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.TipoCliente, error) {
	return r.s.tipos.setEstado(ctx, id, e, at, nil)
}

// ── Unidades ────────────────────────────────────────────────────────────────

// UnidadRepository implementa repository.UnidadRepository. La clave es única sin distinguir mayúsculas.
type UnidadRepository struct{ s *Store }

func (s *Store) Unidades() *UnidadRepository { return &UnidadRepository{s: s} }

func (r *UnidadRepository) unico(u *entity.Unidad) error {
	return r.s.unidades.unicoL(u, "clave", func(o *entity.Unidad) bool { return strings.EqualFold(o.Clave, u.Clave) })
}

func (r *UnidadRepository) List(ctx context.Context, f repository.Filtro) ([]*entity.Unidad, error) {
	return r.s.unidades.list(ctx, f, nil)
}

func (r *UnidadRepository) GetByID(ctx context.Context, id string) (*entity.Unidad, error) {
	return r.s.unidades.get(ctx, id)
}

func (r *UnidadRepository) GetByClave(ctx context.Context, clave string) (*entity.Unidad, error) {
	l, err := r.s.unidades.list(ctx, repository.Filtro{IncluirInactivos: true}, func(u *entity.Unidad) bool {
		return strings.EqualFold(u.Clave, clave)
	})
	if err != nil || len(l) == 0 {
		return nil, err
	}
	return l[0], nil
}

func (r *UnidadRepository) Create(ctx context.Context, u *entity.Unidad) error {
	return r.s.unidades.create(ctx, u, r.unico)
}

func (r *UnidadRepository) Update(ctx context.Context, u *entity.Unidad) error {
	return r.s.unidades.update(ctx, u, func(u *entity.Unidad) error {
		if prev := r.s.unidades.getL(u.ID); prev != nil {
			u.Estado = prev.Estado
		}
		return r.unico(u)
	})
}

func (r *UnidadRepository) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.Unidad, error) {
	return r.s.unidades.setEstado(ctx, id, e, at, nil)
}

// UnidadSyncRepository lectura del contrato de sincronización.
type UnidadSyncRepository struct{ s *Store }

func (s *Store) UnidadesSync() *UnidadSyncRepository { return &UnidadSyncRepository{s: s} }

func (r *UnidadSyncRepository) List(ctx context.Context) ([]*entity.UnidadSync, error) {
	if err := vivo(ctx, "unidades_sync"); err != nil {
		return nil, err
	}
	r.s.syncMu.RLock()
	defer r.s.syncMu.RUnlock()
	out := make([]*entity.UnidadSync, 0, len(r.s.unidadesSync))
	for _, u := range r.s.unidadesSync {
		c := u
		out = append(out, &c)
	}
	return out, nil
}

// CargarUnidadesSync reemplaza el contenido del contrato de sincronización.
// Es el punto de entrada de la integración externa en este driver.
func (s *Store) CargarUnidadesSync(filas []entity.UnidadSync) {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()
	s.unidadesSync = append([]entity.UnidadSync(nil), filas...)
}

var (
	_ repository.AreaProduccionRepository = (*AreaProduccionRepository)(nil)
	_ repository.GrupoRepository          = (*GrupoRepository)(nil)
	_ repository.SubgrupoRepository       = (*SubgrupoRepository)(nil)
	_ repository.MetodoPagoRepository     = (*MetodoPagoRepository)(nil)
	_ repository.TipoClienteRepository    = (*TipoClienteRepository)(nil)
	_ repository.UnidadRepository         = (*UnidadRepository)(nil)
	_ repository.UnidadSyncRepository     = (*UnidadSyncRepository)(nil)
)
