package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var (
	_ repository.AreaProduccionRepository = (*AreaProduccionRepo)(nil)
	_ repository.GrupoRepository          = (*GrupoRepo)(nil)
	_ repository.SubgrupoRepository       = (*SubgrupoRepo)(nil)
	_ repository.MetodoPagoRepository     = (*MetodoPagoRepo)(nil)
	_ repository.TipoClienteRepository    = (*TipoClienteRepo)(nil)
	_ repository.UnidadRepository         = (*UnidadRepo)(nil)
)

func sinExtra[T any](*T) []any { return nil }

// ── Áreas de producción ─────────────────────────────────────────────────────

// AreaProduccionRepo: el índice único parcial areas_produccion_nombre_activa_key
// hace cumplir la unicidad del nombre solo entre áreas activas (también al reactivar).
type AreaProduccionRepo struct {
	t *tablaCatalogo[entity.AreaProduccion]
}

func NewAreaProduccionRepository(q Querier) *AreaProduccionRepo {
	return &AreaProduccionRepo{t: &tablaCatalogo[entity.AreaProduccion]{
		q: q, tabla: "areas_produccion",
		base:     func(a *entity.AreaProduccion) *entity.Catalogo { return &a.Catalogo },
		valores:  sinExtra[entity.AreaProduccion],
		destinos: sinExtra[entity.AreaProduccion],
	}}
}

func (r *AreaProduccionRepo) List(ctx context.Context, f repository.Filtro) ([]*entity.AreaProduccion, error) {
	return r.t.list(ctx, f, "")
}

func (r *AreaProduccionRepo) GetByID(ctx context.Context, id string) (*entity.AreaProduccion, error) {
	return r.t.get(ctx, id)
}

func (r *AreaProduccionRepo) Create(ctx context.Context, a *entity.AreaProduccion) error {
	return r.t.create(ctx, a)
}

func (r *AreaProduccionRepo) Update(ctx context.Context, a *entity.AreaProduccion) error {
	return r.t.update(ctx, a)
}

func (r *AreaProduccionRepo) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.AreaProduccion, error) {
	return r.t.setEstado(ctx, id, e, at)
}

func (r *AreaProduccionRepo) GetActivaByClaveNombre(ctx context.Context, clave string) (*entity.AreaProduccion, error) {
	return r.t.uno(ctx, "clave_nombre = $1 AND estado = 'activo'", clave)
}

// ── Grupos ──────────────────────────────────────────────────────────────────

type GrupoRepo struct {
	t *tablaCatalogo[entity.Grupo]
}

func NewGrupoRepository(q Querier) *GrupoRepo {
	return &GrupoRepo{t: &tablaCatalogo[entity.Grupo]{
		q: q, tabla: "grupos",
		base:     func(g *entity.Grupo) *entity.Catalogo { return &g.Catalogo },
		valores:  sinExtra[entity.Grupo],
		destinos: sinExtra[entity.Grupo],
	}}
}

func (r *GrupoRepo) List(ctx context.Context, f repository.Filtro) ([]*entity.Grupo, error) {
	return r.t.list(ctx, f, "")
}

func (r *GrupoRepo) GetByID(ctx context.Context, id string) (*entity.Grupo, error) {
	return r.t.get(ctx, id)
}

func (r *GrupoRepo) Create(ctx context.Context, g *entity.Grupo) error { return r.t.create(ctx, g) }

func (r *GrupoRepo) Update(ctx context.Context, g *entity.Grupo) error { return r.t.update(ctx, g) }

func (r *GrupoRepo) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.Grupo, error) {
	return r.t.setEstado(ctx, id, e, at)
}

func (r *GrupoRepo) GetByClaveNombre(ctx context.Context, clave string) (*entity.Grupo, error) {
	return r.t.uno(ctx, "clave_nombre = $1", clave)
}

// ── Subgrupos ───────────────────────────────────────────────────────────────

// SubgrupoRepo: la FK subgrupos_grupo_id_fkey se traduce a domain.ErrIntegrity.
type SubgrupoRepo struct {
	t *tablaCatalogo[entity.Subgrupo]
}

func NewSubgrupoRepository(q Querier) *SubgrupoRepo {
	return &SubgrupoRepo{t: &tablaCatalogo[entity.Subgrupo]{
		q: q, tabla: "subgrupos",
		extra:    []string{"grupo_id"},
		base:     func(s *entity.Subgrupo) *entity.Catalogo { return &s.Catalogo },
		valores:  func(s *entity.Subgrupo) []any { return []any{s.GrupoID} },
		destinos: func(s *entity.Subgrupo) []any { return []any{&s.GrupoID} },
	}}
}

func (r *SubgrupoRepo) List(ctx context.Context, f repository.Filtro) ([]*entity.Subgrupo, error) {
	return r.t.list(ctx, f, "")
}

func (r *SubgrupoRepo) ListByGrupo(ctx context.Context, grupoID string, f repository.Filtro) ([]*entity.Subgrupo, error) {
	if !esUUID(grupoID) {
		return []*entity.Subgrupo{}, nil
	}
	return r.t.list(ctx, f, "grupo_id = $2", grupoID)
}

func (r *SubgrupoRepo) GetByID(ctx context.Context, id string) (*entity.Subgrupo, error) {
	return r.t.get(ctx, id)
}

func (r *SubgrupoRepo) Create(ctx context.Context, s *entity.Subgrupo) error {
	if !esUUID(s.GrupoID) {
		return fmt.Errorf("%w: grupo_id", domain.ErrIntegrity)
	}
	return r.t.create(ctx, s)
}

func (r *SubgrupoRepo) Update(ctx context.Context, s *entity.Subgrupo) error {
	if !esUUID(s.GrupoID) {
		return fmt.Errorf("%w: grupo_id", domain.ErrIntegrity)
	}
	return r.t.update(ctx, s)
}

func (r *SubgrupoRepo) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.Subgrupo, error) {
	return r.t.setEstado(ctx, id, e, at)
}

// ── Métodos de pago ─────────────────────────────────────────────────────────

type MetodoPagoRepo struct {
	t *tablaCatalogo[entity.MetodoPago]
}

func NewMetodoPagoRepository(q Querier) *MetodoPagoRepo {
	return &MetodoPagoRepo{t: &tablaCatalogo[entity.MetodoPago]{
		q: q, tabla: "metodos_pago",
		extra:    []string{"requiere_referencia"},
		base:     func(m *entity.MetodoPago) *entity.Catalogo { return &m.Catalogo },
		valores:  func(m *entity.MetodoPago) []any { return []any{m.RequiereReferencia} },
		destinos: func(m *entity.MetodoPago) []any { return []any{&m.RequiereReferencia} },
	}}
}

func (r *MetodoPagoRepo) List(ctx context.Context, f repository.Filtro) ([]*entity.MetodoPago, error) {
	return r.t.list(ctx, f, "")
}

func (r *MetodoPagoRepo) GetByID(ctx context.Context, id string) (*entity.MetodoPago, error) {
	return r.t.get(ctx, id)
}

func (r *MetodoPagoRepo) Create(ctx context.Context, m *entity.MetodoPago) error {
	return r.t.create(ctx, m)
}

func (r *MetodoPagoRepo) Update(ctx context.Context, m *entity.MetodoPago) error {
	return r.t.update(ctx, m)
}

func (r *MetodoPagoRepo) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.MetodoPago, error) {
	return r.t.setEstado(ctx, id, e, at)
}

// ── Tipos de cliente ────────────────────────────────────────────────────────

// TipoClienteRepo: created_at/updated_at se exponen como fecha_creacion/fecha_actualizacion en el contrato.
type TipoClienteRepo struct {
	t *tablaCatalogo[entity.TipoCliente]
}

func NewTipoClienteRepository(q Querier) *TipoClienteRepo {
	return &TipoClienteRepo{t: &tablaCatalogo[entity.TipoCliente]{
		q: q, tabla: "tipos_cliente",
		extra:    []string{"descuento_porcentaje"},
		base:     func(t *entity.TipoCliente) *entity.Catalogo { return &t.Catalogo },
		valores:  func(t *entity.TipoCliente) []any { return []any{t.DescuentoPorcentaje} },
		destinos: func(t *entity.TipoCliente) []any { return []any{&t.DescuentoPorcentaje} },
	}}
}

func (r *TipoClienteRepo) List(ctx context.Context, f repository.Filtro) ([]*entity.TipoCliente, error) {
	return r.t.list(ctx, f, "")
}

func (r *TipoClienteRepo) GetByID(ctx context.Context, id string) (*entity.TipoCliente, error) {
	return r.t.get(ctx, id)
}

func (r *TipoClienteRepo) Create(ctx context.Context, t *entity.TipoCliente) error {
	return r.t.create(ctx, t)
}

func (r *TipoClienteRepo) Update(ctx context.Context, t *entity.TipoCliente) error {
	return r.t.update(ctx, t)
}

func (r *TipoClienteRepo) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.TipoCliente, error) {
	return r.t.setEstado(ctx, id, e, at)
}

// ── Unidades ────────────────────────────────────────────────────────────────

// UnidadRepo: unidades_clave_key es un índice único sobre lower(clave).
type UnidadRepo struct {
	t *tablaCatalogo[entity.Unidad]
}

func NewUnidadRepository(q Querier) *UnidadRepo {
	return &UnidadRepo{t: &tablaCatalogo[entity.Unidad]{
		q: q, tabla: "unidades",
		extra:    []string{"clave", "abreviacion"},
		base:     func(u *entity.Unidad) *entity.Catalogo { return &u.Catalogo },
		valores:  func(u *entity.Unidad) []any { return []any{u.Clave, u.Abreviacion} },
		destinos: func(u *entity.Unidad) []any { return []any{&u.Clave, &u.Abreviacion} },
	}}
}

func (r *UnidadRepo) List(ctx context.Context, f repository.Filtro) ([]*entity.Unidad, error) {
	return r.t.list(ctx, f, "")
}

func (r *UnidadRepo) GetByID(ctx context.Context, id string) (*entity.Unidad, error) {
	return r.t.get(ctx, id)
}

func (r *UnidadRepo) GetByClave(ctx context.Context, clave string) (*entity.Unidad, error) {
	return r.t.uno(ctx, "lower(clave) = lower($1)", clave)
}

func (r *UnidadRepo) Create(ctx context.Context, u *entity.Unidad) error { return r.t.create(ctx, u) }

func (r *UnidadRepo) Update(ctx context.Context, u *entity.Unidad) error { return r.t.update(ctx, u) }

func (r *UnidadRepo) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.Unidad, error) {
	return r.t.setEstado(ctx, id, e, at)
}
