package dto

import (
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CatalogoResponse campos comunes de lectura de todo catálogo.
type CatalogoResponse struct {
	ID          string        `json:"id"`
	Nombre      string        `json:"nombre"`
	Descripcion string        `json:"descripcion"`
	Estado      entity.Estado `json:"estado"`
	Activo      bool          `json:"activo"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewCatalogoResponse copia la forma base.
func NewCatalogoResponse(c *entity.Catalogo) CatalogoResponse {
	return CatalogoResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Estado:      c.Estado,
		Activo:      c.Estado.Activo(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ── Áreas de producción ─────────────────────────────────────────────────────

type CreateAreaProduccionRequest struct {
	Nombre      string `json:"nombre" validate:"required,notblank,max=120"`
	Descripcion string `json:"descripcion" validate:"max=500"`
}

// UpdateAreaProduccionRequest reemplazo completo.
type UpdateAreaProduccionRequest struct {
	Nombre      string `json:"nombre" validate:"required,notblank,max=120"`
	Descripcion string `json:"descripcion" validate:"max=500"`
}

type AreaProduccionResponse struct {
	CatalogoResponse
}

// ── Grupos ──────────────────────────────────────────────────────────────────

type CreateGrupoRequest struct {
	Nombre      string `json:"nombre" validate:"required,notblank,max=120"`
	Descripcion string `json:"descripcion" validate:"max=500"`
}

// UpdateGrupoRequest reemplazo completo.
type UpdateGrupoRequest struct {
	Nombre      string `json:"nombre" validate:"required,notblank,max=120"`
	Descripcion string `json:"descripcion" validate:"max=500"`
}

type GrupoResponse struct {
	CatalogoResponse
}

// ── Subgrupos ───────────────────────────────────────────────────────────────

type CreateSubgrupoRequest struct {
	Nombre      string `json:"nombre" validate:"required,notblank,max=120"`
	Descripcion string `json:"descripcion" validate:"max=500"`
	GrupoID     string `json:"grupo_id" validate:"required,notblank"`
}

// UpdateSubgrupoRequest reemplazo completo; permite mover el subgrupo de grupo.
type UpdateSubgrupoRequest struct {
	Nombre      string `json:"nombre" validate:"required,notblank,max=120"`
	Descripcion string `json:"descripcion" validate:"max=500"`
	GrupoID     string `json:"grupo_id" validate:"required,notblank"`
}

type SubgrupoResponse struct {
	CatalogoResponse
	GrupoID string `json:"grupo_id"`
}

// SubgrupoVista es la forma de lectura de un subgrupo en la API y en la página de administración.
// Huerfano es true si el grupo padre no existe o está inactivo.
type SubgrupoVista struct {
	SubgrupoResponse
	Huerfano bool `json:"huerfano"`
}

// ── Métodos de pago ─────────────────────────────────────────────────────────

type CreateMetodoPagoRequest struct {
	Nombre             string `json:"nombre" validate:"required,notblank,max=120"`
	Descripcion        string `json:"descripcion" validate:"max=500"`
	RequiereReferencia bool   `json:"requiere_referencia"`
}

// UpdateMetodoPagoRequest reemplazo completo; requiere_referencia omitido queda en false.
type UpdateMetodoPagoRequest struct {
	Nombre             string `json:"nombre" validate:"required,notblank,max=120"`
	Descripcion        string `json:"descripcion" validate:"max=500"`
	RequiereReferencia bool   `json:"requiere_referencia"`
}

type MetodoPagoResponse struct {
	CatalogoResponse
	RequiereReferencia bool `json:"requiere_referencia"`
}

// ── Tipos de cliente ────────────────────────────────────────────────────────

type CreateTipoClienteRequest struct {
	Nombre              string          `json:"nombre" validate:"required,notblank,max=120"`
	Descripcion         string          `json:"descripcion" validate:"max=500"`
	DescuentoPorcentaje decimal.Decimal `json:"descuento_porcentaje" validate:"gte=0,lte=100,decimales=2"`
}

// UpdateTipoClienteRequest actualización parcial: nil = sin cambio. Debe traer al menos un campo.
type UpdateTipoClienteRequest struct {
	Nombre              *string          `json:"nombre" validate:"omitempty,notblank,max=120"`
	Descripcion         *string          `json:"descripcion" validate:"omitempty,max=500"`
	DescuentoPorcentaje *decimal.Decimal `json:"descuento_porcentaje" validate:"omitempty,gte=0,lte=100,decimales=2"`
}

// Vacio informa si la actualización no trae ningún campo.
func (r UpdateTipoClienteRequest) Vacio() bool {
	return r.Nombre == nil && r.Descripcion == nil && r.DescuentoPorcentaje == nil
}

type TipoClienteResponse struct {
	CatalogoResponse
	DescuentoPorcentaje decimal.Decimal `json:"descuento_porcentaje"`
	FechaCreacion       time.Time       `json:"fecha_creacion"`
	FechaActualizacion  time.Time       `json:"fecha_actualizacion"`
}

// ── Unidades ────────────────────────────────────────────────────────────────

type CreateUnidadRequest struct {
	Nombre      string `json:"nombre" validate:"required,notblank,max=120"`
	Descripcion string `json:"descripcion" validate:"max=500"`
	Clave       string `json:"clave" validate:"required,max=10,clave"`
	Abreviacion string `json:"abreviacion" validate:"max=10"`
}

// UpdateUnidadRequest reemplazo completo.
type UpdateUnidadRequest struct {
	Nombre      string `json:"nombre" validate:"required,notblank,max=120"`
	Descripcion string `json:"descripcion" validate:"max=500"`
	Clave       string `json:"clave" validate:"required,max=10,clave"`
	Abreviacion string `json:"abreviacion" validate:"max=10"`
}

type UnidadResponse struct {
	CatalogoResponse
	Clave       string `json:"clave"`
	Abreviacion string `json:"abreviacion"`
}

// UnidadSyncResponse forma de lectura de la integración de sincronización.
// Conserva los nombres de campo de esa integración.
type UnidadSyncResponse struct {
	ID          string    `json:"id"`
	Clave       string    `json:"clave"`
	Nombre      string    `json:"nombre"`
	Abreviacion string    `json:"abreviacion"`
	UsuarioULID string    `json:"UsuarioULID"`
	EmpresaULID string    `json:"EmpresaULID"`
	FechaSync   time.Time `json:"Fecha_Sync"`
}

// UnidadSyncAuditoria se valida para detectar filas de sincronización con metadatos corruptos.
type UnidadSyncAuditoria struct {
	UsuarioULID string `json:"UsuarioULID" validate:"required,ulid"`
	EmpresaULID string `json:"EmpresaULID" validate:"required,ulid"`
}

// DiferenciaUnidad una clave presente en ambos contratos con campos distintos.
type DiferenciaUnidad struct {
	Clave    string             `json:"clave"`
	Campos   []string           `json:"campos"`
	Catalogo UnidadResponse     `json:"catalogo"`
	Sync     UnidadSyncResponse `json:"sync"`
}

// SyncInvalida fila de sincronización descartada y el motivo.
type SyncInvalida struct {
	Unidad  UnidadSyncResponse `json:"unidad"`
	Motivos []string           `json:"motivos"`
}

// ConciliacionUnidadesResponse compara el catálogo de unidades con el contrato de sincronización.
type ConciliacionUnidadesResponse struct {
	Coincide     []string             `json:"coincide"`
	Difiere      []DiferenciaUnidad   `json:"difiere"`
	SoloCatalogo []UnidadResponse     `json:"solo_catalogo"`
	SoloSync     []UnidadSyncResponse `json:"solo_sync"`
	Invalidas    []SyncInvalida       `json:"invalidas"`
}

// ── Mapeos entidad → respuesta ──────────────────────────────────────────────

func NewAreaProduccionResponse(a *entity.AreaProduccion) AreaProduccionResponse {
	return AreaProduccionResponse{CatalogoResponse: NewCatalogoResponse(&a.Catalogo)}
}

func NewGrupoResponse(g *entity.Grupo) GrupoResponse {
	return GrupoResponse{CatalogoResponse: NewCatalogoResponse(&g.Catalogo)}
}

func NewSubgrupoResponse(s *entity.Subgrupo) SubgrupoResponse {
	return SubgrupoResponse{CatalogoResponse: NewCatalogoResponse(&s.Catalogo), GrupoID: s.GrupoID}
}

// NewSubgrupoVista marca el subgrupo como huérfano si su grupo no está activo.
func NewSubgrupoVista(s *entity.Subgrupo, grupoActivo bool) SubgrupoVista {
	return SubgrupoVista{SubgrupoResponse: NewSubgrupoResponse(s), Huerfano: !grupoActivo}
}

func NewMetodoPagoResponse(m *entity.MetodoPago) MetodoPagoResponse {
	return MetodoPagoResponse{CatalogoResponse: NewCatalogoResponse(&m.Catalogo), RequiereReferencia: m.RequiereReferencia}
}

func NewTipoClienteResponse(t *entity.TipoCliente) TipoClienteResponse {
	return TipoClienteResponse{
		CatalogoResponse:    NewCatalogoResponse(&t.Catalogo),
		DescuentoPorcentaje: t.DescuentoPorcentaje,
		FechaCreacion:       t.CreatedAt,
		FechaActualizacion:  t.UpdatedAt,
	}
}

func NewUnidadResponse(u *entity.Unidad) UnidadResponse {
	return UnidadResponse{CatalogoResponse: NewCatalogoResponse(&u.Catalogo), Clave: u.Clave, Abreviacion: u.Abreviacion}
}

func NewUnidadSyncResponse(u *entity.UnidadSync) UnidadSyncResponse {
	return UnidadSyncResponse{
		ID:          u.ID,
		Clave:       u.Clave,
		Nombre:      u.Nombre,
		Abreviacion: u.Abreviacion,
		UsuarioULID: u.UsuarioULID,
		EmpresaULID: u.EmpresaULID,
		FechaSync:   u.FechaSync,
	}
}

// Lista mapea una lista de entidades con fn; nunca devuelve nil para que el JSON sea [].
func Lista[E any, R any](items []*E, fn func(*E) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
