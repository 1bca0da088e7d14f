package repository

import (
	"context"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// Filtro controla qué registros devuelve un listado.
// Por defecto solo se listan los activos. No hay paginación: los catálogos se leen completos.
type Filtro struct {
	IncluirInactivos bool
}

// CatalogoRepository es el puerto que todo almacén de catálogo debe cumplir (DIP).
// GetByID devuelve (nil, nil) si el registro no existe; Update y SetEstado devuelven domain.ErrNotFound.
// Cada operación de escritura es atómica desde el punto de vista del llamador.
type CatalogoRepository[T any] interface {
	List(ctx context.Context, filtro Filtro) ([]*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	SetEstado(ctx context.Context, id string, estado entity.Estado, at time.Time) (*T, error)
}

// AreaProduccionRepository puerto de persistencia para áreas de producción.
type AreaProduccionRepository interface {
	CatalogoRepository[entity.AreaProduccion]
	// GetActivaByClaveNombre busca un área activa por nombre normalizado (entity.ClaveNombre).
	GetActivaByClaveNombre(ctx context.Context, clave string) (*entity.AreaProduccion, error)
}

// GrupoRepository puerto de persistencia para grupos.
type GrupoRepository interface {
	CatalogoRepository[entity.Grupo]
	GetByClaveNombre(ctx context.Context, clave string) (*entity.Grupo, error)
}

// SubgrupoRepository puerto de persistencia para subgrupos.
// Create y Update devuelven domain.ErrIntegrity si GrupoID no existe.
type SubgrupoRepository interface {
	CatalogoRepository[entity.Subgrupo]
	ListByGrupo(ctx context.Context, grupoID string, filtro Filtro) ([]*entity.Subgrupo, error)
}

// MetodoPagoRepository puerto de persistencia para métodos de pago.
type MetodoPagoRepository interface {
	CatalogoRepository[entity.MetodoPago]
}

// TipoClienteRepository puerto de persistencia para tipos de cliente.
type TipoClienteRepository interface {
	CatalogoRepository[entity.TipoCliente]
}

// UnidadRepository puerto de persistencia para unidades.
type UnidadRepository interface {
	CatalogoRepository[entity.Unidad]
	// GetByClave busca sin distinguir mayúsculas.
	GetByClave(ctx context.Context, clave string) (*entity.Unidad, error)
}

// UnidadSyncRepository lectura del contrato de unidades de la integración externa (solo lectura).
type UnidadSyncRepository interface {
	List(ctx context.Context) ([]*entity.UnidadSync, error)
}
