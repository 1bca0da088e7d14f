package inventario

import (
	"context"
	"time"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a ella.
// Si fn devuelve error no se aplica ninguna escritura.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		insumos repository.InsumoRepository,
		movimientos repository.MovimientoRepository,
	) error) error
}

// Reporte es el contenido de un reporte de inventario, independiente del formato.
type Reporte struct {
	Titulo       string
	GeneradoEn   time.Time
	Insumos      []dto.InsumoResponse
	Estadisticas dto.EstadisticasInventarioResponse
}

// GeneradorReporte serializa un Reporte (xlsx, pdf).
type GeneradorReporte interface {
	Generar(r *Reporte) ([]byte, error)
	ContentType() string
	Extension() string
}
