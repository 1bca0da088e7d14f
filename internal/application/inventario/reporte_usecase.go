package inventario

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/clock"
	"golang.org/x/sync/errgroup"
)

// ReporteUseCase arma el reporte de inventario y lo entrega en el formato pedido.
type ReporteUseCase struct {
	repo        repository.InsumoRepository
	generadores map[string]GeneradorReporte
	clock       clock.Clock
}

// NewReporteUseCase registra los generadores por extensión ("xlsx", "pdf").
func NewReporteUseCase(repo repository.InsumoRepository, clk clock.Clock, generadores ...GeneradorReporte) *ReporteUseCase {
	m := make(map[string]GeneradorReporte, len(generadores))
	for _, g := range generadores {
		m[g.Extension()] = g
	}
	return &ReporteUseCase{repo: repo, generadores: m, clock: clk}
}

// Exportar devuelve el archivo y su content type.
func (uc *ReporteUseCase) Exportar(ctx context.Context, formato string) ([]byte, string, error) {
	gen, ok := uc.generadores[formato]
	if !ok {
		return nil, "", domain.NewValidationError("formato", "oneof", fmt.Sprintf("formato %q no soportado", formato))
	}
	r, err := uc.armar(ctx)
	if err != nil {
		return nil, "", err
	}
	b, err := gen.Generar(r)
	if err != nil {
		return nil, "", fmt.Errorf("generando reporte %s: %w", formato, err)
	}
	return b, gen.ContentType(), nil
}

func (uc *ReporteUseCase) armar(ctx context.Context) (*Reporte, error) {
	r := &Reporte{Titulo: "Inventario de insumos", GeneradoEn: uc.clock.Now()}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.repo.List(gctx, repository.Filtro{})
		if err != nil {
			return err
		}
		r.Insumos = dto.Lista(list, dto.NewInsumoResponse)
		return nil
	})
	g.Go(func() error {
		est, err := uc.repo.Estadisticas(gctx)
		if err != nil {
			return err
		}
		r.Estadisticas = dto.NewEstadisticasResponse(est)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return r, nil
}
