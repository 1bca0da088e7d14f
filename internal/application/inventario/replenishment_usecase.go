package inventario

import (
	"context"
	"sort"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	costos "github.com/jhoicas/restaurante-api/internal/domain/inventario"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReplenishmentUseCase estadísticas del inventario y lista de reabastecimiento.
type ReplenishmentUseCase struct {
	repo repository.InsumoRepository
}

func NewReplenishmentUseCase(repo repository.InsumoRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{repo: repo}
}

// Estadisticas resume insumos activos, los que están bajo mínimo y el valor del inventario.
func (uc *ReplenishmentUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasInventarioResponse, error) {
	est, err := uc.repo.Estadisticas(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewEstadisticasResponse(est)
	return &out, nil
}

// Reabastecimiento devuelve los insumos bajo su mínimo con la cantidad sugerida
// (1.5 × mínimo − existencia), ordenados por déficit relativo descendente.
func (uc *ReplenishmentUseCase) Reabastecimiento(ctx context.Context) ([]dto.ReabastecimientoDTO, error) {
	items, err := uc.repo.ListBajoMinimo(ctx)
	if err != nil {
		return nil, err
	}
	hundred := decimal.NewFromInt(100)

	out := make([]dto.ReabastecimientoDTO, 0, len(items))
	for _, i := range items {
		sugerida := costos.CantidadSugerida(i.Existencia, i.StockMinimo)
		deficit := i.StockMinimo.Sub(i.Existencia).Div(i.StockMinimo).Mul(hundred).Round(2)
		out = append(out, dto.ReabastecimientoDTO{
			InsumoID:          i.ID,
			Nombre:            i.Nombre,
			UnidadID:          i.UnidadID,
			Existencia:        i.Existencia,
			StockMinimo:       i.StockMinimo,
			CantidadSugerida:  sugerida,
			CostoUnitario:     i.CostoPromedio,
			CostoEstimado:     sugerida.Mul(i.CostoPromedio).Round(2),
			DeficitPorcentaje: deficit,
		})
	}

	// Mayor déficit relativo primero; a igual déficit, mayor costo estimado.
	sort.SliceStable(out, func(a, b int) bool {
		if !out[a].DeficitPorcentaje.Equal(out[b].DeficitPorcentaje) {
			return out[a].DeficitPorcentaje.GreaterThan(out[b].DeficitPorcentaje)
		}
		return out[a].CostoEstimado.GreaterThan(out[b].CostoEstimado)
	})
	for i := range out {
		out[i].Prioridad = i + 1
	}
	return out, nil
}
