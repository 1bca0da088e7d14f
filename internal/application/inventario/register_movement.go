package inventario

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	costos "github.com/jhoicas/restaurante-api/internal/domain/inventario"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/clock"
	"github.com/shopspring/decimal"
)

// RegisterMovementUseCase registra entradas, salidas y ajustes de forma transaccional:
// la fila del insumo se bloquea (SELECT FOR UPDATE) mientras se calcula la nueva existencia.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	clock    clock.Clock
}

func NewRegisterMovementUseCase(txRunner TxRunner, clk clock.Clock) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, clock: clk}
}

// RegistrarMovimiento aplica el movimiento y devuelve el registro junto al insumo actualizado.
// Entrada exige costo_unitario y recalcula el costo promedio ponderado.
// Salida (o ajuste negativo) sin existencia suficiente devuelve ErrInsufficientStock.
func (uc *RegisterMovementUseCase) RegistrarMovimiento(ctx context.Context, insumoID, userID string, in dto.RegistrarMovimientoRequest) (*dto.MovimientoRegistradoResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	if err := validarCantidad(in); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	var out dto.MovimientoRegistradoResponse
	err := uc.txRunner.Run(ctx, func(insumos repository.InsumoRepository, movimientos repository.MovimientoRepository) error {
		insumo, err := insumos.GetForUpdate(ctx, insumoID)
		if err != nil {
			return err
		}
		if insumo == nil {
			return fmt.Errorf("%w: insumo %s", domain.ErrNotFound, insumoID)
		}
		if !insumo.Estado.Activo() {
			return fmt.Errorf("%w: el insumo está inactivo", domain.ErrConflict)
		}

		cantidad := in.Cantidad
		if in.Tipo == entity.MovimientoSalida {
			cantidad = cantidad.Neg()
		}
		existencia := insumo.Existencia.Add(cantidad)
		if existencia.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: existencia %s, solicitado %s", domain.ErrInsufficientStock, insumo.Existencia, cantidad.Abs())
		}

		costo := insumo.CostoPromedio
		costoUnitario := insumo.CostoPromedio
		if cantidad.GreaterThan(decimal.Zero) && in.CostoUnitario != nil {
			costoUnitario = *in.CostoUnitario
			costo = costos.CostoPromedioPonderado(insumo.Existencia, insumo.CostoPromedio, cantidad, costoUnitario)
		}

		if err := insumos.UpdateExistencia(ctx, insumoID, existencia, costo); err != nil {
			return err
		}
		mov := &entity.MovimientoInventario{
			ID:            uuid.New().String(),
			InsumoID:      insumoID,
			Tipo:          in.Tipo,
			Cantidad:      cantidad,
			CostoUnitario: costoUnitario,
			CostoTotal:    cantidad.Mul(costoUnitario).Round(2),
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		if err := movimientos.Create(ctx, mov); err != nil {
			return err
		}

		insumo.Existencia = existencia
		insumo.CostoPromedio = costo
		out = dto.MovimientoRegistradoResponse{
			Movimiento: dto.NewMovimientoResponse(mov),
			Insumo:     dto.NewInsumoResponse(insumo),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func validarCantidad(in dto.RegistrarMovimientoRequest) error {
	switch in.Tipo {
	case entity.MovimientoEntrada:
		if !in.Cantidad.GreaterThan(decimal.Zero) {
			return domain.NewValidationError("cantidad", "gt", "cantidad debe ser mayor que 0")
		}
		if in.CostoUnitario == nil {
			return domain.NewValidationError("costo_unitario", "required", "costo_unitario es obligatorio en una entrada")
		}
	case entity.MovimientoSalida:
		if !in.Cantidad.GreaterThan(decimal.Zero) {
			return domain.NewValidationError("cantidad", "gt", "cantidad debe ser mayor que 0")
		}
	case entity.MovimientoAjuste:
		if in.Cantidad.IsZero() {
			return domain.NewValidationError("cantidad", "ne", "cantidad no puede ser 0 en un ajuste")
		}
	}
	return nil
}
