package inventario_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/inventario"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/memoria"
	"github.com/jhoicas/restaurante-api/pkg/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type entorno struct {
	store   *memoria.Store
	clk     *clock.MockClock
	insumos *inventario.InsumoUseCase
	movs    *inventario.RegisterMovementUseCase
	repos   *inventario.ReplenishmentUseCase
	unidad  string
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()
	s := memoria.NewStore()
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 7, 0, 0, 0, time.UTC))
	u := &entity.Unidad{Catalogo: entity.Catalogo{ID: "u-kg", Nombre: "Kilogramo", Estado: entity.EstadoActivo}, Clave: "KG"}
	require.NoError(t, s.Unidades().Create(context.Background(), u))
	return &entorno{
		store:   s,
		clk:     clk,
		insumos: inventario.NewInsumoUseCase(s.Insumos(), s.Movimientos(), s.Unidades(), s.Grupos(), clk),
		movs:    inventario.NewRegisterMovementUseCase(s.TxRunner(), clk),
		repos:   inventario.NewReplenishmentUseCase(s.Insumos()),
		unidad:  u.ID,
	}
}

func (e *entorno) insumo(t *testing.T, nombre, minimo string) string {
	t.Helper()
	i, err := e.insumos.Create(context.Background(), dto.CreateInsumoRequest{Nombre: nombre, UnidadID: e.unidad, StockMinimo: d(minimo)})
	require.NoError(t, err)
	return i.ID
}

func (e *entorno) mover(t *testing.T, id, tipo, cantidad string, costo *decimal.Decimal) *dto.MovimientoRegistradoResponse {
	t.Helper()
	res, err := e.movs.RegistrarMovimiento(context.Background(), id, "u-admin", dto.RegistrarMovimientoRequest{Tipo: tipo, Cantidad: d(cantidad), CostoUnitario: costo})
	require.NoError(t, err)
	return res
}

func ptr(s string) *decimal.Decimal { v := d(s); return &v }

func TestInsumo_UnidadInexistente(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.insumos.Create(context.Background(), dto.CreateInsumoRequest{Nombre: "Arroz", UnidadID: "nada"})
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
}

func TestMovimientos_EntradaPromedioPonderado(t *testing.T) {
	e := nuevoEntorno(t)
	id := e.insumo(t, "Arroz", "5")

	e.mover(t, id, entity.MovimientoEntrada, "10", ptr("100"))
	res := e.mover(t, id, entity.MovimientoEntrada, "10", ptr("200"))

	assert.True(t, d("20").Equal(res.Insumo.Existencia))
	assert.True(t, d("150").Equal(res.Insumo.CostoPromedio), res.Insumo.CostoPromedio.String())
	assert.True(t, d("2000").Equal(res.Movimiento.CostoTotal))

	// la salida valora al costo promedio vigente
	out := e.mover(t, id, entity.MovimientoSalida, "4", nil)
	assert.True(t, d("-4").Equal(out.Movimiento.Cantidad))
	assert.True(t, d("150").Equal(out.Movimiento.CostoUnitario))
	assert.True(t, d("16").Equal(out.Insumo.Existencia))

	kardex, err := e.insumos.Movimientos(context.Background(), id, 0)
	require.NoError(t, err)
	assert.Len(t, kardex, 3)
}

func TestMovimientos_SalidaInsuficienteNoEscribe(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno(t)
	id := e.insumo(t, "Papa", "0")
	e.mover(t, id, entity.MovimientoEntrada, "3", ptr("2000"))

	_, err := e.movs.RegistrarMovimiento(ctx, id, "u", dto.RegistrarMovimientoRequest{Tipo: entity.MovimientoSalida, Cantidad: d("5")})
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	_, err = e.movs.RegistrarMovimiento(ctx, id, "u", dto.RegistrarMovimientoRequest{Tipo: entity.MovimientoAjuste, Cantidad: d("-4")})
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	i, err := e.insumos.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, d("3").Equal(i.Existencia))
	kardex, _ := e.insumos.Movimientos(ctx, id, 10)
	assert.Len(t, kardex, 1)
}

func TestMovimientos_Validaciones(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno(t)
	id := e.insumo(t, "Sal", "0")

	tests := []struct {
		name string
		in   dto.RegistrarMovimientoRequest
		want error
	}{
		{"tipo desconocido", dto.RegistrarMovimientoRequest{Tipo: "robo", Cantidad: d("1")}, domain.ErrValidation},
		{"entrada sin costo", dto.RegistrarMovimientoRequest{Tipo: entity.MovimientoEntrada, Cantidad: d("1")}, domain.ErrValidation},
		{"salida negativa", dto.RegistrarMovimientoRequest{Tipo: entity.MovimientoSalida, Cantidad: d("-1")}, domain.ErrValidation},
		{"ajuste cero", dto.RegistrarMovimientoRequest{Tipo: entity.MovimientoAjuste, Cantidad: d("0")}, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.movs.RegistrarMovimiento(ctx, id, "u", tt.in)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := e.movs.RegistrarMovimiento(ctx, "no-existe", "u", dto.RegistrarMovimientoRequest{Tipo: entity.MovimientoAjuste, Cantidad: d("1")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestEstadisticasYReabastecimiento(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno(t)
	arroz := e.insumo(t, "Arroz", "10") // 2 de 10 -> déficit 80%
	aceite := e.insumo(t, "Aceite", "4") // 3 de 4 -> déficit 25%
	sal := e.insumo(t, "Sal", "1")       // 5 de 1 -> no aparece
	e.mover(t, arroz, entity.MovimientoEntrada, "2", ptr("3000"))
	e.mover(t, aceite, entity.MovimientoEntrada, "3", ptr("10000"))
	e.mover(t, sal, entity.MovimientoEntrada, "5", ptr("1000"))

	est, err := e.repos.Estadisticas(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, est.TotalInsumos)
	assert.Equal(t, 2, est.BajoMinimo)
	assert.True(t, d("41000").Equal(est.ValorTotal), est.ValorTotal.String())

	list, err := e.repos.Reabastecimiento(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, arroz, list[0].InsumoID)
	assert.Equal(t, 1, list[0].Prioridad)
	assert.True(t, d("13").Equal(list[0].CantidadSugerida))
	assert.True(t, d("80").Equal(list[0].DeficitPorcentaje))
	assert.Equal(t, aceite, list[1].InsumoID)
	assert.True(t, d("3").Equal(list[1].CantidadSugerida))
}

type generadorFalso struct{ recibido *inventario.Reporte }

func (g *generadorFalso) Generar(r *inventario.Reporte) ([]byte, error) {
	g.recibido = r
	return []byte("ok"), nil
}
func (g *generadorFalso) ContentType() string { return "text/plain" }
func (g *generadorFalso) Extension() string   { return "txt" }

func TestReporte_Exportar(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno(t)
	e.insumo(t, "Harina", "2")
	gen := &generadorFalso{}
	uc := inventario.NewReporteUseCase(e.store.Insumos(), e.clk, gen)

	b, ct, err := uc.Exportar(ctx, "txt")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(b))
	assert.Equal(t, "text/plain", ct)
	require.NotNil(t, gen.recibido)
	assert.Len(t, gen.recibido.Insumos, 1)
	assert.Equal(t, 1, gen.recibido.Estadisticas.TotalInsumos)

	_, _, err = uc.Exportar(ctx, "docx")
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

var _ repository.InsumoRepository = (*memoria.InsumoRepository)(nil)
