package memoria

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func cat(id, nombre string) entity.Catalogo {
	return entity.Catalogo{ID: id, Nombre: nombre, Estado: entity.EstadoActivo, CreatedAt: t0, UpdatedAt: t0}
}

func TestLecturasDevuelvenCopias(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Grupos()
	require.NoError(t, repo.Create(ctx, &entity.Grupo{Catalogo: cat("g1", "Bebidas")}))

	g, err := repo.GetByID(ctx, "g1")
	require.NoError(t, err)
	g.Nombre = "modificado fuera"

	again, _ := repo.GetByID(ctx, "g1")
	assert.Equal(t, "Bebidas", again.Nombre)
}

func TestList_FiltraInactivosYOrdenaPorNombre(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().MetodosPago()
	for _, m := range []*entity.MetodoPago{
		{Catalogo: cat("m1", "Tarjeta")},
		{Catalogo: cat("m2", "Efectivo")},
		{Catalogo: cat("m3", "Nequi")},
	} {
		require.NoError(t, repo.Create(ctx, m))
	}
	_, err := repo.SetEstado(ctx, "m3", entity.EstadoInactivo, t0.Add(time.Minute))
	require.NoError(t, err)

	activos, err := repo.List(ctx, repository.Filtro{})
	require.NoError(t, err)
	require.Len(t, activos, 2)
	assert.Equal(t, "Efectivo", activos[0].Nombre)

	todos, err := repo.List(ctx, repository.Filtro{IncluirInactivos: true})
	require.NoError(t, err)
	assert.Len(t, todos, 3)

	m3, _ := repo.GetByID(ctx, "m3")
	require.NotNil(t, m3)
	assert.Equal(t, entity.EstadoInactivo, m3.Estado)
	assert.Equal(t, t0.Add(time.Minute), m3.UpdatedAt)
}

func TestAreas_NombreUnicoEntreActivas(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().AreasProduccion()
	require.NoError(t, repo.Create(ctx, &entity.AreaProduccion{Catalogo: cat("a1", "Parrilla")}))

	err := repo.Create(ctx, &entity.AreaProduccion{Catalogo: cat("a2", " parrilla ")})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	_, err = repo.SetEstado(ctx, "a1", entity.EstadoInactivo, t0)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &entity.AreaProduccion{Catalogo: cat("a2", "Parrilla")}))

	// reactivar la antigua chocaría con la nueva
	_, err = repo.SetEstado(ctx, "a1", entity.EstadoActivo, t0)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	a1, _ := repo.GetByID(ctx, "a1")
	assert.Equal(t, entity.EstadoInactivo, a1.Estado)
}

func TestSubgrupos_Integridad(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Grupos().Create(ctx, &entity.Grupo{Catalogo: cat("g1", "Bebidas")}))

	err := s.Subgrupos().Create(ctx, &entity.Subgrupo{Catalogo: cat("s1", "Gaseosas"), GrupoID: "no-existe"})
	assert.True(t, errors.Is(err, domain.ErrIntegrity))

	require.NoError(t, s.Subgrupos().Create(ctx, &entity.Subgrupo{Catalogo: cat("s1", "Gaseosas"), GrupoID: "g1"}))
	l, err := s.Subgrupos().ListByGrupo(ctx, "g1", repository.Filtro{})
	require.NoError(t, err)
	assert.Len(t, l, 1)

	err = s.Subgrupos().Update(ctx, &entity.Subgrupo{Catalogo: cat("nada", "x"), GrupoID: "g1"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestOrdenes_CambiarEstadoCompareAndSet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.AreasProduccion().Create(ctx, &entity.AreaProduccion{Catalogo: cat("a1", "Cocina caliente")}))
	repo := s.OrdenesCocina()
	o := &entity.OrdenCocina{ID: "o1", Mesa: "3", AreaProduccionID: "a1", Estado: entity.OrdenPendiente,
		Items: []entity.ItemOrden{{Descripcion: "Ajiaco", Cantidad: 2}}, CreatedAt: t0, UpdatedAt: t0}
	require.NoError(t, repo.Create(ctx, o))

	_, err := repo.CambiarEstado(ctx, "o1", entity.OrdenPendiente, entity.OrdenEnPreparacion, t0)
	require.NoError(t, err)
	_, err = repo.CambiarEstado(ctx, "o1", entity.OrdenPendiente, entity.OrdenCancelada, t0)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	err = repo.Create(ctx, &entity.OrdenCocina{ID: "o2", AreaProduccionID: "zz", Estado: entity.OrdenPendiente})
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
}

func TestTxRunner_DescartaEscriturasSiFalla(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Unidades().Create(ctx, &entity.Unidad{Catalogo: cat("u1", "Kilogramo"), Clave: "KG"}))
	require.NoError(t, s.Insumos().Create(ctx, &entity.Insumo{ID: "i1", Nombre: "Arroz", UnidadID: "u1", Estado: entity.EstadoActivo}))

	boom := errors.New("boom")
	err := s.TxRunner().Run(ctx, func(ins repository.InsumoRepository, movs repository.MovimientoRepository) error {
		require.NoError(t, ins.UpdateExistencia(ctx, "i1", decimal.NewFromInt(10), decimal.NewFromInt(3)))
		require.NoError(t, movs.Create(ctx, &entity.MovimientoInventario{ID: "m1", InsumoID: "i1"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	i, _ := s.Insumos().GetByID(ctx, "i1")
	assert.True(t, i.Existencia.IsZero())
	movs, _ := s.Movimientos().ListByInsumo(ctx, "i1", 0)
	assert.Empty(t, movs)
}

func TestContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewStore().Grupos().List(ctx, repository.Filtro{})
	assert.True(t, errors.Is(err, domain.ErrStorage))
	assert.True(t, errors.Is(err, context.Canceled))
}
