package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCliente_IntegridadYDocumentoUnico(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()
	tipos := usecase.NewTipoClienteUseCase(e.store.TiposCliente(), e.clk)
	uc := usecase.NewClienteUseCase(e.store.Clientes(), e.store.TiposCliente(), e.clk)

	in := dto.CreateClienteRequest{Nombre: "Ana Gómez", Documento: "1020304050", Email: "ana@example.com", TipoClienteID: "no-existe"}
	_, err := uc.Create(ctx, in)
	assert.True(t, errors.Is(err, domain.ErrIntegrity))

	tipo, err := tipos.Create(ctx, dto.CreateTipoClienteRequest{Nombre: "Frecuente"})
	require.NoError(t, err)
	in.TipoClienteID = tipo.ID
	c, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", c.Email)

	in.Nombre = "Otra persona"
	_, err = uc.Create(ctx, in)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	upd, err := uc.Update(ctx, c.ID, dto.UpdateClienteRequest{Nombre: "Ana María Gómez", Documento: "1020304050", TipoClienteID: tipo.ID})
	require.NoError(t, err)
	assert.Empty(t, upd.Email, "reemplazo completo limpia el email omitido")
}

func TestOrdenCocina_MaquinaDeEstados(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()
	areas := usecase.NewAreaProduccionUseCase(e.store.AreasProduccion(), e.clk)
	uc := usecase.NewOrdenCocinaUseCase(e.store.OrdenesCocina(), e.store.AreasProduccion(), e.clk)

	area, err := areas.Create(ctx, dto.CreateAreaProduccionRequest{Nombre: "Cocina caliente"})
	require.NoError(t, err)

	o, err := uc.Create(ctx, dto.CreateOrdenCocinaRequest{
		Mesa:             "7",
		AreaProduccionID: area.ID,
		Items:            []dto.ItemOrdenRequest{{Descripcion: "Sancocho", Cantidad: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrdenPendiente, o.Estado)

	_, err = uc.CambiarEstado(ctx, o.ID, dto.CambiarEstadoOrdenRequest{Estado: "lista"})
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))

	for _, paso := range []string{"en_preparacion", "lista", "entregada"} {
		o, err = uc.CambiarEstado(ctx, o.ID, dto.CambiarEstadoOrdenRequest{Estado: paso})
		require.NoError(t, err, paso)
	}
	_, err = uc.CambiarEstado(ctx, o.ID, dto.CambiarEstadoOrdenRequest{Estado: "cancelada"})
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition), "entregada es terminal")

	abiertas, err := uc.List(ctx, dto.FiltroOrdenesRequest{})
	require.NoError(t, err)
	assert.Empty(t, abiertas)

	entregadas, err := uc.List(ctx, dto.FiltroOrdenesRequest{Estado: "entregada,cancelada"})
	require.NoError(t, err)
	assert.Len(t, entregadas, 1)

	_, err = uc.List(ctx, dto.FiltroOrdenesRequest{Estado: "quemada"})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestOrdenCocina_AreaInactivaEsIntegridad(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()
	areas := usecase.NewAreaProduccionUseCase(e.store.AreasProduccion(), e.clk)
	uc := usecase.NewOrdenCocinaUseCase(e.store.OrdenesCocina(), e.store.AreasProduccion(), e.clk)

	area, err := areas.Create(ctx, dto.CreateAreaProduccionRequest{Nombre: "Barra"})
	require.NoError(t, err)
	_, err = areas.SetEstado(ctx, area.ID, false)
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateOrdenCocinaRequest{
		Mesa:             "1",
		AreaProduccionID: area.ID,
		Items:            []dto.ItemOrdenRequest{{Descripcion: "Limonada", Cantidad: 1}},
	})
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
}
