package usecase_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ulidValido = "01HZX3Q6T9M2B8C4D5E6F7G8H9"

func TestUnidad_Conciliar(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno()
	uc := usecase.NewUnidadUseCase(e.store.Unidades(), e.store.UnidadesSync(), e.clk)

	for _, in := range []dto.CreateUnidadRequest{
		{Nombre: "Kilogramo", Clave: "KG", Abreviacion: "kg"},
		{Nombre: "Litro", Clave: "LT", Abreviacion: "l"},
		{Nombre: "Porción", Clave: "POR", Abreviacion: "por"},
	} {
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}
	e.store.CargarUnidadesSync([]entity.UnidadSync{
		{ID: "s1", Clave: "kg", Nombre: "kilogramo", Abreviacion: "KG", UsuarioULID: ulidValido, EmpresaULID: ulidValido, FechaSync: inicio},
		{ID: "s2", Clave: "LT", Nombre: "Litros", Abreviacion: "lt", UsuarioULID: ulidValido, EmpresaULID: ulidValido, FechaSync: inicio},
		{ID: "s3", Clave: "GR", Nombre: "Gramo", Abreviacion: "g", UsuarioULID: ulidValido, EmpresaULID: ulidValido, FechaSync: inicio},
		{ID: "s4", Clave: "ML", Nombre: "Mililitro", Abreviacion: "ml", UsuarioULID: "corrupto", EmpresaULID: ulidValido, FechaSync: inicio},
		{ID: "s5", Clave: "KG", Nombre: "Kilo", Abreviacion: "kg", UsuarioULID: ulidValido, EmpresaULID: ulidValido, FechaSync: inicio},
	})

	sync, err := uc.ListSync(ctx)
	require.NoError(t, err)
	assert.Len(t, sync, 5, "la lectura de sincronización no se filtra ni se mezcla")

	rep, err := uc.Conciliar(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"KG"}, rep.Coincide)
	require.Len(t, rep.Difiere, 1)
	assert.Equal(t, "LT", rep.Difiere[0].Clave)
	if diff := cmp.Diff([]string{"nombre", "abreviacion"}, rep.Difiere[0].Campos); diff != "" {
		t.Errorf("campos (-want +got):\n%s", diff)
	}
	require.Len(t, rep.SoloCatalogo, 1)
	assert.Equal(t, "POR", rep.SoloCatalogo[0].Clave)
	require.Len(t, rep.SoloSync, 1)
	assert.Equal(t, "GR", rep.SoloSync[0].Clave)

	require.Len(t, rep.Invalidas, 2)
	ids := []string{rep.Invalidas[0].Unidad.ID, rep.Invalidas[1].Unidad.ID}
	assert.ElementsMatch(t, []string{"s4", "s5"}, ids)
	for _, inv := range rep.Invalidas {
		assert.NotEmpty(t, inv.Motivos)
	}
}
