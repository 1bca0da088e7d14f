package app_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/restaurante-api/internal/app"
	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/memoria"
)

func contenedor() *app.Contenedor {
	return app.Nuevo(app.Memoria(memoria.NewStore()), app.Opciones{
		JWT:        auth.JWTConfig{Secret: "s", ExpMinutes: 5, Issuer: "test"},
		BcryptCost: bcrypt.MinCost,
	})
}

func TestSembrar_ArchivoDelRepositorio(t *testing.T) {
	f, err := os.Open("../../config/catalogos.yaml")
	require.NoError(t, err)
	defer f.Close()
	s, err := app.LeerSemilla(f)
	require.NoError(t, err)

	c := contenedor()
	ctx := context.Background()
	res, err := c.Sembrar(ctx, s, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Omitidos)
	assert.Positive(t, res.Creados)

	grupos, err := c.Grupos.List(ctx, repository.Filtro{})
	require.NoError(t, err)
	assert.Len(t, grupos, len(s.Grupos))

	_, err = c.Auth.Login(ctx, dto.LoginRequest{Usuario: "admin", Password: "cambiar123", Pin: "0000"})
	assert.NoError(t, err)

	// Idempotente: la segunda pasada solo omite.
	res2, err := c.Sembrar(ctx, s, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res2.Creados)
	assert.Equal(t, res.Creados, res2.Omitidos)
}

func TestSembrar_SubgruposDeGrupoExistente(t *testing.T) {
	c := contenedor()
	ctx := context.Background()
	_, err := c.Grupos.Create(ctx, dto.CreateGrupoRequest{Nombre: "Bebidas"})
	require.NoError(t, err)

	s, err := app.LeerSemilla(strings.NewReader("grupos:\n  - nombre: bebidas\n    subgrupos:\n      - nombre: Jugos\n"))
	require.NoError(t, err)
	res, err := c.Sembrar(ctx, s, nil)
	require.NoError(t, err)
	assert.Equal(t, app.ResumenSemilla{Creados: 1, Omitidos: 1}, res)

	subs, err := c.Subgrupos.List(ctx, repository.Filtro{})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Jugos", subs[0].Nombre)
}

func TestLeerSemilla_CampoDesconocido(t *testing.T) {
	_, err := app.LeerSemilla(strings.NewReader("bodegas:\n  - nombre: X\n"))
	assert.Error(t, err)
}

func TestLeerSemilla_Vacia(t *testing.T) {
	s, err := app.LeerSemilla(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Grupos)
}

func TestSembrar_DescuentoInvalido(t *testing.T) {
	s, err := app.LeerSemilla(strings.NewReader("tipos_cliente:\n  - nombre: VIP\n    descuento_porcentaje: diez\n"))
	require.NoError(t, err)
	_, err = contenedor().Sembrar(context.Background(), s, nil)
	assert.Error(t, err)
}
