package validation_test

import (
	"errors"
	"testing"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginValido() dto.LoginRequest {
	return dto.LoginRequest{Usuario: "abc", Password: "123456", Pin: "1234"}
}

func campos(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	return ve
}

func TestLogin_Valido(t *testing.T) {
	assert.NoError(t, validation.Validate(loginValido()))
}

func TestLogin_ReglasPorCampo(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.LoginRequest)
		campo  string
		regla  string // vacío = debe pasar
	}{
		{"usuario de 2 caracteres", func(r *dto.LoginRequest) { r.Usuario = "ab" }, "usuario", "min"},
		{"usuario de 3 caracteres", func(r *dto.LoginRequest) { r.Usuario = "abc" }, "usuario", ""},
		{"usuario vacío", func(r *dto.LoginRequest) { r.Usuario = "" }, "usuario", "required"},
		{"password de 5", func(r *dto.LoginRequest) { r.Password = "12345" }, "password", "min"},
		{"password de 6", func(r *dto.LoginRequest) { r.Password = "123456" }, "password", ""},
		{"pin con letra", func(r *dto.LoginRequest) { r.Pin = "12a4" }, "pin", "digitos"},
		{"pin de 4 dígitos", func(r *dto.LoginRequest) { r.Pin = "1234" }, "pin", ""},
		{"pin de 3 dígitos", func(r *dto.LoginRequest) { r.Pin = "123" }, "pin", "len"},
		{"pin vacío", func(r *dto.LoginRequest) { r.Pin = "" }, "pin", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := loginValido()
			tt.mutate(&req)
			err := validation.Validate(req)
			if tt.regla == "" {
				assert.NoError(t, err)
				return
			}
			ve := campos(t, err)
			ce, ok := ve.Campo(tt.campo)
			require.True(t, ok, "se esperaba error en %s", tt.campo)
			assert.Equal(t, tt.regla, ce.Regla)
			assert.NotEmpty(t, ce.Mensaje)
		})
	}
}

func TestLogin_ReportaTodosLosCampos(t *testing.T) {
	err := validation.Validate(dto.LoginRequest{Usuario: "ab", Password: "1", Pin: "12a"})
	ve := campos(t, err)

	require.Len(t, ve.Campos, 3)
	u, _ := ve.Campo("usuario")
	p, _ := ve.Campo("password")
	pin, _ := ve.Campo("pin")
	assert.Equal(t, "usuario debe tener al menos 3 caracteres", u.Mensaje)
	assert.Equal(t, "password debe tener al menos 6 caracteres", p.Mensaje)
	// len se declara antes que digitos: solo se informa la primera regla del campo.
	assert.Equal(t, "len", pin.Regla)
}

func TestUnidad_Clave(t *testing.T) {
	ok := dto.CreateUnidadRequest{Nombre: "Kilogramo", Clave: "KG_1", Abreviacion: "kg"}
	assert.NoError(t, validation.Validate(ok))

	mal := ok
	mal.Clave = "k g"
	ce, _ := campos(t, validation.Validate(mal)).Campo("clave")
	assert.Equal(t, "clave", ce.Regla)

	larga := ok
	larga.Clave = "ABCDEFGHIJK"
	ce, _ = campos(t, validation.Validate(larga)).Campo("clave")
	assert.Equal(t, "max", ce.Regla)
}

func TestNombreEnBlanco(t *testing.T) {
	ce, ok := campos(t, validation.Validate(dto.CreateGrupoRequest{Nombre: "   "})).Campo("nombre")
	require.True(t, ok)
	assert.Equal(t, "notblank", ce.Regla)
}

func TestTipoCliente_DescuentoAcotado(t *testing.T) {
	for _, v := range []string{"0", "100", "12.5"} {
		req := dto.CreateTipoClienteRequest{Nombre: "Frecuente", DescuentoPorcentaje: decimal.RequireFromString(v)}
		assert.NoError(t, validation.Validate(req), v)
	}
	for _, v := range []string{"-0.01", "100.01"} {
		req := dto.CreateTipoClienteRequest{Nombre: "Frecuente", DescuentoPorcentaje: decimal.RequireFromString(v)}
		_, ok := campos(t, validation.Validate(req)).Campo("descuento_porcentaje")
		assert.True(t, ok, v)
	}
}

func TestTipoCliente_DescuentoMaximoDosDecimales(t *testing.T) {
	for _, v := range []string{"12.34", "99.99", "7.1"} {
		req := dto.CreateTipoClienteRequest{Nombre: "Frecuente", DescuentoPorcentaje: decimal.RequireFromString(v)}
		assert.NoError(t, validation.Validate(req), v)
	}
	for _, v := range []string{"12.345", "0.001", "12.3456"} {
		req := dto.CreateTipoClienteRequest{Nombre: "Frecuente", DescuentoPorcentaje: decimal.RequireFromString(v)}
		c, ok := campos(t, validation.Validate(req)).Campo("descuento_porcentaje")
		require.True(t, ok, v)
		assert.Equal(t, "decimales", c.Regla, v)
		assert.Equal(t, "descuento_porcentaje admite como máximo 2 decimales", c.Mensaje)
	}

	tres := decimal.RequireFromString("12.345")
	c, ok := campos(t, validation.Validate(dto.UpdateTipoClienteRequest{DescuentoPorcentaje: &tres})).Campo("descuento_porcentaje")
	require.True(t, ok)
	assert.Equal(t, "decimales", c.Regla)
}

func TestMovimiento_CantidadHastaCuatroDecimales(t *testing.T) {
	ok := dto.RegistrarMovimientoRequest{Tipo: "entrada", Cantidad: decimal.RequireFromString("1.2345")}
	assert.NoError(t, validation.Validate(ok))

	mal := dto.RegistrarMovimientoRequest{Tipo: "entrada", Cantidad: decimal.RequireFromString("1.23456")}
	c, found := campos(t, validation.Validate(mal)).Campo("cantidad")
	require.True(t, found)
	assert.Equal(t, "decimales", c.Regla)
}

func TestTipoCliente_ParcialValidaSoloPresentes(t *testing.T) {
	assert.NoError(t, validation.Validate(dto.UpdateTipoClienteRequest{}))

	vacio := ""
	fuera := decimal.NewFromInt(150)
	ve := campos(t, validation.Validate(dto.UpdateTipoClienteRequest{Nombre: &vacio, DescuentoPorcentaje: &fuera}))
	n, _ := ve.Campo("nombre")
	d, _ := ve.Campo("descuento_porcentaje")
	assert.Equal(t, "notblank", n.Regla)
	assert.Equal(t, "lte", d.Regla)
}

func TestOrden_ItemsAnidados(t *testing.T) {
	req := dto.CreateOrdenCocinaRequest{
		Mesa:             "4",
		AreaProduccionID: "a-1",
		Items:            []dto.ItemOrdenRequest{{Descripcion: "Bandeja paisa", Cantidad: 1}, {Descripcion: "Jugo", Cantidad: 0}},
	}
	ce, ok := campos(t, validation.Validate(req)).Campo("items[1].cantidad")
	require.True(t, ok)
	assert.Equal(t, "gt", ce.Regla)

	req.Items = nil
	ce, ok = campos(t, validation.Validate(req)).Campo("items")
	require.True(t, ok)
	assert.Equal(t, "required", ce.Regla)
}

func TestULID(t *testing.T) {
	ok := dto.UnidadSyncAuditoria{UsuarioULID: "01ARZ3NDEKTSV4RRFFQ69G5FAV", EmpresaULID: "01ARZ3NDEKTSV4RRFFQ69G5FAV"}
	assert.NoError(t, validation.Validate(ok))

	mal := ok
	mal.EmpresaULID = "no-es-ulid"
	ce, _ := campos(t, validation.Validate(mal)).Campo("EmpresaULID")
	assert.Equal(t, "ulid", ce.Regla)
}
