package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/memoria"
	"github.com/jhoicas/restaurante-api/pkg/clock"
	"github.com/jhoicas/restaurante-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const secreto = "secreto-de-prueba"

func nuevo(t *testing.T) (*auth.AuthUseCase, *memoria.Store) {
	t.Helper()
	store := memoria.NewStore()
	uc := auth.NewAuthUseCase(store.Usuarios(), auth.JWTConfig{Secret: secreto, ExpMinutes: 60, Issuer: "test"}, clock.NewRealClock()).
		WithBcryptCost(bcrypt.MinCost)
	_, err := uc.RegisterUser(context.Background(), dto.CreateUsuarioRequest{
		Usuario: "cajero1", Password: "clave123", Pin: "4321", Role: entity.RoleCaja,
	})
	require.NoError(t, err)
	return uc, store
}

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := nuevo(t)
	res, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "cajero1", Password: "clave123", Pin: "4321"})
	require.NoError(t, err)
	assert.Equal(t, "cajero1", res.Usuario.Usuario)

	id, err := jwt.Parse(secreto, res.Token, time.Now())
	require.NoError(t, err)
	assert.Equal(t, res.Usuario.ID, id.UserID)
	assert.Equal(t, entity.RoleCaja, id.Role)
}

func TestLogin_Credenciales(t *testing.T) {
	uc, _ := nuevo(t)
	tests := []struct {
		name string
		in   dto.LoginRequest
		want error
	}{
		{"pin incorrecto", dto.LoginRequest{Usuario: "cajero1", Password: "clave123", Pin: "1111"}, domain.ErrUnauthorized},
		{"password incorrecto", dto.LoginRequest{Usuario: "cajero1", Password: "otra123", Pin: "4321"}, domain.ErrUnauthorized},
		{"usuario inexistente", dto.LoginRequest{Usuario: "nadie", Password: "clave123", Pin: "4321"}, domain.ErrUnauthorized},
		{"pin con letras", dto.LoginRequest{Usuario: "cajero1", Password: "clave123", Pin: "12a4"}, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), tt.in)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	ctx := context.Background()
	store := memoria.NewStore()
	hash, _ := bcrypt.GenerateFromPassword([]byte("clave123"), bcrypt.MinCost)
	pin, _ := bcrypt.GenerateFromPassword([]byte("0000"), bcrypt.MinCost)
	require.NoError(t, store.Usuarios().Create(ctx, &entity.Usuario{
		ID: "u1", Usuario: "viejo", PasswordHash: string(hash), PinHash: string(pin),
		Role: entity.RoleCocina, Estado: entity.EstadoInactivo, CreatedAt: time.Now(),
	}))
	uc := auth.NewAuthUseCase(store.Usuarios(), auth.JWTConfig{Secret: secreto, ExpMinutes: 5}, clock.NewRealClock())

	_, err := uc.Login(ctx, dto.LoginRequest{Usuario: "viejo", Password: "clave123", Pin: "0000"})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestRegisterUser_Duplicado(t *testing.T) {
	uc, _ := nuevo(t)
	_, err := uc.RegisterUser(context.Background(), dto.CreateUsuarioRequest{
		Usuario: "CAJERO1", Password: "clave123", Pin: "4321", Role: entity.RoleCaja,
	})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}
