package dto

import (
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// LoginRequest credenciales del back-office: usuario, contraseña y PIN de 4 dígitos.
type LoginRequest struct {
	Usuario  string `json:"usuario" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Pin      string `json:"pin" validate:"required,len=4,digitos"`
}

// CreateUsuarioRequest alta de usuario (password y pin en texto, se hashean en el use case).
type CreateUsuarioRequest struct {
	Usuario  string `json:"usuario" validate:"required,min=3,max=60"`
	Nombre   string `json:"nombre" validate:"omitempty,max=120"`
	Password string `json:"password" validate:"required,min=6"`
	Pin      string `json:"pin" validate:"required,len=4,digitos"`
	Role     string `json:"role" validate:"required,oneof=admin cocina caja"`
}

// UsuarioResponse salida de un usuario (sin hashes).
type UsuarioResponse struct {
	ID        string        `json:"id"`
	Usuario   string        `json:"usuario"`
	Nombre    string        `json:"nombre"`
	Role      string        `json:"role"`
	Estado    entity.Estado `json:"estado"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// LoginResponse token JWT y usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

func NewUsuarioResponse(u *entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:        u.ID,
		Usuario:   u.Usuario,
		Nombre:    u.Nombre,
		Role:      u.Role,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
