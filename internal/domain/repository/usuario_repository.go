package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia para usuarios del back-office.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	// FindByUsuario devuelve (nil, nil) si no existe.
	FindByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error)
}
