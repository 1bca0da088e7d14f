package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario. usuarios_usuario_key (lower(usuario)) produce domain.ErrDuplicate.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO usuarios (id, usuario, nombre, password_hash, pin_hash, role, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Usuario, u.Nombre, u.PasswordHash, u.PinHash, u.Role, string(u.Estado), u.CreatedAt, u.UpdatedAt,
	)
	return traducir("insert usuario", err)
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	if !esUUID(id) {
		return nil, nil
	}
	return r.find(ctx, "id = $1", id)
}

// FindByUsuario busca sin distinguir mayúsculas.
func (r *UsuarioRepo) FindByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error) {
	return r.find(ctx, "lower(usuario) = lower($1)", usuario)
}

func (r *UsuarioRepo) find(ctx context.Context, where string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	var estado string
	err := r.q.QueryRow(ctx, `
		SELECT id, usuario, nombre, password_hash, pin_hash, role, estado, created_at, updated_at
		FROM usuarios WHERE `+where, arg).Scan(
		&u.ID, &u.Usuario, &u.Nombre, &u.PasswordHash, &u.PinHash, &u.Role, &estado, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, traducir("get usuario", err)
	}
	u.Estado = entity.Estado(estado)
	return &u, nil
}
