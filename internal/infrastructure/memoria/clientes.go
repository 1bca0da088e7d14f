package memoria

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// ClienteRepository implementa repository.ClienteRepository.
type ClienteRepository struct{ s *Store }

func (s *Store) Clientes() *ClienteRepository { return &ClienteRepository{s: s} }

func (r *ClienteRepository) check(c *entity.Cliente) error {
	if !r.s.tipos.existe(c.TipoClienteID) {
		return fmt.Errorf("%w: tipo de cliente %s", domain.ErrIntegrity, c.TipoClienteID)
	}
	return r.s.clientes.unicoL(c, "documento", func(o *entity.Cliente) bool {
		return strings.EqualFold(o.Documento, c.Documento)
	})
}

func (r *ClienteRepository) List(ctx context.Context, f repository.Filtro) ([]*entity.Cliente, error) {
	return r.s.clientes.list(ctx, f, nil)
}

func (r *ClienteRepository) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	return r.s.clientes.get(ctx, id)
}

func (r *ClienteRepository) GetByDocumento(ctx context.Context, documento string) (*entity.Cliente, error) {
	l, err := r.s.clientes.list(ctx, repository.Filtro{IncluirInactivos: true}, func(c *entity.Cliente) bool {
		return strings.EqualFold(c.Documento, documento)
	})
	if err != nil || len(l) == 0 {
		return nil, err
	}
	return l[0], nil
}

func (r *ClienteRepository) Create(ctx context.Context, c *entity.Cliente) error {
	return r.s.clientes.create(ctx, c, r.check)
}

func (r *ClienteRepository) Update(ctx context.Context, c *entity.Cliente) error {
	return r.s.clientes.update(ctx, c, func(c *entity.Cliente) error {
		if prev := r.s.clientes.getL(c.ID); prev != nil {
			c.Estado = prev.Estado
			c.CreatedAt = prev.CreatedAt
		}
		return r.check(c)
	})
}

func (r *ClienteRepository) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.Cliente, error) {
	return r.s.clientes.setEstado(ctx, id, e, at, nil)
}

// UsuarioRepository implementa repository.UsuarioRepository.
type UsuarioRepository struct{ s *Store }

func (s *Store) Usuarios() *UsuarioRepository { return &UsuarioRepository{s: s} }

func (r *UsuarioRepository) Create(ctx context.Context, u *entity.Usuario) error {
	return r.s.usuarios.create(ctx, u, func(u *entity.Usuario) error {
		return r.s.usuarios.unicoL(u, "usuario", func(o *entity.Usuario) bool { return strings.EqualFold(o.Usuario, u.Usuario) })
	})
}

func (r *UsuarioRepository) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.s.usuarios.get(ctx, id)
}

func (r *UsuarioRepository) FindByUsuario(ctx context.Context, usuario string) (*entity.Usuario, error) {
	l, err := r.s.usuarios.list(ctx, repository.Filtro{IncluirInactivos: true}, func(u *entity.Usuario) bool {
		return strings.EqualFold(u.Usuario, usuario)
	})
	if err != nil || len(l) == 0 {
		return nil, err
	}
	return l[0], nil
}

var (
	_ repository.ClienteRepository = (*ClienteRepository)(nil)
	_ repository.UsuarioRepository = (*UsuarioRepository)(nil)
)
