package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const columnasCliente = `id, nombre, documento, email, telefono, tipo_cliente_id, estado, created_at, updated_at`

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	var estado string
	if err := row.Scan(&c.ID, &c.Nombre, &c.Documento, &c.Email, &c.Telefono, &c.TipoClienteID, &estado, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Estado = entity.Estado(estado)
	return &c, nil
}

func (r *ClienteRepo) List(ctx context.Context, f repository.Filtro) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+columnasCliente+` FROM clientes
		WHERE ($1 OR estado = 'activo') ORDER BY clave_nombre, id`, f.IncluirInactivos)
	if err != nil {
		return nil, traducir("list clientes", err)
	}
	defer rows.Close()
	list := make([]*entity.Cliente, 0)
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, traducir("scan cliente", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, traducir("list clientes", err)
	}
	return list, nil
}

func (r *ClienteRepo) uno(ctx context.Context, where string, arg any) (*entity.Cliente, error) {
	c, err := scanCliente(r.q.QueryRow(ctx, `SELECT `+columnasCliente+` FROM clientes WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, traducir("get cliente", err)
	}
	return c, nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	if !esUUID(id) {
		return nil, nil
	}
	return r.uno(ctx, "id = $1", id)
}

// GetByDocumento busca sin distinguir mayúsculas.
func (r *ClienteRepo) GetByDocumento(ctx context.Context, documento string) (*entity.Cliente, error) {
	return r.uno(ctx, "lower(documento) = lower($1)", documento)
}

func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	if !esUUID(c.TipoClienteID) {
		return fmt.Errorf("%w: tipo_cliente_id", domain.ErrIntegrity)
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO clientes (id, nombre, clave_nombre, documento, email, telefono, tipo_cliente_id, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Nombre, entity.ClaveNombre(c.Nombre), c.Documento, c.Email, c.Telefono, c.TipoClienteID,
		string(c.Estado), c.CreatedAt, c.UpdatedAt,
	)
	return traducir("insert cliente", err)
}

// Update no cambia estado ni created_at; ambos se devuelven en c.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	if !esUUID(c.ID) {
		return domain.ErrNotFound
	}
	if !esUUID(c.TipoClienteID) {
		return fmt.Errorf("%w: tipo_cliente_id", domain.ErrIntegrity)
	}
	var estado string
	err := r.q.QueryRow(ctx, `
		UPDATE clientes SET nombre = $2, clave_nombre = $3, documento = $4, email = $5, telefono = $6,
			tipo_cliente_id = $7, updated_at = $8
		WHERE id = $1 RETURNING estado, created_at`,
		c.ID, c.Nombre, entity.ClaveNombre(c.Nombre), c.Documento, c.Email, c.Telefono, c.TipoClienteID, c.UpdatedAt,
	).Scan(&estado, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return traducir("update cliente", err)
	}
	c.Estado = entity.Estado(estado)
	return nil
}

func (r *ClienteRepo) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.Cliente, error) {
	if !esUUID(id) {
		return nil, domain.ErrNotFound
	}
	c, err := scanCliente(r.q.QueryRow(ctx, `
		UPDATE clientes SET estado = $2, updated_at = $3 WHERE id = $1
		RETURNING `+columnasCliente, id, string(e), at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, traducir("set estado cliente", err)
	}
	return c, nil
}
