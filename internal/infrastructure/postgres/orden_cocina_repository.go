package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.OrdenCocinaRepository = (*OrdenCocinaRepo)(nil)

// OrdenCocinaRepo guarda las comandas; los ítems van en una columna jsonb.
type OrdenCocinaRepo struct {
	q Querier
}

func NewOrdenCocinaRepository(q Querier) *OrdenCocinaRepo { return &OrdenCocinaRepo{q: q} }

const columnasOrden = `id, mesa, area_produccion_id, items, notas, estado, created_at, updated_at`

func scanOrden(row pgx.Row) (*entity.OrdenCocina, error) {
	var o entity.OrdenCocina
	var estado string
	if err := row.Scan(&o.ID, &o.Mesa, &o.AreaProduccionID, &o.Items, &o.Notas, &estado, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.Estado = entity.EstadoOrden(estado)
	return &o, nil
}

// Create inserta la orden solo si el área existe y está activa.
func (r *OrdenCocinaRepo) Create(ctx context.Context, o *entity.OrdenCocina) error {
	if !esUUID(o.AreaProduccionID) {
		return fmt.Errorf("%w: area_produccion_id", domain.ErrIntegrity)
	}
	tag, err := r.q.Exec(ctx, `
		INSERT INTO ordenes_cocina (id, mesa, area_produccion_id, items, notas, estado, created_at, updated_at)
		SELECT $1, $2, a.id, $4, $5, $6, $7, $8
		FROM areas_produccion a WHERE a.id = $3 AND a.estado = 'activo'`,
		o.ID, o.Mesa, o.AreaProduccionID, o.Items, o.Notas, string(o.Estado), o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return traducir("insert orden", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: area_produccion_id", domain.ErrIntegrity)
	}
	return nil
}

func (r *OrdenCocinaRepo) GetByID(ctx context.Context, id string) (*entity.OrdenCocina, error) {
	if !esUUID(id) {
		return nil, nil
	}
	o, err := scanOrden(r.q.QueryRow(ctx, `SELECT `+columnasOrden+` FROM ordenes_cocina WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, traducir("get orden", err)
	}
	return o, nil
}

// List: sin estados en el filtro devuelve solo las órdenes abiertas, en orden de llegada.
func (r *OrdenCocinaRepo) List(ctx context.Context, f repository.FiltroOrdenes) ([]*entity.OrdenCocina, error) {
	var (
		conds []string
		args  []any
	)
	if len(f.Estados) == 0 {
		conds = append(conds, fmt.Sprintf("estado NOT IN ('%s', '%s')", entity.OrdenEntregada, entity.OrdenCancelada))
	} else {
		estados := make([]string, len(f.Estados))
		for i, e := range f.Estados {
			estados[i] = string(e)
		}
		args = append(args, estados)
		conds = append(conds, fmt.Sprintf("estado = ANY($%d)", len(args)))
	}
	if f.AreaProduccionID != "" {
		if !esUUID(f.AreaProduccionID) {
			return []*entity.OrdenCocina{}, nil
		}
		args = append(args, f.AreaProduccionID)
		conds = append(conds, fmt.Sprintf("area_produccion_id = $%d", len(args)))
	}

	rows, err := r.q.Query(ctx, `SELECT `+columnasOrden+` FROM ordenes_cocina WHERE `+
		strings.Join(conds, " AND ")+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, traducir("list ordenes", err)
	}
	defer rows.Close()
	list := make([]*entity.OrdenCocina, 0)
	for rows.Next() {
		o, err := scanOrden(rows)
		if err != nil {
			return nil, traducir("scan orden", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, traducir("list ordenes", err)
	}
	return list, nil
}

// CambiarEstado es un compare-and-swap sobre la columna estado.
func (r *OrdenCocinaRepo) CambiarEstado(ctx context.Context, id string, desde, hacia entity.EstadoOrden, at time.Time) (*entity.OrdenCocina, error) {
	if !esUUID(id) {
		return nil, domain.ErrNotFound
	}
	o, err := scanOrden(r.q.QueryRow(ctx, `
		UPDATE ordenes_cocina SET estado = $3, updated_at = $4
		WHERE id = $1 AND estado = $2
		RETURNING `+columnasOrden, id, string(desde), string(hacia), at))
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, traducir("cambiar estado orden", err)
	}

	var actual string
	err = r.q.QueryRow(ctx, `SELECT estado FROM ordenes_cocina WHERE id = $1`, id).Scan(&actual)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, traducir("cambiar estado orden", err)
	}
	return nil, fmt.Errorf("%w: la orden está en %s", domain.ErrConflict, actual)
}
