package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/inventario"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var (
	_ repository.InsumoRepository     = (*InsumoRepo)(nil)
	_ repository.MovimientoRepository = (*MovimientoRepo)(nil)
)

// InsumoRepo implementación de InsumoRepository (usable con pool o tx).
type InsumoRepo struct {
	q Querier
}

func NewInsumoRepository(q Querier) *InsumoRepo { return &InsumoRepo{q: q} }

const columnasInsumo = `id, nombre, unidad_id, grupo_id, existencia, stock_minimo, costo_promedio, estado, created_at, updated_at`

func scanInsumo(row pgx.Row) (*entity.Insumo, error) {
	var i entity.Insumo
	var grupoID *string
	var estado string
	if err := row.Scan(&i.ID, &i.Nombre, &i.UnidadID, &grupoID, &i.Existencia, &i.StockMinimo, &i.CostoPromedio,
		&estado, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	if grupoID != nil {
		i.GrupoID = *grupoID
	}
	i.Estado = entity.Estado(estado)
	return &i, nil
}

func (r *InsumoRepo) listar(ctx context.Context, where string, args ...any) ([]*entity.Insumo, error) {
	rows, err := r.q.Query(ctx, `SELECT `+columnasInsumo+` FROM insumos WHERE `+where+` ORDER BY clave_nombre, id`, args...)
	if err != nil {
		return nil, traducir("list insumos", err)
	}
	defer rows.Close()
	list := make([]*entity.Insumo, 0)
	for rows.Next() {
		i, err := scanInsumo(rows)
		if err != nil {
			return nil, traducir("scan insumo", err)
		}
		list = append(list, i)
	}
	if err := rows.Err(); err != nil {
		return nil, traducir("list insumos", err)
	}
	return list, nil
}

func (r *InsumoRepo) List(ctx context.Context, f repository.Filtro) ([]*entity.Insumo, error) {
	return r.listar(ctx, "($1 OR estado = 'activo')", f.IncluirInactivos)
}

func (r *InsumoRepo) get(ctx context.Context, id, sufijo string) (*entity.Insumo, error) {
	if !esUUID(id) {
		return nil, nil
	}
	i, err := scanInsumo(r.q.QueryRow(ctx, `SELECT `+columnasInsumo+` FROM insumos WHERE id = $1`+sufijo, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, traducir("get insumo", err)
	}
	return i, nil
}

func (r *InsumoRepo) GetByID(ctx context.Context, id string) (*entity.Insumo, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate bloquea la fila hasta el fin de la transacción; solo tiene efecto con un Querier tx.
func (r *InsumoRepo) GetForUpdate(ctx context.Context, id string) (*entity.Insumo, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

func (r *InsumoRepo) referencias(i *entity.Insumo) error {
	if !esUUID(i.UnidadID) {
		return fmt.Errorf("%w: unidad_id", domain.ErrIntegrity)
	}
	if i.GrupoID != "" && !esUUID(i.GrupoID) {
		return fmt.Errorf("%w: grupo_id", domain.ErrIntegrity)
	}
	return nil
}

func (r *InsumoRepo) Create(ctx context.Context, i *entity.Insumo) error {
	if err := r.referencias(i); err != nil {
		return err
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO insumos (id, nombre, clave_nombre, unidad_id, grupo_id, existencia, stock_minimo, costo_promedio, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		i.ID, i.Nombre, entity.ClaveNombre(i.Nombre), i.UnidadID, nullable(i.GrupoID),
		i.Existencia, i.StockMinimo, i.CostoPromedio, string(i.Estado), i.CreatedAt, i.UpdatedAt,
	)
	return traducir("insert insumo", err)
}

// Update reemplaza los datos maestros; existencia, costo, estado y created_at se conservan y se devuelven en i.
func (r *InsumoRepo) Update(ctx context.Context, i *entity.Insumo) error {
	if !esUUID(i.ID) {
		return domain.ErrNotFound
	}
	if err := r.referencias(i); err != nil {
		return err
	}
	var estado string
	err := r.q.QueryRow(ctx, `
		UPDATE insumos SET nombre = $2, clave_nombre = $3, unidad_id = $4, grupo_id = $5, stock_minimo = $6, updated_at = $7
		WHERE id = $1
		RETURNING existencia, costo_promedio, estado, created_at`,
		i.ID, i.Nombre, entity.ClaveNombre(i.Nombre), i.UnidadID, nullable(i.GrupoID), i.StockMinimo, i.UpdatedAt,
	).Scan(&i.Existencia, &i.CostoPromedio, &estado, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return traducir("update insumo", err)
	}
	i.Estado = entity.Estado(estado)
	return nil
}

func (r *InsumoRepo) SetEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*entity.Insumo, error) {
	if !esUUID(id) {
		return nil, domain.ErrNotFound
	}
	i, err := scanInsumo(r.q.QueryRow(ctx, `
		UPDATE insumos SET estado = $2, updated_at = $3 WHERE id = $1
		RETURNING `+columnasInsumo, id, string(e), at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, traducir("set estado insumo", err)
	}
	return i, nil
}

func (r *InsumoRepo) UpdateExistencia(ctx context.Context, id string, existencia, costo decimal.Decimal) error {
	if !esUUID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `UPDATE insumos SET existencia = $2, costo_promedio = $3 WHERE id = $1`, id, existencia, costo)
	if err != nil {
		return traducir("update existencia", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Estadisticas se calcula sobre los insumos activos con la misma valorización que usa el dominio.
func (r *InsumoRepo) Estadisticas(ctx context.Context) (*entity.EstadisticasInventario, error) {
	activos, err := r.List(ctx, repository.Filtro{})
	if err != nil {
		return nil, err
	}
	est := &entity.EstadisticasInventario{TotalInsumos: len(activos), ValorTotal: decimal.Zero}
	for _, i := range activos {
		if i.BajoMinimo() {
			est.BajoMinimo++
		}
		est.ValorTotal = est.ValorTotal.Add(inventario.Valorizar(i.Existencia, i.CostoPromedio))
	}
	return est, nil
}

func (r *InsumoRepo) ListBajoMinimo(ctx context.Context) ([]*entity.Insumo, error) {
	return r.listar(ctx, "estado = 'activo' AND stock_minimo > 0 AND existencia < stock_minimo")
}

// MovimientoRepo implementación de MovimientoRepository (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

func NewMovimientoRepository(q Querier) *MovimientoRepo { return &MovimientoRepo{q: q} }

func (r *MovimientoRepo) Create(ctx context.Context, m *entity.MovimientoInventario) error {
	if !esUUID(m.InsumoID) {
		return fmt.Errorf("%w: insumo_id", domain.ErrIntegrity)
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO movimientos_inventario (id, insumo_id, tipo, cantidad, costo_unitario, costo_total, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.InsumoID, m.Tipo, m.Cantidad, m.CostoUnitario, m.CostoTotal, m.CreatedAt, m.CreatedBy,
	)
	return traducir("insert movimiento", err)
}

// ListByInsumo devuelve los movimientos más recientes primero; limit <= 0 sin límite.
func (r *MovimientoRepo) ListByInsumo(ctx context.Context, insumoID string, limit int) ([]*entity.MovimientoInventario, error) {
	if !esUUID(insumoID) {
		return []*entity.MovimientoInventario{}, nil
	}
	query := `
		SELECT id, insumo_id, tipo, cantidad, costo_unitario, costo_total, created_at, created_by
		FROM movimientos_inventario WHERE insumo_id = $1 ORDER BY created_at DESC, id DESC`
	args := []any{insumoID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, traducir("list movimientos", err)
	}
	defer rows.Close()
	list := make([]*entity.MovimientoInventario, 0)
	for rows.Next() {
		var m entity.MovimientoInventario
		if err := rows.Scan(&m.ID, &m.InsumoID, &m.Tipo, &m.Cantidad, &m.CostoUnitario, &m.CostoTotal, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, traducir("scan movimiento", err)
		}
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, traducir("list movimientos", err)
	}
	return list, nil
}
