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

// columnasBase son las columnas que toda tabla de catálogo comparte, en orden de SELECT.
const columnasBase = "id, nombre, descripcion, estado, created_at, updated_at"

// tablaCatalogo implementa las operaciones comunes de un catálogo sobre una tabla.
// Cada entidad declara sus columnas propias y cómo leerlas y escribirlas.
type tablaCatalogo[T any] struct {
	q     Querier
	tabla string
	extra []string
	base  func(*T) *entity.Catalogo
	// valores de las columnas extra, en el orden de extra
	valores func(*T) []any
	// destinos de Scan para las columnas extra
	destinos func(*T) []any
}

func (t *tablaCatalogo[T]) seleccion() string {
	if len(t.extra) == 0 {
		return columnasBase
	}
	return columnasBase + ", " + strings.Join(t.extra, ", ")
}

func (t *tablaCatalogo[T]) scan(row pgx.Row) (*T, error) {
	item := new(T)
	b := t.base(item)
	var estado string
	dest := append([]any{&b.ID, &b.Nombre, &b.Descripcion, &estado, &b.CreatedAt, &b.UpdatedAt}, t.destinos(item)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	b.Estado = entity.Estado(estado)
	return item, nil
}

// list devuelve los registros ordenados por nombre normalizado. where es opcional ("grupo_id = $2").
func (t *tablaCatalogo[T]) list(ctx context.Context, f repository.Filtro, where string, args ...any) ([]*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE ($1 OR estado = 'activo')`, t.seleccion(), t.tabla)
	if where != "" {
		query += " AND " + where
	}
	query += " ORDER BY clave_nombre, id"

	rows, err := t.q.Query(ctx, query, append([]any{f.IncluirInactivos}, args...)...)
	if err != nil {
		return nil, traducir("list "+t.tabla, err)
	}
	defer rows.Close()
	list := make([]*T, 0)
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			return nil, traducir("scan "+t.tabla, err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, traducir("list "+t.tabla, err)
	}
	return list, nil
}

// uno devuelve (nil, nil) si no hay fila.
func (t *tablaCatalogo[T]) uno(ctx context.Context, where string, args ...any) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY clave_nombre, id LIMIT 1`, t.seleccion(), t.tabla, where)
	item, err := t.scan(t.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, traducir("get "+t.tabla, err)
	}
	return item, nil
}

func (t *tablaCatalogo[T]) get(ctx context.Context, id string) (*T, error) {
	if !esUUID(id) {
		return nil, nil
	}
	return t.uno(ctx, "id = $1", id)
}

func (t *tablaCatalogo[T]) create(ctx context.Context, item *T) error {
	b := t.base(item)
	cols := append([]string{"id", "nombre", "clave_nombre", "descripcion", "estado", "created_at", "updated_at"}, t.extra...)
	args := append([]any{b.ID, b.Nombre, entity.ClaveNombre(b.Nombre), b.Descripcion, string(b.Estado), b.CreatedAt, b.UpdatedAt}, t.valores(item)...)
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, t.tabla, strings.Join(cols, ", "), marcadores(1, len(cols)))
	if _, err := t.q.Exec(ctx, query, args...); err != nil {
		return traducir("insert "+t.tabla, err)
	}
	return nil
}

// update reemplaza los datos editables. Estado y created_at no cambian y se devuelven en item.
func (t *tablaCatalogo[T]) update(ctx context.Context, item *T) error {
	b := t.base(item)
	if !esUUID(b.ID) {
		return domain.ErrNotFound
	}
	sets := []string{"nombre = $2", "clave_nombre = $3", "descripcion = $4", "updated_at = $5"}
	for i, c := range t.extra {
		sets = append(sets, fmt.Sprintf("%s = $%d", c, i+6))
	}
	args := append([]any{b.ID, b.Nombre, entity.ClaveNombre(b.Nombre), b.Descripcion, b.UpdatedAt}, t.valores(item)...)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1 RETURNING estado, created_at`, t.tabla, strings.Join(sets, ", "))

	var estado string
	if err := t.q.QueryRow(ctx, query, args...).Scan(&estado, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return traducir("update "+t.tabla, err)
	}
	b.Estado = entity.Estado(estado)
	return nil
}

func (t *tablaCatalogo[T]) setEstado(ctx context.Context, id string, e entity.Estado, at time.Time) (*T, error) {
	if !esUUID(id) {
		return nil, domain.ErrNotFound
	}
	query := fmt.Sprintf(`UPDATE %s SET estado = $2, updated_at = $3 WHERE id = $1 RETURNING %s`, t.tabla, t.seleccion())
	item, err := t.scan(t.q.QueryRow(ctx, query, id, string(e), at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, traducir("set estado "+t.tabla, err)
	}
	return item, nil
}

// marcadores devuelve "$desde, ..., $(desde+n-1)".
func marcadores(desde, n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", desde+i)
	}
	return strings.Join(ps, ", ")
}
