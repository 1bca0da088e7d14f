package postgres

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.UnidadSyncRepository = (*UnidadSyncRepo)(nil)

// UnidadSyncRepo lee la tabla que escribe la integración externa. Nunca escribe en ella.
type UnidadSyncRepo struct {
	q Querier
}

func NewUnidadSyncRepository(q Querier) *UnidadSyncRepo { return &UnidadSyncRepo{q: q} }

func (r *UnidadSyncRepo) List(ctx context.Context) ([]*entity.UnidadSync, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, clave, nombre, abreviacion, usuario_ulid, empresa_ulid, fecha_sync
		FROM unidades_sync ORDER BY clave, id`)
	if err != nil {
		return nil, traducir("list unidades_sync", err)
	}
	defer rows.Close()
	list := make([]*entity.UnidadSync, 0)
	for rows.Next() {
		var u entity.UnidadSync
		if err := rows.Scan(&u.ID, &u.Clave, &u.Nombre, &u.Abreviacion, &u.UsuarioULID, &u.EmpresaULID, &u.FechaSync); err != nil {
			return nil, traducir("scan unidades_sync", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, traducir("list unidades_sync", err)
	}
	return list, nil
}
