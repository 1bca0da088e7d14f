package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

func TestSeleccion(t *testing.T) {
	grupos := NewGrupoRepository(nil)
	assert.Equal(t, columnasBase, grupos.t.seleccion())

	unidades := NewUnidadRepository(nil)
	assert.Equal(t, columnasBase+", clave, abreviacion", unidades.t.seleccion())

	u := &entity.Unidad{Clave: "KGM", Abreviacion: "kg"}
	assert.Equal(t, []any{"KGM", "kg"}, unidades.t.valores(u))
	assert.Len(t, unidades.t.destinos(u), 2)
}

// Un grupo_id que no es UUID no puede existir: se responde integridad sin tocar la base.
func TestSubgrupo_GrupoIDNoUUIDEsIntegridad(t *testing.T) {
	repo := NewSubgrupoRepository(nil)
	sg := &entity.Subgrupo{GrupoID: "no-existe"}

	assert.ErrorIs(t, repo.Create(context.Background(), sg), domain.ErrIntegrity)
	assert.ErrorIs(t, repo.Update(context.Background(), sg), domain.ErrIntegrity)
}
