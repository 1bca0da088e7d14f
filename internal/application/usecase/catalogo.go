package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// nuevoCatalogo arma la forma base de un registro nuevo: id y fechas los asigna el servidor
// y todo registro nace activo.
func nuevoCatalogo(now time.Time, nombre, descripcion string) entity.Catalogo {
	return entity.Catalogo{
		ID:          uuid.New().String(),
		Nombre:      strings.TrimSpace(nombre),
		Descripcion: strings.TrimSpace(descripcion),
		Estado:      entity.EstadoActivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// reemplazar aplica una actualización completa sobre la forma base.
func reemplazar(c *entity.Catalogo, now time.Time, nombre, descripcion string) {
	c.Nombre = strings.TrimSpace(nombre)
	c.Descripcion = strings.TrimSpace(descripcion)
	c.UpdatedAt = now
}

func noEncontrado(kind entity.Kind, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, kind, id)
}

func duplicado(campo, valor string) error {
	return fmt.Errorf("%w: ya existe un registro con %s %q", domain.ErrDuplicate, campo, valor)
}
