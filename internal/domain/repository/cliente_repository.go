package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// ClienteRepository puerto de persistencia para clientes.
// Create y Update devuelven domain.ErrIntegrity si TipoClienteID no existe.
type ClienteRepository interface {
	CatalogoRepository[entity.Cliente]
	GetByDocumento(ctx context.Context, documento string) (*entity.Cliente, error)
}
