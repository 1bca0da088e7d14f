package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/clock"
)

// ClienteUseCase casos de uso de clientes. El documento es único y el tipo de cliente debe existir.
type ClienteUseCase struct {
	repo  repository.ClienteRepository
	tipos repository.TipoClienteRepository
	clock clock.Clock
}

func NewClienteUseCase(repo repository.ClienteRepository, tipos repository.TipoClienteRepository, clk clock.Clock) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, tipos: tipos, clock: clk}
}

func (uc *ClienteUseCase) List(ctx context.Context, filtro repository.Filtro) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return dto.Lista(list, dto.NewClienteResponse), nil
}

func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewClienteResponse(c)
	return &out, nil
}

func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	c := &entity.Cliente{
		ID:        uuid.New().String(),
		Estado:    entity.EstadoActivo,
		CreatedAt: now,
	}
	uc.aplicar(c, in.Nombre, in.Documento, in.Email, in.Telefono, in.TipoClienteID, now)
	if err := uc.verificar(ctx, c); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewClienteResponse(c)
	return &out, nil
}

// Update reemplazo completo: email y teléfono omitidos quedan vacíos.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.aplicar(c, in.Nombre, in.Documento, in.Email, in.Telefono, in.TipoClienteID, uc.clock.Now())
	if err := uc.verificar(ctx, c); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.NewClienteResponse(c)
	return &out, nil
}

func (uc *ClienteUseCase) SetEstado(ctx context.Context, id string, activo bool) (*dto.ClienteResponse, error) {
	c, err := uc.repo.SetEstado(ctx, id, entity.EstadoDesdeBool(activo), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	out := dto.NewClienteResponse(c)
	return &out, nil
}

func (uc *ClienteUseCase) aplicar(c *entity.Cliente, nombre, documento, email, telefono, tipoID string, now time.Time) {
	c.Nombre = strings.TrimSpace(nombre)
	c.Documento = strings.TrimSpace(documento)
	c.Email = strings.TrimSpace(email)
	c.Telefono = strings.TrimSpace(telefono)
	c.TipoClienteID = strings.TrimSpace(tipoID)
	c.UpdatedAt = now
}

func (uc *ClienteUseCase) verificar(ctx context.Context, c *entity.Cliente) error {
	tipo, err := uc.tipos.GetByID(ctx, c.TipoClienteID)
	if err != nil {
		return err
	}
	if tipo == nil {
		return fmt.Errorf("%w: el tipo de cliente %q no existe", domain.ErrIntegrity, c.TipoClienteID)
	}
	otro, err := uc.repo.GetByDocumento(ctx, c.Documento)
	if err != nil {
		return err
	}
	if otro != nil && otro.ID != c.ID {
		return duplicado("documento", c.Documento)
	}
	return nil
}

func (uc *ClienteUseCase) get(ctx context.Context, id string) (*entity.Cliente, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return c, nil
}
