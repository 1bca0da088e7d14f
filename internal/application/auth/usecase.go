package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/clock"
	"github.com/jhoicas/restaurante-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: alta de usuarios y login con PIN.
type AuthUseCase struct {
	repo   repository.UsuarioRepository
	jwtCfg JWTConfig
	clock  clock.Clock
	cost   int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(repo repository.UsuarioRepository, jwtCfg JWTConfig, clk clock.Clock) *AuthUseCase {
	return &AuthUseCase{repo: repo, jwtCfg: jwtCfg, clock: clk, cost: bcrypt.DefaultCost}
}

// WithBcryptCost ajusta el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// RegisterUser crea un usuario activo; password y PIN se guardan como hash bcrypt.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.FindByUsuario(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el usuario %q ya existe", domain.ErrDuplicate, in.Usuario)
	}
	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	pinHash, err := bcrypt.GenerateFromPassword([]byte(in.Pin), uc.cost)
	if err != nil {
		return nil, err
	}
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		nombre = in.Usuario
	}
	now := uc.clock.Now()
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Usuario:      in.Usuario,
		Nombre:       nombre,
		PasswordHash: string(passHash),
		PinHash:      string(pinHash),
		Role:         in.Role,
		Estado:       entity.EstadoActivo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	out := dto.NewUsuarioResponse(u)
	return &out, nil
}

// Login valida el formulario, verifica password y PIN y emite el JWT.
// Usuario inexistente y credenciales incorrectas responden igual (ErrUnauthorized).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	u, err := uc.repo.FindByUsuario(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PinHash), []byte(in.Pin)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Estado.Activo() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer,
		jwt.Identidad{UserID: u.ID, Usuario: u.Usuario, Role: u.Role},
		uc.jwtCfg.ExpMinutes, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: dto.NewUsuarioResponse(u)}, nil
}
