package entity

import "time"

// Roles válidos para Usuario.
const (
	RoleAdmin  = "admin"
	RoleCocina = "cocina"
	RoleCaja   = "caja"
)

// Usuario del back-office. Password y PIN se guardan solo como hash bcrypt.
type Usuario struct {
	ID           string
	Usuario      string
	Nombre       string
	PasswordHash string
	PinHash      string
	Role         string
	Estado       Estado
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
