package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar más la identidad del operador.
// Role viaja en el token para que el middleware decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	Usuario string `json:"usuario"`
	Role    string `json:"role"` // "admin" | "cocina" | "caja"
}

// Identidad es el resultado de validar un token.
type Identidad struct {
	UserID  string
	Usuario string
	Role    string
}

// Generate firma un token HS256 para la identidad dada.
func Generate(secret, issuer string, id Identidad, expMinutes int, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:  id.UserID,
		Usuario: id.Usuario,
		Role:    id.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse valida firma y expiración contra now y devuelve la identidad contenida.
// now debe salir del mismo reloj con el que se emitió el token.
func Parse(secret, tokenString string, now time.Time) (Identidad, error) {
	if secret == "" {
		return Identidad{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		return Identidad{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identidad{}, fmt.Errorf("claims inválidos")
	}
	return Identidad{UserID: claims.UserID, Usuario: claims.Usuario, Role: claims.Role}, nil
}
