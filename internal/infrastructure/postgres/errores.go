package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/restaurante-api/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	codUnique     = "23505"
	codForeignKey = "23503"
	codCheck      = "23514"
)

// campoPorRestriccion traduce el nombre de la restricción al campo del contrato.
var campoPorRestriccion = map[string]string{
	"areas_produccion_nombre_activa_key": "nombre",
	"grupos_clave_nombre_key":            "nombre",
	"unidades_clave_key":                 "clave",
	"clientes_documento_key":             "documento",
	"usuarios_usuario_key":               "usuario",
	"subgrupos_grupo_id_fkey":            "grupo_id",
	"clientes_tipo_cliente_id_fkey":      "tipo_cliente_id",
	"ordenes_cocina_area_fkey":           "area_produccion_id",
	"insumos_unidad_id_fkey":             "unidad_id",
	"insumos_grupo_id_fkey":              "grupo_id",
	"movimientos_insumo_id_fkey":         "insumo_id",
}

// traducir convierte un error del driver en un error de dominio. op identifica la operación.
func traducir(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		campo := campoPorRestriccion[pgErr.ConstraintName]
		switch pgErr.Code {
		case codUnique:
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, campo)
		case codForeignKey:
			return fmt.Errorf("%w: %s", domain.ErrIntegrity, campo)
		case codCheck:
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}

// esUUID evita enviar a Postgres identificadores que fallarían con 22P02.
func esUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// nullable convierte "" en NULL para columnas de referencia opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
