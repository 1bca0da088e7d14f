package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registra el driver pgx que goose usa para "postgres"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/restaurante-api/internal/infrastructure/postgres/migrations"
)

// Migrador aplica las migraciones embebidas con goose.
type Migrador struct {
	db *sql.DB
}

// NewMigrador abre una conexión database/sql independiente del pool.
func NewMigrador(dsn string) (*Migrador, error) {
	db, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir conexión de migraciones: %w", err)
	}
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Migrador{db: db}, nil
}

func (m *Migrador) Up(ctx context.Context) error { return goose.UpContext(ctx, m.db, ".") }

func (m *Migrador) Down(ctx context.Context) error { return goose.DownContext(ctx, m.db, ".") }

func (m *Migrador) Status(ctx context.Context) error { return goose.StatusContext(ctx, m.db, ".") }

func (m *Migrador) Close() error { return m.db.Close() }
