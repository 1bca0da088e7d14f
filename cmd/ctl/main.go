// Command ctl tareas de operación: migraciones, semilla de catálogos, usuarios y reportes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/restaurante-api/internal/app"
	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/memoria"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/postgres"
	"github.com/jhoicas/restaurante-api/pkg/clock"
	"github.com/jhoicas/restaurante-api/pkg/config"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

var (
	logLevel string
	cfg      *config.Config
	log      *logger.Logger
)

// rootCmd comando base.
var rootCmd = &cobra.Command{
	Use:           "ctl",
	Short:         "Herramientas de operación de restaurante-api",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		level := logLevel
		if level == "" {
			level = cfg.App.LogLevel
		}
		log = logger.New(logger.Config{Env: "development", Level: level, Service: "ctl"})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "nivel de log (por defecto LOG_LEVEL)")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	usuariosCmd.AddCommand(usuariosCrearCmd)
	inventarioCmd.AddCommand(inventarioExportarCmd)

	rootCmd.AddCommand(migrateCmd, seedCmd, usuariosCmd, inventarioCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// abrirContenedor conecta el driver configurado y arma los casos de uso.
// cerrar libera la conexión.
func abrirContenedor(ctx context.Context) (cont *app.Contenedor, cerrar func(), err error) {
	var repos app.Repositorios
	cerrar = func() {}
	switch cfg.Storage.Driver {
	case config.StorageMemoria:
		repos = app.Memoria(memoria.NewStore())
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		repos = app.Postgres(pool)
		cerrar = pool.Close
	}
	cont = app.Nuevo(repos, app.Opciones{
		JWT:   auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
		Clock: clock.NewRealClock(),
		Log:   log,
	})
	return cont, cerrar, nil
}
