package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/restaurante-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migraciones de esquema (goose, embebidas en el binario)",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica todas las migraciones pendientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return conMigrador(cmd, func(m *postgres.Migrador) error { return m.Up(cmd.Context()) })
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revierte la última migración",
	RunE: func(cmd *cobra.Command, args []string) error {
		return conMigrador(cmd, func(m *postgres.Migrador) error { return m.Down(cmd.Context()) })
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Muestra el estado de cada migración",
	RunE: func(cmd *cobra.Command, args []string) error {
		return conMigrador(cmd, func(m *postgres.Migrador) error { return m.Status(cmd.Context()) })
	},
}

func conMigrador(cmd *cobra.Command, fn func(*postgres.Migrador) error) error {
	m, err := postgres.NewMigrador(cfg.DB.ConnectionString())
	if err != nil {
		return err
	}
	defer m.Close()
	if err := fn(m); err != nil {
		return err
	}
	log.Info().Str("comando", cmd.CommandPath()).Msg("migraciones: listo")
	return nil
}
