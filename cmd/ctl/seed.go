package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/restaurante-api/internal/app"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Crea los catálogos y usuarios de un archivo YAML (idempotente)",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedFile)
		if err != nil {
			return err
		}
		defer f.Close()
		s, err := app.LeerSemilla(f)
		if err != nil {
			return err
		}
		cont, cerrar, err := abrirContenedor(cmd.Context())
		if err != nil {
			return err
		}
		defer cerrar()
		res, err := cont.Sembrar(cmd.Context(), s, log)
		if err != nil {
			return err
		}
		log.Info().Int("creados", res.Creados).Int("omitidos", res.Omitidos).Str("archivo", seedFile).Msg("semilla aplicada")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "config/catalogos.yaml", "archivo YAML de catálogos")
}
