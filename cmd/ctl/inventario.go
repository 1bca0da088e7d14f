package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	formatoReporte string
	salidaReporte  string
)

var inventarioCmd = &cobra.Command{
	Use:   "inventario",
	Short: "Reportes de inventario",
}

var inventarioExportarCmd = &cobra.Command{
	Use:   "exportar",
	Short: "Genera el reporte de insumos en xlsx o pdf",
	RunE: func(cmd *cobra.Command, args []string) error {
		cont, cerrar, err := abrirContenedor(cmd.Context())
		if err != nil {
			return err
		}
		defer cerrar()
		b, _, err := cont.Reportes.Exportar(cmd.Context(), formatoReporte)
		if err != nil {
			return err
		}
		salida := salidaReporte
		if salida == "" {
			salida = fmt.Sprintf("inventario.%s", formatoReporte)
		}
		if err := os.WriteFile(salida, b, 0o644); err != nil {
			return err
		}
		log.Info().Str("archivo", salida).Int("bytes", len(b)).Msg("reporte generado")
		return nil
	},
}

func init() {
	inventarioExportarCmd.Flags().StringVar(&formatoReporte, "formato", "xlsx", "xlsx | pdf")
	inventarioExportarCmd.Flags().StringVar(&salidaReporte, "salida", "", "archivo de salida (por defecto inventario.<formato>)")
}
