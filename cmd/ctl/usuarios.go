package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
)

var nuevoUsuario dto.CreateUsuarioRequest

var usuariosCmd = &cobra.Command{
	Use:   "usuarios",
	Short: "Gestión de usuarios del back-office",
}

var usuariosCrearCmd = &cobra.Command{
	Use:   "crear",
	Short: "Registra un usuario (password y PIN se guardan con bcrypt)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cont, cerrar, err := abrirContenedor(cmd.Context())
		if err != nil {
			return err
		}
		defer cerrar()
		u, err := cont.Auth.RegisterUser(cmd.Context(), nuevoUsuario)
		if err != nil {
			return err
		}
		log.Info().Str("id", u.ID).Str("usuario", u.Usuario).Str("role", u.Role).Msg("usuario creado")
		return nil
	},
}

func init() {
	f := usuariosCrearCmd.Flags()
	f.StringVar(&nuevoUsuario.Usuario, "usuario", "", "nombre de usuario")
	f.StringVar(&nuevoUsuario.Nombre, "nombre", "", "nombre para mostrar")
	f.StringVar(&nuevoUsuario.Password, "password", "", "contraseña (mínimo 6)")
	f.StringVar(&nuevoUsuario.Pin, "pin", "", "PIN de 4 dígitos")
	f.StringVar(&nuevoUsuario.Role, "role", "caja", "admin | cocina | caja")
	_ = usuariosCrearCmd.MarkFlagRequired("usuario")
	_ = usuariosCrearCmd.MarkFlagRequired("password")
	_ = usuariosCrearCmd.MarkFlagRequired("pin")
}
