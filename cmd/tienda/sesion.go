package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muebleria-iris/tienda/internal/application/dto"
)

// passwordEnv permite no pasar la contraseña por argumentos.
const passwordEnv = "TIENDA_PASSWORD"

func newSesionCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sesion",
		Short: "Iniciar, verificar y cerrar la sesión",
	}

	estado := &cobra.Command{
		Use:   "estado",
		Short: "Mostrar la sesión actual (verifica el token restaurado)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.session(cmd.Context())
			s := c.tienda.Auth.Session()
			if c.json {
				return c.printJSON(s)
			}
			if !s.IsAuthenticated {
				_, err := fmt.Fprintln(c.out, "Sin sesión")
				return err
			}
			_, err := fmt.Fprintf(c.out, "%s <%s> (%s)\n", s.User.NombreCompleto(), s.User.Email, s.User.Rol)
			return err
		},
	}

	var email, password string
	login := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}
			in := dto.LoginRequest{Email: email, Password: password}
			if err := dto.Validate(in); err != nil {
				return codeError(exitFallo, "%s", err)
			}
			return c.printAuthResult(c.tienda.Auth.Login(cmd.Context(), in.Email, in.Password))
		},
	}
	lf := login.Flags()
	lf.StringVar(&email, "email", "", "Email de la cuenta")
	lf.StringVar(&password, "password", "", "Contraseña (o "+passwordEnv+")")
	_ = login.MarkFlagRequired("email")

	var reg dto.RegisterRequest
	register := &cobra.Command{
		Use:   "register",
		Short: "Crear cuenta e iniciar sesión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if reg.Password == "" {
				reg.Password = os.Getenv(passwordEnv)
			}
			if err := dto.Validate(reg); err != nil {
				return codeError(exitFallo, "%s", err)
			}
			return c.printAuthResult(c.tienda.Auth.Register(cmd.Context(), reg))
		},
	}
	rf := register.Flags()
	rf.StringVar(&reg.Nombre, "nombre", "", "Nombre")
	rf.StringVar(&reg.Apellido, "apellido", "", "Apellido")
	rf.StringVar(&reg.Email, "email", "", "Email")
	rf.StringVar(&reg.Password, "password", "", "Contraseña (o "+passwordEnv+")")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			c.tienda.Auth.Logout()
			return nil
		},
	}

	verificar := &cobra.Command{
		Use:   "verificar",
		Short: "Verificar el token contra la API sin cerrar la sesión si falla",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printAuthResult(c.tienda.Auth.VerifyToken(cmd.Context()))
		},
	}

	check := &cobra.Command{
		Use:   "check",
		Short: "Revisar localmente si el token expiró (cierra la sesión si venció)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if !c.tienda.Auth.CheckAuth() {
				return codeError(exitAuth, "sesión no vigente")
			}
			_, err := fmt.Fprintln(c.out, "Sesión vigente")
			return err
		},
	}

	cmd.AddCommand(estado, login, register, logout, verificar, check)
	return cmd
}

func (c *cli) printAuthResult(res dto.AuthResult) error {
	if c.json {
		if err := c.printJSON(res); err != nil {
			return err
		}
	}
	if !res.Success {
		return codeError(exitAuth, "%s", res.Error)
	}
	if !c.json {
		if u := c.tienda.Auth.User(); u != nil {
			fmt.Fprintf(c.out, "Sesión iniciada: %s (%s)\n", u.Email, u.Rol)
		}
	}
	return nil
}
