package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muebleria-iris/tienda/internal/domain"
)

func newAdminCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Backoffice: recursos de la API según el rol de la sesión",
	}

	recursos := &cobra.Command{
		Use:   "recursos",
		Short: "Listar los recursos visibles para el rol actual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.session(cmd.Context())
			vis := c.tienda.Backoffice.Visibles()
			if c.json {
				return c.printJSON(vis)
			}
			_, err := fmt.Fprintln(c.out, strings.Join(vis, "\n"))
			return err
		},
	}

	var filtros []string
	listar := &cobra.Command{
		Use:   "listar <recurso>",
		Short: "Listar registros de un recurso (clientes, pedidos, inventario, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.session(cmd.Context())
			q := url.Values{}
			for _, f := range filtros {
				k, v, ok := strings.Cut(f, "=")
				if !ok {
					return codeError(exitFallo, "filtro inválido %q, use clave=valor", f)
				}
				q.Add(k, v)
			}
			out, err := c.tienda.Backoffice.Listar(cmd.Context(), args[0], q)
			switch {
			case errors.Is(err, domain.ErrSinSesion), errors.Is(err, domain.ErrForbidden):
				return codeError(exitAuth, "%s", err)
			case err != nil:
				return err
			}
			return c.printJSON(out)
		},
	}
	listar.Flags().StringArrayVar(&filtros, "filtro", nil, "Filtro clave=valor (repetible)")

	cmd.AddCommand(recursos, listar)
	return cmd
}
