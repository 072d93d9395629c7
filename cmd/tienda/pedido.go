package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/domain"
	"github.com/muebleria-iris/tienda/pkg/money"
)

func newPedidoCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pedido",
		Short: "Confirmar la compra del carrito",
	}

	var in dto.CheckoutRequest
	confirmar := &cobra.Command{
		Use:   "confirmar",
		Short: "Enviar el carrito como pedido",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.session(cmd.Context())
			p, err := c.tienda.Checkout.Confirmar(cmd.Context(), in)
			switch {
			case errors.Is(err, domain.ErrSinSesion), errors.Is(err, domain.ErrUnauthorized):
				return codeError(exitAuth, "%s", err)
			case err != nil:
				return err
			}
			if c.json {
				return c.printJSON(dto.CheckoutResponse{Success: true, Pedido: p})
			}
			_, err = fmt.Fprintf(c.out, "Pedido #%d (%s) por %s\n", p.ID, p.Estado, money.FormatFloat(p.Total))
			return err
		},
	}
	f := confirmar.Flags()
	f.StringVar(&in.Direccion, "direccion", "", "Dirección de despacho")
	f.StringVar(&in.Comuna, "comuna", "", "Comuna")
	f.StringVar(&in.Telefono, "telefono", "", "Teléfono de contacto")
	f.StringVar(&in.Notas, "notas", "", "Notas para el despacho")

	cmd.AddCommand(confirmar)
	return cmd
}
