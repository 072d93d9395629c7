package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/muebleria-iris/tienda/internal/domain"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

func newCarritoCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carrito",
		Short: "Ver y modificar el carrito",
	}

	ver := &cobra.Command{
		Use:   "ver",
		Short: "Mostrar líneas, unidades y total",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return c.printCart(c.tienda.Cart.Snapshot(), c.tienda.Panel.IsOpen())
		},
	}

	var item entity.CartItem
	var cantidad int
	agregar := &cobra.Command{
		Use:   "agregar <id>",
		Short: "Agregar una línea (suma si ya existe la misma variante)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			item.ID = id
			if err := c.tienda.Cart.AddToCart(item, cantidad); err != nil {
				if errors.Is(err, domain.ErrCantidadInvalida) || errors.Is(err, domain.ErrInvalidInput) {
					return codeError(exitFallo, "%s", err)
				}
				return err
			}
			return c.printCart(c.tienda.Cart.Snapshot(), c.tienda.Panel.IsOpen())
		},
	}
	af := agregar.Flags()
	af.StringVar(&item.Nombre, "nombre", "", "Nombre del producto")
	af.Float64Var(&item.Precio, "precio", 0, "Precio unitario")
	af.StringVar(&item.Color, "color", "", "Color de la variante")
	af.StringVar(&item.Imagen, "imagen", "", "URL de la imagen")
	af.IntVar(&cantidad, "cantidad", 1, "Unidades a agregar")
	_ = agregar.MarkFlagRequired("nombre")

	var quitarColor string
	quitar := &cobra.Command{
		Use:   "quitar <id>",
		Short: "Quitar la línea de un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c.tienda.Cart.RemoveFromCart(id, quitarColor)
			return c.printCart(c.tienda.Cart.Snapshot(), c.tienda.Panel.IsOpen())
		},
	}
	quitar.Flags().StringVar(&quitarColor, "color", "", "Color de la variante")

	var cantColor string
	cant := &cobra.Command{
		Use:   "cantidad <id> <n>",
		Short: "Fijar la cantidad de una línea (0 la elimina)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return codeError(exitFallo, "cantidad inválida: %q", args[1])
			}
			c.tienda.Cart.UpdateQuantity(id, n, cantColor)
			return c.printCart(c.tienda.Cart.Snapshot(), c.tienda.Panel.IsOpen())
		},
	}
	cant.Flags().StringVar(&cantColor, "color", "", "Color de la variante")

	vaciar := &cobra.Command{
		Use:   "vaciar",
		Short: "Vaciar el carrito",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			c.tienda.Cart.ClearCart()
			return c.printCart(c.tienda.Cart.Snapshot(), c.tienda.Panel.IsOpen())
		},
	}

	var out string
	cotizar := &cobra.Command{
		Use:   "cotizar",
		Short: "Generar la cotización del carrito en PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pdf, q, err := c.tienda.Quote.PDF(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrCarritoVacio) {
					return codeError(exitFallo, "%s", err)
				}
				return err
			}
			if out == "" {
				out = "cotizacion-" + q.Numero + ".pdf"
			}
			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			_, err = fmt.Fprintf(c.out, "Cotización %s guardada en %s\n", q.Numero, out)
			return err
		},
	}
	cotizar.Flags().StringVar(&out, "out", "", "Archivo de salida (por defecto cotizacion-<n>.pdf)")

	cmd.AddCommand(ver, agregar, quitar, cant, vaciar, cotizar)
	return cmd
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, codeError(exitFallo, "id inválido: %q", s)
	}
	return id, nil
}
