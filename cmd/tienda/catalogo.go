package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/pkg/money"
)

func newCatalogoCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogo",
		Short: "Consultar productos y agregarlos al carrito",
	}

	var filtro dto.ProductoFiltro
	listar := &cobra.Command{
		Use:   "listar",
		Short: "Listar productos activos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := c.tienda.Catalog.Productos(cmd.Context(), filtro)
			if err != nil {
				return err
			}
			if c.json {
				return c.printJSON(items)
			}
			tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tPRODUCTO\tPRECIO\tSTOCK")
			for _, p := range items {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", p.ID, p.Nombre, money.FormatFloat(p.Precio), p.Stock)
			}
			return tw.Flush()
		},
	}
	lf := listar.Flags()
	lf.IntVar(&filtro.CategoriaID, "categoria", 0, "ID de categoría")
	lf.StringVar(&filtro.Busqueda, "q", "", "Búsqueda")
	lf.IntVar(&filtro.Limit, "limit", 20, "Límite")
	lf.IntVar(&filtro.Offset, "offset", 0, "Offset")

	var color string
	var cantidad int
	agregar := &cobra.Command{
		Use:   "agregar <id>",
		Short: "Agregar un producto del catálogo al carrito con su precio vigente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := c.tienda.Catalog.AgregarAlCarrito(cmd.Context(), id, color, cantidad); err != nil {
				return err
			}
			return c.printCart(c.tienda.Cart.Snapshot(), c.tienda.Panel.IsOpen())
		},
	}
	agregar.Flags().StringVar(&color, "color", "", "Color de la variante")
	agregar.Flags().IntVar(&cantidad, "cantidad", 1, "Unidades")

	categorias := &cobra.Command{
		Use:   "categorias",
		Short: "Listar categorías",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.tienda.Catalog.Categorias(cmd.Context())
			if err != nil {
				return err
			}
			if c.json {
				return c.printJSON(out)
			}
			for _, cat := range out {
				fmt.Fprintf(c.out, "%d\t%s\n", cat.ID, cat.Nombre)
			}
			return nil
		},
	}

	cmd.AddCommand(listar, agregar, categorias)
	return cmd
}
