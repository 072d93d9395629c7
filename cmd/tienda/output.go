package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/muebleria-iris/tienda/internal/application/cart"
	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/pkg/money"
)

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printCart(snap cart.Snapshot, panelAbierto bool) error {
	if c.json {
		return c.printJSON(dto.CartResponse{
			Items:        snap.Items,
			Count:        snap.Count,
			Total:        snap.Total,
			PanelAbierto: panelAbierto,
			Version:      snap.Version,
		})
	}
	if len(snap.Items) == 0 {
		_, err := fmt.Fprintln(c.out, "Carrito vacío")
		return err
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCTO\tCOLOR\tCANT.\tPRECIO\tSUBTOTAL")
	for _, it := range snap.Items {
		color := it.Color
		if color == "" {
			color = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			it.ID, it.Nombre, color, it.Cantidad, money.FormatFloat(it.Precio), money.Format(it.Subtotal()))
	}
	fmt.Fprintf(tw, "\t\t\t%d\t\t%s\n", snap.Count, money.Format(snap.Total))
	return tw.Flush()
}
