// Command tienda opera la sesión de la tienda desde la terminal: carrito, sesión,
// catálogo, pedidos y backoffice, con los mismos slots persistentes que el servidor local.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/muebleria-iris/tienda/internal/application/auth"
	"github.com/muebleria-iris/tienda/internal/bootstrap"
	"github.com/muebleria-iris/tienda/pkg/config"
	"github.com/muebleria-iris/tienda/pkg/logger"
)

// version se fija al compilar con -ldflags "-X main.version=x.y.z".
var version = "dev"

// Códigos de salida.
const (
	exitFallo   = 1
	exitAuth    = 2
	exitEntorno = 3
)

// exitErr lleva el código de salida por la ruta de error de cobra.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// cli estado compartido por los subcomandos de una invocación.
type cli struct {
	out    io.Writer
	errOut io.Writer
	json   bool

	// build arma la tienda; los tests inyectan una ya construida en tienda.
	build  func(ctx context.Context, nav auth.Navigator) (*bootstrap.Tienda, error)
	tienda *bootstrap.Tienda
	owned  bool
}

func newCLI() *cli {
	return &cli{
		out:    os.Stdout,
		errOut: os.Stderr,
		build: func(ctx context.Context, nav auth.Navigator) (*bootstrap.Tienda, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
			return bootstrap.New(ctx, cfg, log, nav)
		},
	}
}

func (c *cli) navigator() auth.Navigator {
	return auth.NavigatorFunc(func(path string) {
		fmt.Fprintf(c.errOut, "→ %s\n", path)
	})
}

// open arma la tienda en el primer uso de la invocación.
func (c *cli) open(ctx context.Context) error {
	if c.tienda != nil {
		return nil
	}
	t, err := c.build(ctx, c.navigator())
	if err != nil {
		return codeError(exitEntorno, "inicializar tienda: %s", err)
	}
	c.tienda, c.owned = t, true
	return nil
}

// session verifica el token restaurado, como al cargar la página, antes de usar la sesión.
func (c *cli) session(ctx context.Context) {
	c.tienda.Start(ctx)
}

func (c *cli) close() error {
	if c.tienda == nil || !c.owned {
		return nil
	}
	err := c.tienda.Close()
	c.tienda = nil
	return err
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "tienda",
		Short:         "Cliente de terminal de la tienda Mueblería Iris",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.open(cmd.Context())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.close()
		},
	}
	root.PersistentFlags().BoolVar(&c.json, "json", false, "Salida en JSON")
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.AddCommand(
		newCarritoCmd(c),
		newSesionCmd(c),
		newCatalogoCmd(c),
		newPedidoCmd(c),
		newAdminCmd(c),
	)
	return root
}

func main() {
	c := newCLI()
	root := newRootCmd(c)
	err := root.ExecuteContext(context.Background())
	if cerr := c.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitFallo)
	}
}
