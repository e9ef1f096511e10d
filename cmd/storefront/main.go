// Command storefront works with the Potter catalog from the terminal: it
// filters products and renders the order message and chat link for a cart.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/potterstore/storefront/internal/catalog"
	"github.com/potterstore/storefront/internal/logging"
)

type rootOptions struct {
	verbose     bool
	catalogPath string
	logger      *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the Potter catalog and compose order messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			var err error
			opts.logger, err = logging.New(level)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", os.Getenv("CATALOG_PATH"), "catalog YAML file (embedded catalog when empty)")

	root.AddCommand(newProductsCmd(opts), newMessageCmd(opts))
	return root
}

func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	c, err := catalog.Load(o.catalogPath)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("catalog loaded",
		zap.String("path", o.catalogPath),
		zap.Int("books", len(c.Books())),
		zap.Int("products", len(c.Products())))
	return c, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
