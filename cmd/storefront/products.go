package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/potterstore/storefront/internal/catalog"
	"github.com/potterstore/storefront/internal/checkout"
)

func newProductsCmd(opts *rootOptions) *cobra.Command {
	var (
		q      catalog.Query
		output string
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered by category and search text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if q.Category != "" && !catalog.IsCategory(q.Category) {
				return fmt.Errorf("unknown category %q (one of %v)", q.Category, catalog.Categories)
			}
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			products := c.SearchProducts(q)

			out := cmd.OutOrStdout()
			switch output {
			case "yaml":
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(products)
			case "table":
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tAVAILABLE")
				for _, p := range products {
					fmt.Fprintf(tw, "%s\t%s\t%s\tRs %s\t%t\n", p.ID, p.Name, p.Category, checkout.FormatAmount(p.Price), p.IsAvailable)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown output %q (table or yaml)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&q.Category, "category", "c", "", "exact product category")
	cmd.Flags().StringVarP(&q.Search, "query", "q", "", "case-insensitive text to find in name, description or category")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "table or yaml")
	return cmd
}
