package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/potterstore/storefront/internal/checkout"
	"github.com/potterstore/storefront/internal/validation"
)

func newMessageCmd(opts *rootOptions) *cobra.Command {
	var (
		cartPath string
		number   string
		base     string
	)
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Render the order message and chat link for a cart file",
		Long: `Reads a cart in the POST /checkout body format, prices it from the
catalog and prints the order message followed by the WhatsApp link.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(cartPath)
			if err != nil {
				return fmt.Errorf("read cart: %w", err)
			}
			var req validation.CheckoutRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("decode cart %s: %w", cartPath, err)
			}
			if err := validation.New().Struct(req); err != nil {
				return fmt.Errorf("invalid cart: %w", err)
			}

			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			books, products, err := checkout.Resolve(c, req.Books, req.Products)
			if err != nil {
				return err
			}
			summary := checkout.Summarize(books, products)
			msg := checkout.RenderMessage(summary, req.Customer)
			opts.logger.Debug("message composed",
				zap.Int("lines", len(summary.Lines())),
				zap.Float64("total", summary.Total))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, msg)
			fmt.Fprintln(out)
			fmt.Fprintln(out, checkout.DeepLink(base, number, msg))
			return nil
		},
	}
	cmd.Flags().StringVar(&cartPath, "cart", "", "cart JSON file")
	cmd.Flags().StringVar(&number, "number", os.Getenv("WHATSAPP_NUMBER"), "shop WhatsApp number")
	cmd.Flags().StringVar(&base, "base", checkout.DefaultLinkBase, "chat link base URL")
	_ = cmd.MarkFlagRequired("cart")
	return cmd
}
