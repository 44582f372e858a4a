package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"arcadia/internal/catalog"
	"arcadia/internal/engine"
	"arcadia/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the shop catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Profile(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconShop, "Shop"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Shards(p.Shards)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			for _, g := range catalog.Groups() {
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(g.Category))
				for _, it := range g.Items {
					owned := ""
					if q := p.Qty(it.ID); q > 0 {
						owned = " " + ui.Good.Render(fmt.Sprintf("(owned x%d)", q))
					}
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s%s\n", ui.Key.Render(it.Name), ui.Shards(it.Price), ui.Muted.Render(it.ID), owned)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Buy with 'arc shop buy <item-id>'."))
			return nil
		},
	}

	cmd.AddCommand(newShopBuyCmd())
	return cmd
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy an item with Memory Shards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Purchase(ctx, args[0])
			if errors.Is(err, engine.ErrInsufficientFunds) {
				return fmt.Errorf("not enough shards for %s", catalog.Name(args[0]))
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Bought %s for %s\n", ui.IconShop, ui.Key.Render(res.Item.Name), ui.Shards(res.Item.Price))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Shards(res.Shards)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Owned", fmt.Sprintf("x%d", res.Qty)))
			return nil
		},
	}
}
