package root

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"arcadia/internal/catalog"
	"arcadia/internal/ui"
)

func newInventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv", "bag"},
		Short:   "List owned items",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBag, "Inventory"))
			if len(p.Inventory) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(empty)"))
				return nil
			}

			equipped := make(map[string]catalog.Slot)
			for slot, id := range p.Equipped {
				equipped[id] = catalog.Slot(slot)
			}

			ids := make([]string, 0, len(p.Inventory))
			for id := range p.Inventory {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			for _, id := range ids {
				mark := ""
				if slot, ok := equipped[id]; ok {
					mark = " " + ui.Good.Render(fmt.Sprintf("[equipped: %s]", slot))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s x%d %s%s\n", ui.Key.Render(catalog.Name(id)), p.Inventory[id], ui.Muted.Render(id), mark)
			}
			return nil
		},
	}
}
