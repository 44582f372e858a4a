package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"arcadia/internal/catalog"
	"arcadia/internal/engine"
	"arcadia/internal/ui"
)

func slotNames() string {
	names := make([]string, len(catalog.Slots))
	for i, s := range catalog.Slots {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func newEquipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equip <slot> <item-id>",
		Short: "Equip an owned item into a slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			slot := catalog.Slot(args[0])
			itemID := args[1]
			err = svc.Equip(ctx, slot, itemID)
			switch {
			case errors.Is(err, engine.ErrUnknownSlot):
				return fmt.Errorf("unknown slot %q (slots: %s)", args[0], slotNames())
			case errors.Is(err, engine.ErrNotOwned):
				return fmt.Errorf("you don't own %s", catalog.Name(itemID))
			case err != nil:
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Equipped %s into %s\n", ui.IconBag, ui.Key.Render(catalog.Name(itemID)), ui.Key.Render(string(slot)))
			return nil
		},
	}
}

func newUnequipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unequip <slot>",
		Short: "Clear a slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			slot := catalog.Slot(args[0])
			if err := svc.Unequip(ctx, slot); err != nil {
				if errors.Is(err, engine.ErrUnknownSlot) {
					return fmt.Errorf("unknown slot %q (slots: %s)", args[0], slotNames())
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Cleared %s\n", ui.IconBag, ui.Key.Render(string(slot)))
			return nil
		},
	}
}
