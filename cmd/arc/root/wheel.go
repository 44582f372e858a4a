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

func newWheelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Prize wheel: show segments and cooldown",
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
			bal := svc.Balance()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconWheel, "Prize Wheel"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Spin cost", ui.Shards(bal.WheelSpinCost)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Reset cost", ui.Shards(bal.WheelResetCost)))
			if rem := svc.WheelRemaining(p); rem > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Next spin", ui.Warn.Render("in "+formatCountdown(rem))))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Next spin", ui.Good.Render("now")))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("Segments"))
			total := 0
			for _, seg := range engine.WheelSegments() {
				total += seg.Weight
			}
			for _, seg := range engine.WheelSegments() {
				pct := float64(seg.Weight) / float64(total) * 100
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render(seg.Label), ui.Muted.Render(fmt.Sprintf("(%.0f%%)", pct)))
			}
			return nil
		},
	}

	cmd.AddCommand(newWheelSpinCmd(), newWheelResetCmd())
	return cmd
}

func newWheelSpinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spin",
		Short: "Pay the spin cost and take a draw",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Spin(ctx)
			var cd engine.CooldownError
			switch {
			case errors.As(err, &cd):
				return fmt.Errorf("wheel is cooling down, try again in %s", formatCountdown(cd.Remaining))
			case errors.Is(err, engine.ErrInsufficientFunds):
				return fmt.Errorf("not enough shards to spin (costs %d MS)", svc.Balance().WheelSpinCost)
			case err != nil:
				return err
			}

			seg := res.Segment
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconWheel, "The wheel stops on..."))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(seg.Label))
			switch {
			case seg.Shards > 0:
				fmt.Fprintf(cmd.OutOrStdout(), "You win %s!\n", ui.Shards(seg.Shards))
			case seg.ItemID != "":
				fmt.Fprintf(cmd.OutOrStdout(), "You win %s!\n", ui.Key.Render(catalog.Name(seg.ItemID)))
			case seg.Message != "":
				fmt.Fprintln(cmd.OutOrStdout(), seg.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Shards(res.Shards)))
			return nil
		},
	}
}

func newWheelResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Pay the reset cost to clear the cooldown",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			shards, err := svc.ResetWheel(ctx)
			if errors.Is(err, engine.ErrInsufficientFunds) {
				return fmt.Errorf("not enough shards to reset (costs %d MS)", svc.Balance().WheelResetCost)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Cooldown cleared, the wheel is ready.\n", ui.IconWheel)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Shards(shards)))
			return nil
		},
	}
}
