package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"arcadia/internal/engine"
	"arcadia/internal/ui"
)

func newArcadeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arcade",
		Short: "Arcade: list games and their key gates",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconArcade, "Arcade"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Keys", fmt.Sprintf("%s %d", ui.IconKey, p.ArcadeKeys)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			for _, g := range engine.Games() {
				state := ui.LockState(engine.Locked(p, g))
				cleared := ""
				if p.HasCleared(g.ID) {
					cleared = " " + ui.IconTrophy + ui.Muted.Render(" cleared")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render(g.Title), ui.Muted.Render(g.Subtitle))
				fmt.Fprintf(cmd.OutOrStdout(), "  %s needs %d %s %s%s\n", ui.Muted.Render(g.ID), g.RequiredKeys, ui.IconKey, state, cleared)
			}
			return nil
		},
	}

	cmd.AddCommand(newArcadeClearCmd())
	return cmd
}

func newArcadeClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <game-id>",
		Short: "Record a completed game and collect the reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ClearGame(ctx, args[0])
			var locked engine.ArcadeLockedError
			switch {
			case errors.Is(err, engine.ErrUnknownGame):
				return fmt.Errorf("unknown game %q (see 'arc arcade')", args[0])
			case errors.As(err, &locked):
				return fmt.Errorf("%s is locked: needs %d keys, you hold %d", locked.GameID, locked.RequiredKeys, locked.HeldKeys)
			case err != nil:
				return err
			}

			if res.FirstClear {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s First clear of %s!\n", ui.IconTrophy, ui.Gold.Render("NICE!"), ui.Key.Render(res.Game.Title))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Cleared %s again.\n", ui.IconArcade, ui.Key.Render(res.Game.Title))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Reward", fmt.Sprintf("%s + %d EXP", ui.Shards(res.ShardsAwarded), res.ExpAwarded)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Shards(res.Shards)))
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s you are now level %d\n", ui.IconSparkle, ui.BadgeLevelUp, res.LevelAfter)
			}
			return nil
		},
	}
}
