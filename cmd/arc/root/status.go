package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"arcadia/internal/catalog"
	"arcadia/internal/engine"
	"arcadia/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your profile, shards, equipment, and unlocks",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(p.Avatar, p.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.Level))
			if p.Level >= engine.LevelCap {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("EXP", ui.Gold.Render("MAX")))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("EXP", fmt.Sprintf("%d / %d", p.Exp, p.ExpToNext)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Shards", ui.Shards(p.Shards)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Arcade keys", fmt.Sprintf("%s %d", ui.IconKey, p.ArcadeKeys)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconBag+" Equipment"))
			for _, slot := range catalog.Slots {
				id := p.Equipped[string(slot)]
				if id == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render(string(slot)+":"), ui.Muted.Render("(empty)"))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render(string(slot)+":"), catalog.Name(id))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconWheel+" Prize Wheel"))
			if rem := svc.WheelRemaining(p); rem > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "- next spin in %s\n", ui.Warn.Render(formatCountdown(rem)))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "- "+ui.Good.Render("ready to spin"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconArcade+" Arcade"))
			for _, g := range engine.Games() {
				state := ui.LockState(engine.Locked(p, g))
				cleared := ""
				if p.HasCleared(g.ID) {
					cleared = " " + ui.IconTrophy
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s%s\n", ui.Key.Render(g.Title), ui.Muted.Render(fmt.Sprintf("(%d %s)", g.RequiredKeys, ui.IconKey)), state, cleared)
			}

			return nil
		},
	}
	return cmd
}

func formatCountdown(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
