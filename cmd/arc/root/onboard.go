package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"arcadia/internal/ui"
)

func newInitCmd() *cobra.Command {
	var avatar string

	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create your profile (one-time onboarding)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Create(ctx, args[0], avatar)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Welcome to Arcadia!"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", p.Avatar, ui.Key.Render(p.Name), ui.Muted.Render("(level 1)"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Try 'arc status', 'arc shop', or 'arc board'."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&avatar, "avatar", "a", "", "avatar glyph, e.g. 🐮")
	return cmd
}
