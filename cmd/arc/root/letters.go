package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"arcadia/internal/engine"
	"arcadia/internal/ui"
)

func newLettersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "Open-when letters for when you need them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			lock, err := svc.LetterLockStatus(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconLetter, "Open-When Letters"))
			for _, l := range engine.Letters() {
				state := ""
				if lock != nil && lock.AllowedID != l.ID {
					state = " " + ui.Bad.Render(ui.IconLock)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s%s\n", ui.Key.Render(l.Title), ui.Muted.Render("("+l.ID+")"), state)
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ui.Muted.Render(l.Hint))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")
			if lock != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(fmt.Sprintf("Only %q can be reopened for a moment. Take what it gives you.", lock.AllowedID)))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Open one with 'arc letters open <id>'. Opening locks the rest for a bit."))
			}
			return nil
		},
	}

	cmd.AddCommand(newLettersOpenCmd(), newLettersLogCmd())
	return cmd
}

func newLettersOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Open a letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.OpenLetter(ctx, args[0])
			var locked engine.LetterLockedError
			switch {
			case errors.Is(err, engine.ErrUnknownLetter):
				return fmt.Errorf("unknown letter %q (see 'arc letters')", args[0])
			case errors.As(err, &locked):
				return fmt.Errorf("letters are resting for %s; only %q is open right now", formatCountdown(locked.Remaining), locked.AllowedID)
			case err != nil:
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconLetter, res.Letter.Title))
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("The other letters will rest for a moment."))
			return nil
		},
	}
}

func newLettersLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show previously opened letters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			opened, err := svc.OpenedLetters(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconLetter, "Letter Journal"))
			if len(opened) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none opened yet)"))
				return nil
			}
			for _, o := range opened {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render(o.LetterID), ui.Muted.Render(o.OpenedAt.Local().Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
}
