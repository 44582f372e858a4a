package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"arcadia/internal/ui"
)

// grant is the external-collaborator surface: companion apps and game
// sessions report their rewards here instead of editing the database.
func newGrantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Grant rewards (keys, shards, exp) from outside sources",
	}
	cmd.AddCommand(newGrantKeysCmd(), newGrantShardsCmd(), newGrantExpCmd())
	return cmd
}

func parseAmount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("amount must be a positive integer, got %q", arg)
	}
	return n, nil
}

func newGrantKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <n>",
		Short: "Grant arcade keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			total, err := svc.GrantArcadeKeys(ctx, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s +%d keys (now %d)\n", ui.IconKey, n, total)
			return nil
		},
	}
}

func newGrantShardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shards <n>",
		Short: "Grant Memory Shards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			total, err := svc.AddShards(ctx, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s +%d MS (now %s)\n", ui.IconShard, n, ui.Shards(total))
			return nil
		},
	}
}

func newGrantExpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exp <n>",
		Short: "Grant experience",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.AddExp(ctx, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s +%d EXP (level %d, %d/%d)\n", ui.IconSparkle, res.Granted, res.LevelAfter, res.Exp, res.ExpToNext)
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d → %d\n", ui.IconSparkle, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}
}
