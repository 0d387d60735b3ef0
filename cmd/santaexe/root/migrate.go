package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/santa-exe/internal/store"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or roll back the save schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			migrator, err := store.MigratorFor(storeOptions(state.cfg))
			if err != nil {
				return err
			}
			switch args[0] {
			case "up":
				if err := migrator.Up(ctx); err != nil && err != store.ErrNoChange {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			case "down":
				if err := migrator.Down(ctx); err != nil && err != store.ErrNoChange {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations rolled back")
			}
			return nil
		},
	}
}
