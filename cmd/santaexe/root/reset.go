package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset deletes all progress; pass --yes to confirm")
			}
			ctx := context.Background()
			progress, cleanup, err := openProgress(ctx, state.cfg)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := progress.Reset(ctx); err != nil {
				return err
			}
			state.logs.Logger.Info("progress reset")
			fmt.Fprintln(cmd.OutOrStdout(), "Fortschritt gelöscht.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting the save")
	return cmd
}
