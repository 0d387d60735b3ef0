package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/santa-exe/internal/engine"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the saved progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			progress, cleanup, err := openProgress(ctx, state.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			p := progress.Load(ctx)
			maxDay := gate(state.cfg).MaxUnlockedDay()
			out := cmd.OutOrStdout()
			if p.Character != nil {
				fmt.Fprintf(out, "Charakter: %s\n", p.Character.DisplayName)
			} else {
				fmt.Fprintln(out, "Charakter: (noch nicht gewählt)")
			}
			fmt.Fprintf(out, "Pillen:    %d / %d\n", p.Pills(), engine.LastDay)
			fmt.Fprintf(out, "Aktuell:   Tag %d\n", p.CurrentDay)
			fmt.Fprintf(out, "Offen bis: Tag %d\n", maxDay)
			fmt.Fprintln(out, calendarLine(p, maxDay))
			return nil
		},
	}
}

// calendarLine renders one glyph per day: ✓ done, · open, x locked.
func calendarLine(p engine.Progress, maxDay int) string {
	var b strings.Builder
	for d := engine.FirstDay; d <= engine.LastDay; d++ {
		switch {
		case p.IsCompleted(d):
			b.WriteString("✓")
		case d <= maxDay:
			b.WriteString("·")
		default:
			b.WriteString("x")
		}
	}
	return b.String()
}
