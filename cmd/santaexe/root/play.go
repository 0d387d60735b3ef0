package root

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/santa-exe/internal/engine"
	"github.com/DaanHessen/santa-exe/internal/registry"
	"github.com/DaanHessen/santa-exe/internal/text"
	"github.com/DaanHessen/santa-exe/internal/ui"
)

const renderCacheSize = 128

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the calendar (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd)
		},
	}
}

func runPlay(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cfg, log := state.cfg, state.logs.Logger

	reg, err := registry.Load()
	if err != nil {
		log.Error("content invalid", "err", err)
		return err
	}
	progress, cleanup, err := openProgress(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	renderer, err := text.NewRenderer("dark", renderCacheSize)
	if err != nil {
		return err
	}
	seed, err := engine.NewSeed(state.logs.Session)
	if err != nil {
		return err
	}
	g := gate(cfg)
	ctrl := engine.NewController(engine.Options{
		Gate:     g,
		Progress: progress.Load(ctx),
		Saver:    progress,
		Logger:   log,
	})
	log.Info("calendar opened", "max_unlocked_day", ctrl.MaxUnlockedDay(), "unlock_all", g.UnlockAll)
	return ui.Run(ctx, ui.Deps{
		Controller: ctrl,
		Registry:   reg,
		Renderer:   renderer,
		Seed:       seed,
		Theme:      cfg.Theme,
		Logger:     log,
	})
}
