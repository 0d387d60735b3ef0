package root

import (
	"context"
	"time"

	"github.com/DaanHessen/santa-exe/internal/engine"
	"github.com/DaanHessen/santa-exe/internal/store"
	"github.com/DaanHessen/santa-exe/internal/util"
)

func storeOptions(cfg util.Config) store.Options {
	return store.Options{
		Backend: cfg.Store,
		DSN:     cfg.DSN,
		Path:    cfg.DBPath,
		Logger:  state.logs.Logger,
	}
}

func openProgress(ctx context.Context, cfg util.Config) (*store.ProgressStore, func(), error) {
	kv, err := store.Open(ctx, storeOptions(cfg))
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = kv.Close()
	}
	return store.NewProgressStore(kv, state.logs.Logger), cleanup, nil
}

// gate builds the date gate. SANTAEXE_TODAY pins the clock for testing a
// specific day outside December.
func gate(cfg util.Config) engine.Gate {
	var clock engine.Clock = engine.SystemClock{}
	if today, _ := cfg.FixedDate(); !today.IsZero() {
		clock = engine.FixedClock(today)
	}
	return engine.Gate{
		Clock:       clock,
		TargetMonth: time.Month(cfg.TargetMonth),
		UnlockAll:   cfg.UnlockAll,
	}
}
