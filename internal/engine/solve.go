package engine

import (
	"context"
	"log/slog"
)

// Saver persists a complete progress record before returning.
type Saver interface {
	Save(ctx context.Context, p Progress) error
}

// SolveHandler is the only path by which a solved puzzle reaches durable state.
type SolveHandler struct {
	saver Saver
	log   *slog.Logger
}

func NewSolveHandler(saver Saver, log *slog.Logger) *SolveHandler {
	if log == nil {
		log = slog.Default()
	}
	return &SolveHandler{saver: saver, log: log}
}

// OnSolved marks day completed and persists the result. On a *PersistError the
// returned record is still the updated one; any other error leaves p unchanged.
func (h *SolveHandler) OnSolved(ctx context.Context, p Progress, day int) (Progress, error) {
	next, err := p.MarkCompleted(day)
	if err != nil {
		return p, err
	}
	h.log.Info("day solved", slog.Int("day", day), slog.Int("current_day", next.CurrentDay), slog.Int("pills", next.Pills()))
	return next, h.persist(ctx, next)
}

func (h *SolveHandler) persist(ctx context.Context, p Progress) error {
	if h.saver == nil {
		return nil
	}
	if err := h.saver.Save(ctx, p); err != nil {
		h.log.Warn("progress not saved, keeping it in memory", slog.Any("error", err))
		return &PersistError{Err: err}
	}
	return nil
}
