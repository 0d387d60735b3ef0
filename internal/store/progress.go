package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/DaanHessen/santa-exe/internal/engine"
)

// SaveKey is versioned; bumping it abandons old saves instead of misreading them.
const SaveKey = "SANTA_EXE_SAVE_DATA_V2"

// ProgressStore loads and saves the single progress record.
type ProgressStore struct {
	kv  KV
	key string
	log *slog.Logger
}

func NewProgressStore(kv KV, log *slog.Logger) *ProgressStore {
	if log == nil {
		log = slog.Default()
	}
	return &ProgressStore{kv: kv, key: SaveKey, log: log}
}

// Load never fails: a missing, unreadable or malformed save starts a new game.
func (s *ProgressStore) Load(ctx context.Context) engine.Progress {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("save unreadable, starting a new game", slog.Any("error", err))
		return engine.NewProgress()
	}
	if !ok {
		return engine.NewProgress()
	}
	p, err := decode(raw)
	if err != nil {
		s.log.Warn("save malformed, starting a new game", slog.Any("error", err))
		return engine.NewProgress()
	}
	return p
}

// Save writes the full record before returning.
func (s *ProgressStore) Save(ctx context.Context, p engine.Progress) error {
	b, err := encode(p)
	if err != nil {
		return wrap(err, "encode progress")
	}
	return s.kv.Put(ctx, s.key, b)
}

// Reset deletes the save.
func (s *ProgressStore) Reset(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}

func encode(p engine.Progress) ([]byte, error) {
	if p.CompletedDays == nil {
		p.CompletedDays = []int{}
	}
	return json.Marshal(p)
}

func decode(raw []byte) (engine.Progress, error) {
	var p engine.Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		return engine.Progress{}, err
	}
	return p.Normalize()
}
