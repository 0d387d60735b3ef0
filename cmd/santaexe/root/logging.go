package root

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/DaanHessen/santa-exe/internal/util"
)

// logging writes structured logs to a file; the TUI owns the terminal.
type logging struct {
	Logger  *slog.Logger
	Session string
	file    io.Closer
}

func defaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "get home dir")
	}
	return filepath.Join(home, ".santaexe.log"), nil
}

func newLogging(cfg util.Config) (*logging, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, errors.Wrapf(err, "SANTAEXE_LOG_LEVEL %q", cfg.LogLevel)
	}
	path := cfg.LogFile
	if path == "" {
		p, err := defaultLogPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create log dir")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	session := uuid.NewString()
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(slog.String("session", session))
	return &logging{Logger: logger, Session: session, file: f}, nil
}

func (l *logging) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}
