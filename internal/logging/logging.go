package logging

import (
	"io"
	"log/slog"

	"github.com/MatusOllah/slogcolor"
)

// Setup installs a colored slog handler as the process default.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	opts := *slogcolor.DefaultOptions
	opts.Level = level

	logger := slog.New(slogcolor.NewHandler(w, &opts))
	slog.SetDefault(logger)
	return logger
}
