package observability

import (
	"log/slog"
	"os"
)

// NewLogger returns a JSON logger in production and a text logger everywhere
// else. Handed down from main; nothing logs through a package-level default.
func NewLogger(env string) *slog.Logger {
	if env == "prod" || env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
