package glkit

import (
	"log/slog"
	"os"
)

// logLevel controls the package log level.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// logger is shared by every wrapper in the package.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging for GL object lifecycles.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}
