package linkedlist

import (
	"log/slog"
	"os"
)

// LogLevelEnvVar names the environment variable read by ConfigureLogging.
const LogLevelEnvVar = "LINKEDLIST_LOG_LEVEL"

var logLevel = new(slog.LevelVar)

// ConfigureLogging installs a TextHandler on stdout as the default slog logger.
// The level comes from LINKEDLIST_LOG_LEVEL (DEBUG, WARN or ERROR) and defaults to Info.
func ConfigureLogging() {
	logLevel.Set(levelFromEnv(os.Getenv(LogLevelEnvVar)))

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// SetLogLevel sets the logging level for the logger configured by ConfigureLogging.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

func levelFromEnv(lvl string) slog.Level {
	switch lvl {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}
