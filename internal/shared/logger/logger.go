package logger

import (
	"log/slog"
	"os"

	"fieldgen-server/internal/shared/config"
)

func Init() {
	if config.GlobalConfig == nil {
		panic("config must be initialized before logger")
	}

	logConfig := config.GlobalConfig.Logging
	var handler slog.Handler

	level := parseLogLevel(logConfig.Level)

	if useJSON(logConfig) {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	
	slog.SetDefault(slog.New(handler))
	
	logger := slog.With("component", "logger")
	logger.Debug("Logger initialized",
		"level", logConfig.Level,
		"json_format", useJSON(logConfig),
		"environment", config.GlobalConfig.Server.Environment,
	)
}

// useJSON decides the handler format: LOG_FORMAT wins when set, otherwise
// production runs log JSON and everything else stays human-readable.
func useJSON(logConfig config.LoggingConfig) bool {
	switch logConfig.Format {
	case "json":
		return true
	case "text":
		return false
	}
	return logConfig.JSONFormat
}

func parseLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
