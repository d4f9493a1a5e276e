package utils

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// InitLogger installs the process-wide JSON slog handler.
func InitLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func LogInfo(ctx context.Context, msg string, attrs ...any) {
	slog.Default().InfoContext(ctx, msg, attrs...)
}

func LogWarn(ctx context.Context, msg string, attrs ...any) {
	slog.Default().WarnContext(ctx, msg, attrs...)
}

func LogError(ctx context.Context, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.Any("error", err))
	slog.Default().ErrorContext(ctx, msg, attrs...)
}
