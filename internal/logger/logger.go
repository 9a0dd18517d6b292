package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

type Logger struct {
	l *slog.Logger
}

func New(l *slog.Logger) *Logger {
	return &Logger{l: l}
}

// NewForEnv writes colored text in dev and local environments and JSON
// everywhere else.
func NewForEnv(w io.Writer, env, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if env == "dev" || env == "local" {
		return New(slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.RFC3339,
		}))), nil
	}

	return New(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))), nil
}

func ParseLevel(level string) (slog.Level, error) {
	var lvl slog.Level

	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", level, err)
	}

	return lvl, nil
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) LogDebug(format string, v ...any) {
	if !l.l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	l.l.Debug(fmt.Sprintf(format, v...))
}

func (l *Logger) Slog() *slog.Logger {
	return l.l
}

// Std adapts the logger for consumers that need a *log.Logger, such as
// http.Server.ErrorLog.
func (l *Logger) Std() *log.Logger {
	return slog.NewLogLogger(l.l.Handler(), slog.LevelError)
}
