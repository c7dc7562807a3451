package logger

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// Logger is the logging surface used across the application.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// WithComponent returns a Logger that tags every record with the
	// given component name.
	WithComponent(name string) Logger
}

type Opts struct {
	Env       string
	SentryDSN string
}

type Impl struct {
	slog *slog.Logger
}

var _ Logger = (*Impl)(nil)

// New builds the application logger: zerolog console output, fanned out to
// Sentry when a DSN is configured.
func New(opts Opts) *Impl {
	level := slog.LevelDebug
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if opts.Env == "production" {
		level = slog.LevelInfo
		zl = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	if opts.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Env,
		}); err != nil {
			zl.Warn().Err(err).Msg("sentry init failed, continuing without it")
		} else {
			handlers = append(handlers,
				slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	return &Impl{slog: slog.New(slogmulti.Fanout(handlers...))}
}

func (l *Impl) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Impl) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Impl) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Impl) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

func (l *Impl) WithComponent(name string) Logger {
	return &Impl{slog: l.slog.With("component", name)}
}

// Printf satisfies fx.Printer so the fx event log goes through us.
func (l *Impl) Printf(format string, args ...any) {
	l.slog.Debug(fmt.Sprintf(format, args...))
}
