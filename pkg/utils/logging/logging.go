package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
)

type ctxLoggerKey struct{}

var (
	defaultLogger *slog.Logger
	loggerMutex   sync.RWMutex
)

func init() {
	defaultLogger = newConsoleLogger(os.Stderr, slog.LevelInfo, false)
}

// Default returns the process-wide logger
func Default() *slog.Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger
func SetDefault(logger *slog.Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	defaultLogger = logger
}

// With returns a context carrying the given logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger carried by the context, or the default logger
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return Default()
}

// Format is the log output format
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Options configures logger construction
type Options struct {
	Level  slog.Level
	Format Format

	// RedactAmounts masks monetary fields (revenue, penalty, amount) in
	// log output. Calculations are unaffected.
	RedactAmounts bool
}

// New builds a logger writing to w according to the options
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	switch opts.Format {
	case FormatConsole, "":
		return newConsoleLogger(w, opts.Level, opts.RedactAmounts), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       opts.Level,
			ReplaceAttr: replaceAttr(opts.RedactAmounts),
		})), nil
	default:
		return nil, goerr.New("unknown log format", goerr.V("format", opts.Format))
	}
}

func newConsoleLogger(w io.Writer, level slog.Level, redact bool) *slog.Logger {
	handler := clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithSource(false),
		clog.WithReplaceAttr(replaceAttr(redact)),
	)
	return slog.New(handler)
}

func replaceAttr(redact bool) func(groups []string, a slog.Attr) slog.Attr {
	if !redact {
		return nil
	}
	return masq.New(
		masq.WithFieldName("revenue"),
		masq.WithFieldName("amount"),
		masq.WithFieldName("penalty"),
		masq.WithFieldPrefix("total_"),
	)
}
