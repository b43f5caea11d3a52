// Package logger configures structured logging for flow-common consumers and
// hands out context-aware slog loggers. Loggers are enriched with the
// configured subsystem, the host name, and any key-value pairs carried by the
// context via With.
package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.uber.org/atomic"

	"github.com/flowlabs/flow-common/lazy"
)

// subsystem names the part of the system producing logs. Thread-safe because
// configuration and logging can race.
var subsystem = atomic.NewString("") //nolint:gochecknoglobals

// configMutex serializes calls to ConfigureLoggingWithOptions, which mutate
// process-global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// contextKey is an unexported type for context keys, avoiding collisions with
// other packages that use string keys.
type contextKey string

// Options is used to configure logging.
type Options struct {
	// Subsystem names the library or service producing logs.
	Subsystem string

	// JSON selects JSON output instead of text.
	JSON bool

	// MinLevel is the minimum level that will be emitted.
	MinLevel slog.Level

	// LegacyLevel is the level assigned to writes that arrive through the
	// old log package, which has no levels of its own.
	LegacyLevel slog.Level

	// Output is the destination writer. Defaults to os.Stdout.
	Output io.Writer

	// OTelBridge routes records through the OpenTelemetry slog bridge
	// instead of writing them directly. The global logger provider decides
	// where they end up.
	OTelBridge bool
}

// ConfigureLoggingWithOptions configures process-wide logging and returns the
// default logger. It is thread-safe; concurrent calls are serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler

	switch {
	case opts.OTelBridge:
		handler = otelslog.NewHandler(opts.Subsystem)
	case opts.JSON:
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	default:
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	// Redirect the old log package as well, since third-party packages may
	// still write through it.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// WithMuted adds a muted flag to the context. When muted is true, loggers
// obtained from this context suppress all output. Useful for high-frequency
// paths such as health checks.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	val, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && val
}

// WithSubsystem overrides the subsystem name for loggers obtained from the
// returned context. The default comes from ConfigureLoggingWithOptions.
func WithSubsystem(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), name)
}

// GetSubsystem returns the subsystem for the given context, falling back to
// the configured default.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if val, ok := ctx.Value(contextKey("subsystem")).(string); ok {
		return val
	}

	return subsystem.Load()
}

// hostname holds, in a k8s deployment, the pod name. For local development it
// is the machine name.
// nolint:gochecknoglobals
var hostname = lazy.New(func() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}

	return h
})

// GetPodName returns the pod name (or hostname when not running in k8s).
func GetPodName() string {
	return hostname.Get()
}

// With returns a new context carrying the given key-value pairs. Loggers
// obtained from the returned context include them automatically.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		return ctx
	}

	vals := append(getValues(ctx), values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if vals, ok := ctx.Value(contextKey("loggerValues")).([]any); ok {
		return vals
	}

	return nil
}

// nullHandler discards all log output. It backs the muted logging feature.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger for the given context. The logger carries the
// subsystem, the pod name, and any values added through With. A nil or
// omitted context falls back to sane defaults.
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := getRealContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default().With(
		"subsystem", GetSubsystem(realCtx),
		"pod", hostname.Get())

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}

// getRealContext extracts the first non-nil context from a variadic list,
// defaulting to context.Background().
func getRealContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}
