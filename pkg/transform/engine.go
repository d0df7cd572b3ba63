package transform

import (
	"log/slog"

	"github.com/frubino/gff-utils/internal/logging"
)

// Engine applies transformations to annotations.
type Engine struct {
	logger *slog.Logger
	onWarn func(error)
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the logger used for recoverable problems (rejected writes).
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithWarningHook registers a function called for every rejected write.
func WithWarningHook(fn func(error)) Option {
	return func(e *Engine) {
		e.onWarn = fn
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) warn(msg string, err error, args ...any) {
	e.logger.Warn(msg, append(args, "err", err)...)
	if e.onWarn != nil {
		e.onWarn(err)
	}
}
