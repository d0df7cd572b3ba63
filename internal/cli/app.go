package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/frubino/gff-utils/internal/config"
	"github.com/frubino/gff-utils/internal/logging"
	"github.com/frubino/gff-utils/internal/metrics"
	"github.com/frubino/gff-utils/pkg/ports"
	"github.com/frubino/gff-utils/pkg/syntax"
)

// GlobalOptions holds the flags shared by every command.
type GlobalOptions struct {
	LogLevel    string
	ConfigPath  string
	MetricsFile string
	Format      string
}

// App carries what the commands share: configuration, logger, metrics and
// the standard streams.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Dialect syntax.Dialect
	Metrics *metrics.Collector
	UIDs    ports.UIDGenerator

	Stdin  io.Reader
	Stdout io.Writer

	metricsFile string
}

// NewApp loads the configuration and builds the App for command.
// Empty option values fall back to the config file, then to the defaults.
func NewApp(command string, opts GlobalOptions, stdin io.Reader, stdout, stderr io.Writer) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	levelName := opts.LogLevel
	if levelName == "" {
		levelName = cfg.LogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		format = cfg.Format
	}
	dialect, err := syntax.ParseDialect(format)
	if err != nil {
		return nil, err
	}

	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &App{
		Config:      cfg,
		Logger:      logging.NewWithWriter(stderr, level).With("command", command),
		Dialect:     dialect,
		Metrics:     metrics.New(command),
		UIDs:        ports.RandomUIDs{},
		Stdin:       stdin,
		Stdout:      stdout,
		metricsFile: opts.MetricsFile,
	}, nil
}

// Close writes the metrics file, when one was requested.
func (a *App) Close() error {
	if a.metricsFile == "" {
		return nil
	}
	w, err := openFileOutput(a.metricsFile)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	if err := a.Metrics.WriteText(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return w.Close()
}
