package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/frubino/gff-utils/internal/fileio"
	"github.com/frubino/gff-utils/pkg/reader"
	"github.com/frubino/gff-utils/pkg/runner"
	"github.com/frubino/gff-utils/pkg/transform"
	"golang.org/x/term"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

var openFileOutput = fileio.Create

// openInput opens path, or the App's stdin when path is empty or "-".
func (a *App) openInput(path string) (io.ReadCloser, error) {
	if !fileio.IsStdio(path) {
		a.Logger.Info("Opening file", "path", path)
		rc, err := fileio.Open(path)
		if err != nil {
			a.Logger.Error("Cannot read file", "path", path)
			return nil, err
		}
		return rc, nil
	}
	a.Logger.Info("Opening stdin")
	if f, ok := a.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		a.Logger.Warn("Reading annotations from the terminal, end the input with Ctrl+D")
	}
	return io.NopCloser(a.Stdin), nil
}

// openOutput creates path, or wraps the App's stdout when path is empty or "-".
func (a *App) openOutput(path string) (io.WriteCloser, error) {
	if fileio.IsStdio(path) {
		a.Logger.Info("Opening stdout")
		return nopWriteCloser{a.Stdout}, nil
	}
	a.Logger.Info("Opening file", "path", path)
	wc, err := openFileOutput(path)
	if err != nil {
		a.Logger.Error("Cannot create file", "path", path)
		return nil, err
	}
	return wc, nil
}

// newReader wraps src with the App's dialect, logger and warning counter.
func (a *App) newReader(src io.Reader) *reader.Reader {
	return reader.New(src,
		reader.WithDialect(a.Dialect),
		reader.WithUIDGenerator(a.UIDs),
		reader.WithLogger(a.Logger),
		reader.WithWarningHook(a.Metrics.Warn),
	)
}

// newEngine builds a transform engine reporting to the App.
func (a *App) newEngine() *transform.Engine {
	return transform.New(
		transform.WithLogger(a.Logger),
		transform.WithWarningHook(a.Metrics.Warn),
	)
}

// readUIDFile loads the uid filter; an empty path means no filtering.
func (a *App) readUIDFile(path string) (transform.UIDFilter, error) {
	if path == "" {
		return nil, nil
	}
	a.Logger.Info("Reading file with list of UIDs", "path", path)
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open uid file: %w", err)
	}
	defer func() { _ = rc.Close() }()

	filter, err := transform.LoadUIDFilter(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read uid file %s: %w", path, err)
	}
	a.Logger.Info("Changing annotations from uid file", "uids", filter.Len())
	return filter, nil
}

// pipe runs step over every record of input and writes the result to output.
func (a *App) pipe(input, output string, step runner.Step, opts ...runner.Option) (runner.Stats, error) {
	in, err := a.openInput(input)
	if err != nil {
		return runner.Stats{}, err
	}
	defer func() { _ = in.Close() }()

	out, err := a.openOutput(output)
	if err != nil {
		return runner.Stats{}, err
	}

	opts = append([]runner.Option{runner.WithLogger(a.Logger), runner.WithMetrics(a.Metrics)}, opts...)
	stats, runErr := runner.New(opts...).Run(a.newReader(in), out, step)
	closeErr := out.Close()
	if runErr != nil {
		return stats, HandleExecutionError(runErr)
	}
	return stats, HandleExecutionError(closeErr)
}

// HandleExecutionError hides broken pipe errors: a consumer such as `head`
// closing the output early is not a failure.
func HandleExecutionError(err error) error {
	if fileio.IsBrokenPipe(err) {
		return nil
	}
	return err
}
