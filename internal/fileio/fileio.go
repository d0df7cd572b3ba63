// Package fileio opens record streams: a path, or stdin/stdout when the path
// is empty or "-". Paths ending in ".gz" are transparently (de)compressed.
package fileio

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/klauspost/pgzip"
)

// StdioPath selects stdin or stdout.
const StdioPath = "-"

// IsStdio reports whether path designates a standard stream.
func IsStdio(path string) bool {
	return path == "" || path == StdioPath
}

func isGzip(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

// Open opens path for reading, falling back to stdin.
func Open(path string) (io.ReadCloser, error) {
	if IsStdio(path) {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !isGzip(path) {
		return fh, nil
	}
	gr, err := pgzip.NewReader(fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return &stackedReader{Reader: gr, closers: []io.Closer{gr, fh}}, nil
}

// Create opens path for writing, falling back to stdout.
// The returned writer is buffered; Close flushes it.
func Create(path string) (io.WriteCloser, error) {
	if IsStdio(path) {
		return &stackedWriter{buf: bufio.NewWriter(os.Stdout)}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !isGzip(path) {
		return &stackedWriter{buf: bufio.NewWriter(fh), closers: []io.Closer{fh}}, nil
	}
	gw := pgzip.NewWriter(fh)
	return &stackedWriter{buf: bufio.NewWriter(gw), closers: []io.Closer{gw, fh}}, nil
}

type stackedReader struct {
	io.Reader
	closers []io.Closer
}

func (r *stackedReader) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

type stackedWriter struct {
	buf     *bufio.Writer
	closers []io.Closer
}

func (w *stackedWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close flushes the buffer, then closes the compressor and the file in order.
func (w *stackedWriter) Close() error {
	errs := []error{w.buf.Flush()}
	for _, c := range w.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
