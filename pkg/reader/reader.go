// Package reader turns a GFF or GTF byte stream into a lazy sequence of annotations.
package reader

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/frubino/gff-utils/internal/logging"
	"github.com/frubino/gff-utils/pkg/domain"
	"github.com/frubino/gff-utils/pkg/ports"
	"github.com/frubino/gff-utils/pkg/syntax"
	"github.com/google/uuid"
)

// Reader reads annotations one line at a time.
//
// It is forward-only: once exhausted (or failed) it keeps returning the same
// result, and a new Reader over a fresh stream is needed to read again.
type Reader struct {
	src     *bufio.Reader
	dialect syntax.Dialect
	uids    ports.UIDGenerator
	logger  *slog.Logger
	onWarn  func(error)

	line int
	err  error // sticky: io.EOF or the first fatal error
}

// Option configures a Reader.
type Option func(*Reader)

// WithDialect sets the attribute syntax of the input (default GFF).
func WithDialect(d syntax.Dialect) Option {
	return func(r *Reader) {
		r.dialect = d
	}
}

// WithUIDGenerator sets the source of identifiers for records without a uid.
func WithUIDGenerator(gen ports.UIDGenerator) Option {
	return func(r *Reader) {
		r.uids = gen
	}
}

// WithLogger configures the logger used for attribute warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// WithWarningHook registers a function called for every skipped attribute segment.
func WithWarningHook(fn func(error)) Option {
	return func(r *Reader) {
		r.onWarn = fn
	}
}

// New creates a Reader over src.
func New(src io.Reader, opts ...Option) *Reader {
	r := &Reader{
		src:     bufio.NewReader(src),
		dialect: syntax.GFF,
		uids:    ports.RandomUIDs{},
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Line returns the number of physical lines consumed so far.
func (r *Reader) Line() int { return r.line }

// Next returns the next annotation, or io.EOF when the stream ends or a
// sequence section ('>' line) starts. Any other error is fatal.
func (r *Reader) Next() (*domain.Annotation, error) {
	for r.err == nil {
		text, err := r.src.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			r.err = err
			break
		}
		if text == "" && err != nil {
			r.err = io.EOF
			break
		}
		r.line++

		switch {
		case strings.HasPrefix(text, "#"):
			continue
		case strings.HasPrefix(text, ">"):
			r.logger.Debug("Sequence section reached, stop reading", "line", r.line)
			r.err = io.EOF
			continue
		case strings.TrimSpace(text) == "":
			continue
		}

		ann, err := r.parse(text)
		if err != nil {
			r.err = err
			break
		}
		return ann, nil
	}
	return nil, r.err
}

func (r *Reader) parse(text string) (*domain.Annotation, error) {
	text = strings.TrimRight(text, "\r\n")
	fields := strings.SplitN(text, "\t", domain.NumColumns)
	if len(fields) < domain.NumColumns {
		return nil, domain.StructuralError(r.line, domain.NumColumns, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	ann, warnings, err := syntax.ParseColumns(fields, r.dialect)
	if err != nil {
		return nil, &domain.LineError{Line: r.line, Err: err}
	}
	for _, w := range warnings {
		r.logger.Warn("Skipping attribute", "line", r.line, "err", w)
		if r.onWarn != nil {
			r.onWarn(w)
		}
	}
	if ann.UID == uuid.Nil {
		ann.UID = r.uids.NewUID()
	}
	return ann, nil
}

// All returns the remaining annotations as a sequence. The sequence stops at
// the end of the records or after yielding the first error; stopping the loop
// early leaves the rest of the stream unread.
func (r *Reader) All() iter.Seq2[*domain.Annotation, error] {
	return func(yield func(*domain.Annotation, error) bool) {
		for {
			ann, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(ann, nil) {
				return
			}
		}
	}
}
