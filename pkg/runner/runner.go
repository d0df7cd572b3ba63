package runner

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/frubino/gff-utils/internal/logging"
	"github.com/frubino/gff-utils/internal/metrics"
	"github.com/frubino/gff-utils/pkg/domain"
	"github.com/frubino/gff-utils/pkg/reader"
)

// Step processes one record. It returns the line to write (without newline)
// and whether to write it at all.
type Step func(rec *domain.Annotation) (line string, keep bool, err error)

// Stats summarizes a run.
type Stats struct {
	Read    int
	Written int
	Dropped int
}

// Runner drives records from a reader through a step to a writer.
type Runner struct {
	logger  *slog.Logger
	metrics *metrics.Collector
	header  []string
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads every record of src, applies step and writes the kept lines to w.
//
// The first error stops the run. Lines produced before the error are flushed
// to w and not retracted.
func (r *Runner) Run(src *reader.Reader, w io.Writer, step Step) (stats Stats, err error) {
	out := bufio.NewWriter(w)
	defer func() {
		if flushErr := out.Flush(); err == nil && flushErr != nil {
			err = flushErr
		}
	}()

	if len(r.header) > 0 {
		r.logger.Info("Writing header")
		if _, err := fmt.Fprintf(out, "#%s\n", strings.Join(r.header, "\t")); err != nil {
			return stats, err
		}
	}

	for rec, err := range src.All() {
		if err != nil {
			return stats, err
		}
		stats.Read++
		r.count(func(c *metrics.Collector) { c.RecordsRead.Inc() })

		line, keep, err := step(rec)
		if err != nil {
			return stats, fmt.Errorf("record %d (uid %s): %w", stats.Read, rec.UID, err)
		}
		if !keep {
			stats.Dropped++
			r.count(func(c *metrics.Collector) { c.RecordsDropped.Inc() })
			continue
		}
		if _, err := out.WriteString(line); err != nil {
			return stats, err
		}
		if err := out.WriteByte('\n'); err != nil {
			return stats, err
		}
		stats.Written++
		r.count(func(c *metrics.Collector) { c.RecordsWritten.Inc() })
	}

	r.logger.Info("Run finished", "read", stats.Read, "written", stats.Written, "dropped", stats.Dropped)
	return stats, nil
}

func (r *Runner) count(fn func(c *metrics.Collector)) {
	if r.metrics != nil {
		fn(r.metrics)
	}
}
