// Package metrics counts what a run did: records read, written and dropped,
// and recoverable problems by kind. The counters live in a private Prometheus
// registry and can be written out in the text exposition format.
package metrics

import (
	"errors"
	"io"

	"github.com/frubino/gff-utils/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Warning kinds used as label values.
const (
	KindSegment  = "attribute_segment"
	KindReserved = "reserved_key"
	KindOther    = "other"
)

// Collector holds the run counters.
type Collector struct {
	registry *prometheus.Registry

	RecordsRead    prometheus.Counter
	RecordsWritten prometheus.Counter
	RecordsDropped prometheus.Counter
	Warnings       *prometheus.CounterVec
}

// New creates a Collector with its own registry.
func New(command string) *Collector {
	labels := prometheus.Labels{"command": command}
	c := &Collector{
		registry: prometheus.NewRegistry(),
		RecordsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "gffutils",
			Subsystem:   "records",
			Name:        "read_total",
			Help:        "Number of annotations read",
			ConstLabels: labels,
		}),
		RecordsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "gffutils",
			Subsystem:   "records",
			Name:        "written_total",
			Help:        "Number of output lines written",
			ConstLabels: labels,
		}),
		RecordsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "gffutils",
			Subsystem:   "records",
			Name:        "dropped_total",
			Help:        "Number of annotations not written",
			ConstLabels: labels,
		}),
		Warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "gffutils",
			Name:        "warnings_total",
			Help:        "Recoverable problems, by kind",
			ConstLabels: labels,
		}, []string{"kind"}),
	}
	c.registry.MustRegister(c.RecordsRead, c.RecordsWritten, c.RecordsDropped, c.Warnings)
	return c
}

// Warn counts a recoverable problem. It can be used as a warning hook.
func (c *Collector) Warn(err error) {
	kind := KindOther
	switch {
	case errors.Is(err, domain.ErrSegmentSyntax):
		kind = KindSegment
	case errors.Is(err, domain.ErrReservedKey):
		kind = KindReserved
	}
	c.Warnings.WithLabelValues(kind).Inc()
}

// WriteText writes every metric in the Prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
