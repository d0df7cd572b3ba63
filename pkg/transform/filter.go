package transform

import (
	"bufio"
	"io"
	"strings"

	"github.com/google/uuid"
)

// UIDFilter restricts a transformation to a set of record identifiers.
// An empty (or nil) filter lets every record through.
type UIDFilter map[string]struct{}

// NewUIDFilter builds a filter from identifiers.
func NewUIDFilter(ids ...string) UIDFilter {
	f := make(UIDFilter, len(ids))
	for _, id := range ids {
		if id = normalizeUID(id); id != "" {
			f[id] = struct{}{}
		}
	}
	return f
}

// LoadUIDFilter reads one identifier per line. Blank lines are ignored.
func LoadUIDFilter(r io.Reader) (UIDFilter, error) {
	f := make(UIDFilter)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if id := normalizeUID(sc.Text()); id != "" {
			f[id] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// Allows reports whether the record with this uid should be changed.
func (f UIDFilter) Allows(id uuid.UUID) bool {
	if len(f) == 0 {
		return true
	}
	_, ok := f[id.String()]
	return ok
}

// Len returns the number of identifiers in the filter.
func (f UIDFilter) Len() int { return len(f) }

func normalizeUID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
