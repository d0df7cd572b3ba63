// Package table loads tab separated side tables used to merge values into
// annotations, keyed by their first column.
package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/frubino/gff-utils/internal/fileio"
	"github.com/frubino/gff-utils/pkg/domain"
)

// DefaultCommentPrefix marks comment lines in a side table.
const DefaultCommentPrefix = "#"

// Options controls how a side table is read.
type Options struct {
	// SkipRows physical lines are discarded first, whatever their content.
	SkipRows int
	// CommentPrefix marks lines to ignore after the skipped rows.
	// An empty prefix disables comment detection.
	CommentPrefix string
	// Columns is the minimum number of columns per row, key included.
	Columns int
}

// Table maps a join key to the ordered values of its row.
type Table struct {
	rows map[string][]string
}

// Lookup returns the values stored for key.
func (t *Table) Lookup(key string) ([]string, bool) {
	values, ok := t.rows[key]
	return values, ok
}

// Len returns the number of distinct keys.
func (t *Table) Len() int { return len(t.rows) }

// Load reads a side table from r.
//
// A row with fewer than opts.Columns fields makes the whole table invalid.
// When a key appears more than once the last row wins.
func Load(r io.Reader, opts Options) (*Table, error) {
	if opts.Columns < 1 {
		return nil, fmt.Errorf("table needs at least 1 column, got %d", opts.Columns)
	}

	t := &Table{rows: make(map[string][]string, 100)}
	br := bufio.NewReader(r)
	line := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if text == "" && err != nil {
			break
		}
		line++

		if line <= opts.SkipRows {
			continue
		}
		if opts.CommentPrefix != "" && strings.HasPrefix(text, opts.CommentPrefix) {
			continue
		}
		text = strings.TrimRight(text, "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) < opts.Columns {
			return nil, domain.StructuralError(line, opts.Columns, len(fields))
		}
		values := make([]string, opts.Columns-1)
		copy(values, fields[1:opts.Columns])
		t.rows[fields[0]] = values
	}
	return t, nil
}

// LoadFile reads a side table from path (".gz" files are decompressed).
func LoadFile(path string, opts Options) (*Table, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	t, err := Load(rc, opts)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", path, err)
	}
	return t, nil
}
