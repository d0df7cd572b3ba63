package syntax

import (
	"errors"
	"fmt"
	"strings"
)

// Dialect selects the attribute syntax.
type Dialect int

const (
	// GFF writes attributes as key=value.
	GFF Dialect = iota
	// GTF writes attributes as key "value".
	GTF
)

func (d Dialect) String() string {
	switch d {
	case GTF:
		return "gtf"
	default:
		return "gff"
	}
}

// ParseDialect accepts "gff", "gff3" and "gtf", in any case.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gff", "gff3":
		return GFF, nil
	case "gtf":
		return GTF, nil
	}
	return GFF, fmt.Errorf("unknown format %q (expected gff or gtf)", s)
}

// ErrUnwritableValue is returned for a value that cannot be written in a dialect.
var ErrUnwritableValue = errors.New("value cannot be written in this format")

// CheckValue reports an error when value would not read back unchanged once
// written in dialect d: ";" splits segments in both, GTF also quotes values.
func (d Dialect) CheckValue(value string) error {
	bad := ";"
	if d == GTF {
		bad = `;"`
	}
	if strings.ContainsAny(value, bad) {
		return fmt.Errorf("%w (%s): %q", ErrUnwritableValue, d, value)
	}
	return nil
}

// splitSegment splits a trimmed segment into key and value.
func (d Dialect) splitSegment(segment string) (key, value string, ok bool) {
	switch d {
	case GTF:
		key, value, ok = strings.Cut(segment, " ")
		if !ok {
			return "", "", false
		}
		value = strings.TrimSpace(value)
		value = strings.TrimPrefix(value, `"`)
		value = strings.TrimSuffix(value, `"`)
	default:
		key, value, ok = strings.Cut(segment, "=")
		if !ok {
			return "", "", false
		}
		value = strings.TrimSpace(value)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

// writeSegment appends one key/value segment, without separator.
func (d Dialect) writeSegment(b *strings.Builder, key, value string) {
	b.WriteString(key)
	switch d {
	case GTF:
		b.WriteString(` "`)
		b.WriteString(value)
		b.WriteString(`";`)
	default:
		b.WriteByte('=')
		b.WriteString(value)
	}
}

// separator goes between two written segments.
func (d Dialect) separator() string {
	if d == GTF {
		return " "
	}
	return ";"
}
