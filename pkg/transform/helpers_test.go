package transform

import (
	"strings"
	"testing"

	"github.com/frubino/gff-utils/pkg/domain"
	"github.com/frubino/gff-utils/pkg/syntax"
	"github.com/stretchr/testify/require"
)

const (
	uid1 = "00000000-0000-0000-0000-000000000001"
	uid2 = "00000000-0000-0000-0000-000000000002"
)

// record parses a GFF line; the line must carry its uid.
func record(t *testing.T, line string) *domain.Annotation {
	t.Helper()
	rec, warnings, err := syntax.ParseColumns(strings.SplitN(line, "\t", domain.NumColumns), syntax.GFF)
	require.NoError(t, err)
	require.Empty(t, warnings)
	return rec
}

func format(rec *domain.Annotation) string {
	return syntax.FormatLine(rec, syntax.GFF)
}

func attr(t *testing.T, rec *domain.Annotation, key string) string {
	t.Helper()
	v, ok := rec.Attributes.Get(key)
	require.True(t, ok, "attribute %q missing", key)
	return v
}
