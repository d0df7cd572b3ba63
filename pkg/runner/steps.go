package runner

import (
	"strings"

	"github.com/frubino/gff-utils/pkg/domain"
	"github.com/frubino/gff-utils/pkg/syntax"
	"github.com/frubino/gff-utils/pkg/table"
	"github.com/frubino/gff-utils/pkg/transform"
)

// ConvertStep writes every record unchanged, in dialect out.
func ConvertStep(out syntax.Dialect) Step {
	return func(rec *domain.Annotation) (string, bool, error) {
		return syntax.FormatLine(rec, out), true, nil
	}
}

// AddStep applies Engine.Add to every record.
func AddStep(eng *transform.Engine, out syntax.Dialect, pairs []transform.KeyValue, overwrite bool, filter transform.UIDFilter) Step {
	return func(rec *domain.Annotation) (string, bool, error) {
		if err := eng.Add(rec, pairs, overwrite, filter); err != nil {
			return "", false, err
		}
		return syntax.FormatLine(rec, out), true, nil
	}
}

// RemoveStep applies Engine.Remove to every record.
func RemoveStep(eng *transform.Engine, out syntax.Dialect, keys []string, filter transform.UIDFilter) Step {
	return func(rec *domain.Annotation) (string, bool, error) {
		eng.Remove(rec, keys, filter)
		return syntax.FormatLine(rec, out), true, nil
	}
}

// ProjectStep writes the requested fields of every record as a tab separated row.
func ProjectStep(eng *transform.Engine, fields []string, keepEmpty bool) Step {
	return func(rec *domain.Annotation) (string, bool, error) {
		row, keep := eng.Project(rec, fields, keepEmpty)
		if !keep {
			return "", false, nil
		}
		return strings.Join(row, "\t"), true, nil
	}
}

// JoinStep merges side table values into every record.
func JoinStep(eng *transform.Engine, out syntax.Dialect, tbl *table.Table, key transform.JoinKey, names []string, onlyEdited bool) Step {
	return func(rec *domain.Annotation) (string, bool, error) {
		keep, err := eng.TableJoin(rec, tbl, key, names, onlyEdited)
		if err != nil || !keep {
			return "", false, err
		}
		return syntax.FormatLine(rec, out), true, nil
	}
}
