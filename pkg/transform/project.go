package transform

import "github.com/frubino/gff-utils/pkg/domain"

// Project renders the requested fields of rec as a row.
//
// Typed fields always produce a value. An attribute missing from rec is left
// out of the row, or written as "" when keepEmpty is set. The second result
// is false when the row is empty and keepEmpty is not set: the record should
// not be written.
func (e *Engine) Project(rec *domain.Annotation, fields []string, keepEmpty bool) ([]string, bool) {
	row := make([]string, 0, len(fields))
	for _, field := range fields {
		value, ok := rec.Field(field)
		if !ok {
			if !keepEmpty {
				continue
			}
			value = ""
		}
		row = append(row, value)
	}
	if len(row) == 0 && !keepEmpty {
		return nil, false
	}
	return row, true
}
