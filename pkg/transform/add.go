package transform

import (
	"fmt"

	"github.com/frubino/gff-utils/pkg/domain"
)

// Add sets attributes on rec. When a key is repeated the last value is used,
// applied at the position of the first occurrence.
//
// Existing attributes are only replaced when overwrite is set. A taxon_id is
// always assigned, but its value must be numeric, otherwise Add fails. A uid
// cannot be set this way: the pair is skipped with a warning. Records rejected
// by filter are left untouched.
func (e *Engine) Add(rec *domain.Annotation, pairs []KeyValue, overwrite bool, filter UIDFilter) error {
	if !filter.Allows(rec.UID) {
		return nil
	}
	for _, kv := range lastValues(pairs) {
		switch domain.ClassifyKey(kv.Key) {
		case domain.KeyTaxonField:
			taxon, err := domain.ParseTaxonID(kv.Value)
			if err != nil {
				return fmt.Errorf("failed to convert the taxon_id passed to a number: %w", err)
			}
			rec.TaxonID = taxon
		case domain.KeyUIDField:
			e.warn("Cannot change the uid of an annotation, skipping", domain.ErrReservedKey, "uid", rec.UID, "value", kv.Value)
		default:
			if rec.Attributes.Has(kv.Key) && !overwrite {
				continue
			}
			rec.SetAttribute(kv.Key, kv.Value)
		}
	}
	return nil
}

// lastValues keeps one pair per key: first position, last value.
func lastValues(pairs []KeyValue) []KeyValue {
	out := make([]KeyValue, 0, len(pairs))
	index := make(map[string]int, len(pairs))
	for _, kv := range pairs {
		if i, ok := index[kv.Key]; ok {
			out[i].Value = kv.Value
			continue
		}
		index[kv.Key] = len(out)
		out = append(out, kv)
	}
	return out
}
