package transform

import (
	"fmt"

	"github.com/frubino/gff-utils/pkg/domain"
	"github.com/frubino/gff-utils/pkg/table"
)

// ProdigalIDAttribute holds the gene number in Prodigal output.
const ProdigalIDAttribute = "ID"

// JoinKey selects how the join key of a record is computed.
type JoinKey struct {
	// Field is resolved like a projected field (typed or attribute).
	Field string
	// Prodigal builds the key as seq_id + "_" + ID, ignoring Field.
	Prodigal bool
}

// Of computes the key of rec. Missing values give an empty key (or a
// malformed Prodigal key), which simply does not match.
func (k JoinKey) Of(rec *domain.Annotation) string {
	if k.Prodigal {
		id, _ := rec.Attributes.Get(ProdigalIDAttribute)
		return rec.SeqID + "_" + id
	}
	value, _ := rec.Field(k.Field)
	return value
}

// TableJoin merges the row of tbl matching rec into rec.
//
// names are paired with the row values by position; extra names or values are
// ignored. Matching values always overwrite: taxon_id must be numeric, uid
// columns are skipped with a warning. When no row matches, rec is kept
// unchanged unless onlyEdited is set, in which case the first result is false.
func (e *Engine) TableJoin(rec *domain.Annotation, tbl *table.Table, key JoinKey, names []string, onlyEdited bool) (bool, error) {
	values, ok := tbl.Lookup(key.Of(rec))
	if !ok {
		return !onlyEdited, nil
	}

	n := min(len(names), len(values))
	for i := 0; i < n; i++ {
		name, value := names[i], values[i]
		switch domain.ClassifyKey(name) {
		case domain.KeyTaxonField:
			taxon, err := domain.ParseTaxonID(value)
			if err != nil {
				return false, fmt.Errorf("table value for %s: %w", key.Of(rec), err)
			}
			rec.TaxonID = taxon
		case domain.KeyUIDField:
			e.warn("The uid cannot be changed from a table, skipping column", domain.ErrReservedKey, "column", i+2, "value", value)
		default:
			rec.SetAttribute(name, value)
		}
	}
	return true, nil
}
