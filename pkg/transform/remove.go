package transform

import "github.com/frubino/gff-utils/pkg/domain"

// Remove deletes attributes from rec. Removing taxon_id unassigns the taxon;
// absent keys are ignored. Records rejected by filter are left untouched.
func (e *Engine) Remove(rec *domain.Annotation, keys []string, filter UIDFilter) {
	if !filter.Allows(rec.UID) {
		return
	}
	for _, key := range keys {
		if domain.ClassifyKey(key) == domain.KeyTaxonField {
			rec.TaxonID = domain.NoTaxon
			continue
		}
		rec.Attributes.Delete(key)
	}
}
