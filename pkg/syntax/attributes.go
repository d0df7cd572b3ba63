package syntax

import (
	"strconv"
	"strings"

	"github.com/frubino/gff-utils/pkg/domain"
	"github.com/google/uuid"
)

// EmptyField is written for a record without attributes.
const EmptyField = "."

// Parsed is the content of one attribute column.
type Parsed struct {
	// UID is uuid.Nil when the column has no (or a nil) uid.
	UID        uuid.UUID
	TaxonID    uint32
	Attributes *domain.Attributes
	// Warnings holds one *domain.SegmentError per skipped segment.
	Warnings []error
}

// ParseAttributes parses an attribute column written in dialect d.
//
// Malformed segments are skipped and reported in Parsed.Warnings. A uid that
// is not a valid identifier, or a taxon_id that is not a number, is returned
// as an error.
func ParseAttributes(field string, d Dialect) (Parsed, error) {
	p := Parsed{Attributes: domain.NewAttributes()}

	field = strings.TrimSpace(field)
	if field == EmptyField {
		return p, nil
	}

	for _, segment := range strings.Split(field, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		key, value, ok := d.splitSegment(segment)
		if !ok {
			p.Warnings = append(p.Warnings, &domain.SegmentError{Segment: segment})
			continue
		}
		switch domain.ClassifyKey(key) {
		case domain.KeyUIDField:
			id, err := domain.ParseUID(value)
			if err != nil {
				return p, err
			}
			p.UID = id
		case domain.KeyTaxonField:
			taxon, err := domain.ParseTaxonID(value)
			if err != nil {
				return p, err
			}
			p.TaxonID = taxon
		default:
			p.Attributes.Set(key, value)
		}
	}
	return p, nil
}

// FormatAttributes writes the attribute column of a in dialect d.
// The uid comes first, then taxon_id when assigned, then the generic
// attributes in insertion order.
func FormatAttributes(a *domain.Annotation, d Dialect) string {
	var b strings.Builder
	n := 0
	write := func(key, value string) {
		if n > 0 {
			b.WriteString(d.separator())
		}
		d.writeSegment(&b, key, value)
		n++
	}

	if a.UID != uuid.Nil {
		write(domain.KeyUID, a.UID.String())
	}
	if a.TaxonID != domain.NoTaxon {
		write(domain.KeyTaxonID, strconv.FormatUint(uint64(a.TaxonID), 10))
	}
	a.Attributes.Each(write)

	if n == 0 {
		return EmptyField
	}
	return b.String()
}
