package domain

import (
	"strconv"

	"github.com/google/uuid"
)

// Annotation is one record of a GFF or GTF file.
//
// Coordinates are 1-based and inclusive. The reserved keys "uid" and
// "taxon_id" live in UID and TaxonID, never in Attributes.
type Annotation struct {
	SeqID       string
	Source      string
	FeatureType string
	Start       int64
	End         int64
	Score       float64
	Strand      Strand
	Phase       Phase

	// UID identifies the record; uuid.Nil means unset and is never written.
	UID uuid.UUID
	// TaxonID is NoTaxon when no taxon was assigned.
	TaxonID uint32

	Attributes *Attributes
}

// NewAnnotation returns an annotation with an empty attribute map and unknown strand and phase.
func NewAnnotation() *Annotation {
	return &Annotation{
		Strand:     StrandUnknown,
		Phase:      PhaseUnknown,
		Attributes: NewAttributes(),
	}
}

// Length is the number of bases covered by the feature.
func (a *Annotation) Length() int64 {
	return a.End - a.Start + 1
}

// SetAttribute stores a generic attribute, creating the map if needed.
func (a *Annotation) SetAttribute(key, value string) {
	if a.Attributes == nil {
		a.Attributes = NewAttributes()
	}
	a.Attributes.Set(key, value)
}

// KeyKind tells where an attribute key is stored.
type KeyKind int

const (
	KeyGeneric KeyKind = iota
	KeyUIDField
	KeyTaxonField
)

var reservedKeys = map[string]KeyKind{
	KeyUID:     KeyUIDField,
	KeyTaxonID: KeyTaxonField,
}

// ClassifyKey routes an attribute key to a typed field or the generic map.
func ClassifyKey(key string) KeyKind {
	if kind, ok := reservedKeys[key]; ok {
		return kind
	}
	return KeyGeneric
}

// ParseTaxonID parses a taxon_id value.
func ParseTaxonID(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return NoTaxon, &FieldError{Field: KeyTaxonID, Value: s, Err: err}
	}
	return uint32(v), nil
}

// ParseUID parses a uid value.
func ParseUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &FieldError{Field: KeyUID, Value: s, Err: err}
	}
	return id, nil
}

// FormatScore renders a score in its shortest decimal form.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// TypedFieldNames lists the names resolved by typed fields, in a fixed order.
var TypedFieldNames = []string{
	FieldUID,
	FieldTaxonID,
	FieldSeqID,
	FieldSource,
	FieldFeatureType,
	FieldStart,
	FieldEnd,
	FieldScore,
	FieldStrand,
	FieldPhase,
	FieldLength,
}

var typedFields = map[string]func(a *Annotation) string{
	FieldUID: func(a *Annotation) string { return a.UID.String() },
	FieldTaxonID: func(a *Annotation) string {
		if a.TaxonID == NoTaxon {
			return ""
		}
		return strconv.FormatUint(uint64(a.TaxonID), 10)
	},
	FieldSeqID:       func(a *Annotation) string { return a.SeqID },
	FieldSource:      func(a *Annotation) string { return a.Source },
	FieldFeatureType: func(a *Annotation) string { return a.FeatureType },
	FieldStart:       func(a *Annotation) string { return strconv.FormatInt(a.Start, 10) },
	FieldEnd:         func(a *Annotation) string { return strconv.FormatInt(a.End, 10) },
	FieldScore:       func(a *Annotation) string { return FormatScore(a.Score) },
	FieldStrand:      func(a *Annotation) string { return a.Strand.String() },
	FieldPhase:       func(a *Annotation) string { return a.Phase.String() },
	FieldLength:      func(a *Annotation) string { return strconv.FormatInt(a.Length(), 10) },
}

// IsTypedField reports whether name is resolved by a typed field.
func IsTypedField(name string) bool {
	_, ok := typedFields[name]
	return ok
}

// Field resolves a field name to its textual value.
// Typed fields always resolve; other names are looked up in Attributes.
func (a *Annotation) Field(name string) (string, bool) {
	if render, ok := typedFields[name]; ok {
		return render(a), true
	}
	return a.Attributes.Get(name)
}
