package domain

// Reserved attribute keys. They are carried by typed fields of Annotation and
// never stored in its attribute map.
const (
	KeyUID     = "uid"
	KeyTaxonID = "taxon_id"
)

// Names of the typed columns, as accepted by Annotation.Field.
const (
	FieldSeqID       = "seq_id"
	FieldSource      = "source"
	FieldFeatureType = "feature_type"
	FieldStart       = "start"
	FieldEnd         = "end"
	FieldScore       = "score"
	FieldStrand      = "strand"
	FieldPhase       = "phase"
	FieldLength      = "length"
	FieldUID         = KeyUID
	FieldTaxonID     = KeyTaxonID
)

// NumColumns is the number of tab separated columns of a record line.
const NumColumns = 9

// NoTaxon marks an annotation without an assigned taxon.
const NoTaxon uint32 = 0
