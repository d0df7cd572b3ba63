package syntax

import (
	"strconv"
	"strings"

	"github.com/frubino/gff-utils/pkg/domain"
)

// FormatLine writes a as a record line (without the trailing newline).
// A zero score is written as ".".
func FormatLine(a *domain.Annotation, d Dialect) string {
	score := "."
	if a.Score != 0 {
		score = domain.FormatScore(a.Score)
	}
	return strings.Join([]string{
		a.SeqID,
		a.Source,
		a.FeatureType,
		strconv.FormatInt(a.Start, 10),
		strconv.FormatInt(a.End, 10),
		score,
		a.Strand.String(),
		a.Phase.String(),
		FormatAttributes(a, d),
	}, "\t")
}

// ParseColumns converts the nine columns of a record line into an annotation.
// The uid is left as parsed (possibly uuid.Nil); attribute warnings are
// returned alongside the record.
func ParseColumns(fields []string, d Dialect) (*domain.Annotation, []error, error) {
	if len(fields) < domain.NumColumns {
		return nil, nil, domain.ErrStructural
	}

	a := domain.NewAnnotation()
	a.SeqID = fields[0]
	a.Source = fields[1]
	a.FeatureType = fields[2]

	var err error
	if a.Start, err = parseCoordinate(domain.FieldStart, fields[3]); err != nil {
		return nil, nil, err
	}
	if a.End, err = parseCoordinate(domain.FieldEnd, fields[4]); err != nil {
		return nil, nil, err
	}
	if score, err := strconv.ParseFloat(fields[5], 64); err == nil {
		a.Score = score
	}
	a.Strand = domain.ParseStrand(fields[6])
	if a.Phase, err = domain.ParsePhase(fields[7]); err != nil {
		return nil, nil, err
	}

	parsed, err := ParseAttributes(fields[8], d)
	if err != nil {
		return nil, nil, err
	}
	a.UID = parsed.UID
	a.TaxonID = parsed.TaxonID
	a.Attributes = parsed.Attributes
	return a, parsed.Warnings, nil
}

func parseCoordinate(name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &domain.FieldError{Field: name, Value: s, Err: err}
	}
	return v, nil
}
