package domain

import "errors"

// Strand is the orientation of a feature (column 7).
type Strand byte

const (
	StrandUnknown Strand = '.'
	StrandForward Strand = '+'
	StrandReverse Strand = '-'
)

// ParseStrand never fails: anything other than "+" or "-" is unknown.
func ParseStrand(s string) Strand {
	switch s {
	case "+":
		return StrandForward
	case "-":
		return StrandReverse
	default:
		return StrandUnknown
	}
}

func (s Strand) String() string {
	switch s {
	case StrandForward, StrandReverse:
		return string(rune(s))
	default:
		return "."
	}
}

// Phase is the reading frame offset of a CDS feature (column 8).
type Phase int8

const (
	PhaseUnknown Phase = -1
	Phase0       Phase = 0
	Phase1       Phase = 1
	Phase2       Phase = 2
)

// ParsePhase accepts "0", "1", "2" and ".".
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "0":
		return Phase0, nil
	case "1":
		return Phase1, nil
	case "2":
		return Phase2, nil
	case ".":
		return PhaseUnknown, nil
	}
	return PhaseUnknown, &FieldError{Field: FieldPhase, Value: s, Err: errors.New("expected one of 0, 1, 2, .")}
}

func (p Phase) String() string {
	switch p {
	case Phase0, Phase1, Phase2:
		return string(rune('0' + p))
	default:
		return "."
	}
}
