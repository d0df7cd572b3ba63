package schema

import (
	"fmt"
	"iter"

	"github.com/frubino/gff-utils/pkg/domain"
)

// DefaultLimit is the number of records scanned when no limit is given.
const DefaultLimit = 100

// Fields is the result of a discovery scan.
type Fields struct {
	// Names holds the typed field names, then attribute keys in first-seen order.
	Names []string
	// Scanned is the number of records consumed.
	Scanned int
}

// Discover reads at most limit records from seq and collects their field
// names. It stops pulling from seq as soon as limit records were consumed.
func Discover(seq iter.Seq2[*domain.Annotation, error], limit int) (Fields, error) {
	if limit < 1 {
		return Fields{}, fmt.Errorf("limit must be at least 1, got %d", limit)
	}

	f := Fields{Names: append([]string(nil), domain.TypedFieldNames...)}
	seen := make(map[string]struct{}, len(f.Names))
	for _, name := range f.Names {
		seen[name] = struct{}{}
	}

	for ann, err := range seq {
		if err != nil {
			return f, err
		}
		f.Scanned++
		ann.Attributes.Each(func(key, _ string) {
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}
			f.Names = append(f.Names, key)
		})
		if f.Scanned >= limit {
			break
		}
	}
	return f, nil
}
