package transform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSeparator is returned for a pair that would split the attribute column.
var ErrSeparator = errors.New("attribute separator in key or value")

// KeyValue is an attribute assignment.
type KeyValue struct {
	Key   string
	Value string
}

// ParseKeyValue parses "key:value". The value may contain further colons.
// Control characters are stripped from both parts. A ";" anywhere, or a "=",
// a space or a double quote in the key, is rejected with ErrSeparator.
func ParseKeyValue(s string) (KeyValue, error) {
	clean, err := SanitizeValue(s)
	if err != nil {
		return KeyValue{}, fmt.Errorf("%w: %q", err, s)
	}
	key, value, ok := strings.Cut(clean, ":")
	if !ok || key == "" {
		return KeyValue{}, fmt.Errorf("cannot parse 'key:value' argument: %s", clean)
	}
	if strings.ContainsAny(key, `;= "`) || strings.Contains(value, ";") {
		return KeyValue{}, fmt.Errorf("%w: %s", ErrSeparator, clean)
	}
	return KeyValue{Key: key, Value: value}, nil
}

// ParseKeyValues parses every argument with ParseKeyValue, keeping their order.
func ParseKeyValues(args []string) ([]KeyValue, error) {
	pairs := make([]KeyValue, 0, len(args))
	for _, arg := range args {
		kv, err := ParseKeyValue(arg)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, kv)
	}
	return pairs, nil
}
