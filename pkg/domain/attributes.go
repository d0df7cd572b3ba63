package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attributes is the generic part of the attribute column.
// Keys keep the order in which they were first set.
type Attributes struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewAttributes returns an empty attribute map.
func NewAttributes() *Attributes {
	return &Attributes{m: orderedmap.New[string, string]()}
}

// Get returns the value of key.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil || a.m == nil {
		return "", false
	}
	return a.m.Get(key)
}

// Has reports whether key is present.
func (a *Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Set stores value under key. An existing key keeps its position.
// Unlike the read methods, Set needs a non-nil receiver; see
// Annotation.SetAttribute.
func (a *Attributes) Set(key, value string) {
	if a.m == nil {
		a.m = orderedmap.New[string, string]()
	}
	a.m.Set(key, value)
}

// Delete removes key, if present.
func (a *Attributes) Delete(key string) {
	if a == nil || a.m == nil {
		return
	}
	a.m.Delete(key)
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil || a.m == nil {
		return 0
	}
	return a.m.Len()
}

// Keys returns the keys in insertion order.
func (a *Attributes) Keys() []string {
	keys := make([]string, 0, a.Len())
	a.Each(func(key, _ string) {
		keys = append(keys, key)
	})
	return keys
}

// Each calls fn for every attribute in insertion order.
func (a *Attributes) Each(fn func(key, value string)) {
	if a == nil || a.m == nil {
		return
	}
	for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
