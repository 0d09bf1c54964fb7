// Package data contains the default [domain.Document] implementation backed
// by a plain map, plus the parser that turns user maps and structs into
// documents.
package data

import (
	"iter"

	"github.com/mimicdb/mimicdb/domain"
)

// M implements [domain.Document] by using a hashed map. Duplicates replace
// old values.
type M map[string]any

// ID implements [domain.Document].
func (m M) ID() any {
	return m["_id"]
}

// Get implements [domain.Document].
func (m M) Get(key string) any {
	return m[key]
}

// Set implements [domain.Document].
func (m M) Set(key string, value any) {
	m[key] = value
}

// Unset implements [domain.Document].
func (m M) Unset(key string) {
	delete(m, key)
}

// Has implements [domain.Document].
func (m M) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Iter implements [domain.Document].
func (m M) Iter() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys implements [domain.Document].
func (m M) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range m {
			if !yield(k) {
				return
			}
		}
	}
}

// Len implements [domain.Document].
func (m M) Len() int {
	return len(m)
}

var _ domain.Document = M{}
