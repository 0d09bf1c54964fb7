package modifier

import "github.com/mimicdb/mimicdb/domain"

// Option configures behavior through the functional options pattern.
type Option func(*Modifier)

// WithComparer sets the comparer used to guard _id changes.
func WithComparer(c domain.Comparer) Option {
	return func(m *Modifier) {
		m.comp = c
	}
}

// WithDocumentFactory sets the factory used to copy documents before
// mutation.
func WithDocumentFactory(d domain.DocumentFactory) Option {
	return func(m *Modifier) {
		m.docFac = d
	}
}
