package matcher

import "github.com/mimicdb/mimicdb/domain"

// Option configures behavior through the functional options pattern.
type Option func(*Matcher)

// WithComparer sets the comparer used by equality and ordering operators.
func WithComparer(c domain.Comparer) Option {
	return func(m *Matcher) {
		m.comparer = c
	}
}

// WithDocumentFactory sets the factory used to normalize raw values and
// queries into documents.
func WithDocumentFactory(d domain.DocumentFactory) Option {
	return func(m *Matcher) {
		m.documentFactory = d
	}
}
