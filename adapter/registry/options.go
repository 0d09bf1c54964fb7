package registry

import (
	"io"

	"github.com/mimicdb/mimicdb/adapter/idgenerator"
	"github.com/mimicdb/mimicdb/domain"
)

// Option configures client behavior through the functional options pattern.
// Options apply to every database and collection created by the client.
type Option func(*config)

// WithTimestamps makes collections set createdAt and updatedAt fields on
// inserted and updated documents.
func WithTimestamps(t bool) Option {
	return func(c *config) {
		c.timestampData = t
	}
}

// WithIDLength sets the length of generated _id values.
func WithIDLength(l int) Option {
	return func(c *config) {
		c.idLength = l
	}
}

// WithComparer sets the [domain.Comparer] used for sorting and id equality.
func WithComparer(comp domain.Comparer) Option {
	return func(c *config) {
		c.comparer = comp
	}
}

// WithMatcher sets the [domain.Matcher] used to evaluate queries.
func WithMatcher(m domain.Matcher) Option {
	return func(c *config) {
		c.matcher = m
	}
}

// WithModifier sets the [domain.Modifier] used to apply update queries.
func WithModifier(m domain.Modifier) Option {
	return func(c *config) {
		c.modifier = m
	}
}

// WithDecoder sets the [domain.Decoder] handed to cursors.
func WithDecoder(d domain.Decoder) Option {
	return func(c *config) {
		c.decoder = d
	}
}

// WithProjector sets the [domain.Projector] used by queries with a
// projection.
func WithProjector(p domain.Projector) Option {
	return func(c *config) {
		c.projector = p
	}
}

// WithIDGenerator sets the [domain.IDGenerator] used for new documents.
func WithIDGenerator(ig domain.IDGenerator) Option {
	return func(c *config) {
		c.idGenerator = ig
	}
}

// WithRandomReader sets the reader used by the default id generator.
func WithRandomReader(r io.Reader) Option {
	return func(c *config) {
		c.idGenerator = idgenerator.NewIDGenerator(idgenerator.WithReader(r))
	}
}

// WithTimeGetter sets the [domain.TimeGetter] used for timestamping.
func WithTimeGetter(tg domain.TimeGetter) Option {
	return func(c *config) {
		c.timeGetter = tg
	}
}

// WithDocumentFactory sets the [domain.Document] factory function used to
// parse and copy documents.
func WithDocumentFactory(df domain.DocumentFactory) Option {
	return func(c *config) {
		c.documentFactory = df
	}
}

// WithCursorFactory sets the factory used to build result cursors.
func WithCursorFactory(cf domain.CursorFactory) Option {
	return func(c *config) {
		c.cursorFactory = cf
	}
}
