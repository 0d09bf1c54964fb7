package decoder

// WithTagName sets the struct tag read when resolving field names.
func WithTagName(name string) Option {
	return func(d *Decoder) {
		d.tagName = name
	}
}

// Option configures behavior through the functional options pattern.
type Option func(*Decoder)
