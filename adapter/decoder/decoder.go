// Package decoder converts stored documents into caller-supplied Go values.
package decoder

import (
	"fmt"

	"github.com/goccy/go-reflect"
	"github.com/mimicdb/mimicdb/adapter/data"
	"github.com/mimicdb/mimicdb/domain"
	"github.com/mitchellh/mapstructure"
)

var documentType = reflect.TypeOf((*domain.Document)(nil)).Elem()

// Decoder implements [domain.Decoder] on top of mapstructure.
type Decoder struct {
	tagName string
}

// NewDecoder returns a new implementation of domain.Decoder. By default
// struct fields are resolved through the [data.TagName] tag.
func NewDecoder(options ...Option) domain.Decoder {
	d := &Decoder{tagName: data.TagName}
	for _, option := range options {
		option(d)
	}
	return d
}

// Decode copies source into target, which must be a non-nil pointer.
func (d *Decoder) Decode(source any, target any) error {
	if target == nil {
		return domain.ErrTargetNil
	}

	value := reflect.ValueNoEscapeOf(target)
	if value.Kind() != reflect.Ptr {
		return domain.ErrNonPointer
	}

	// Document targets take the source as is; everything else gets bare
	// maps so mapstructure can walk them.
	if !value.Type().Elem().Implements(documentType) {
		source = plain(source)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: d.tagName,
		Result:  target,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(source); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDecode{Source: source, Target: target}, err)
	}
	return nil
}

// plain rewrites documents as bare maps, recursively.
func plain(value any) any {
	switch t := value.(type) {
	case domain.Document:
		res := make(map[string]any, t.Len())
		for k, v := range t.Iter() {
			res[k] = plain(v)
		}
		return res
	case []any:
		res := make([]any, len(t))
		for n, v := range t {
			res[n] = plain(v)
		}
		return res
	}
	return value
}
