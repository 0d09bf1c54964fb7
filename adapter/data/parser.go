package data

import (
	"regexp"
	"strings"
	"time"

	reflect "github.com/goccy/go-reflect"

	"github.com/mimicdb/mimicdb/domain"
)

// TagName is the struct tag read when parsing structs into documents.
const TagName = "mimicdb"

// NewDocument returns a new [domain.Document] built from the given value.
// Maps with string keys, structs and existing documents are accepted; nested
// values are parsed recursively, so the result shares no mutable state with
// the input. If nil is given, a document of length 0 is returned.
func NewDocument(in any) (domain.Document, error) {
	if in == nil {
		return M{}, nil
	}

	switch t := in.(type) {
	case M:
		return parseDoc(t)
	case map[string]any:
		return parseDoc(M(t))
	case domain.Document:
		return parseDoc(t)
	}

	r := reflect.ValueNoEscapeOf(in)
	k := r.Kind()
	for k == reflect.Interface || k == reflect.Ptr {
		if r.IsNil() {
			return M{}, nil
		}
		r = r.Elem()
		k = r.Kind()
	}

	switch k {
	case reflect.Struct:
		return parseStruct(r)
	case reflect.Map:
		return parseMap(r)
	default:
		return nil, domain.ErrDocumentType{Value: in}
	}
}

// Copy returns a deep copy of the given document.
func Copy(doc domain.Document) (domain.Document, error) {
	return parseDoc(doc)
}

func parseDoc(doc domain.Document) (domain.Document, error) {
	res := make(M, doc.Len())
	for k, v := range doc.Iter() {
		parsed, err := parseValue(v)
		if err != nil {
			return nil, err
		}
		res[k] = parsed
	}
	return res, nil
}

func parseStruct(r reflect.Value) (domain.Document, error) {
	typ := r.Type()
	res := make(M, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}

		name := field.Name
		var omitEmpty, omitZero bool
		if tag, ok := field.Tag.Lookup(TagName); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, part := range parts[1:] {
				switch part {
				case "omitempty":
					omitEmpty = true
				case "omitzero":
					omitZero = true
				}
			}
		}

		value := r.Field(i)
		if omitEmpty && isNil(value) {
			continue
		}
		if omitZero && value.IsZero() {
			continue
		}

		parsed, err := parseValue(value.Interface())
		if err != nil {
			return nil, err
		}
		res[name] = parsed
	}
	return res, nil
}

func parseMap(r reflect.Value) (domain.Document, error) {
	if r.Type().Key().Kind() != reflect.String {
		return nil, domain.ErrDocumentType{Value: r.Interface()}
	}
	res := make(M, r.Len())
	i := r.MapRange()
	for i.Next() {
		parsed, err := parseValue(i.Value().Interface())
		if err != nil {
			return nil, err
		}
		res[i.Key().String()] = parsed
	}
	return res, nil
}

func parseValue(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time, *regexp.Regexp:
		return t, nil
	case []byte:
		// byte slices are treated as a scalar, not a list of numbers
		return append([]byte(nil), t...), nil
	case []any:
		return parseSlice(t)
	case domain.Document:
		return parseDoc(t)
	case map[string]any:
		return parseDoc(M(t))
	}

	r := reflect.ValueNoEscapeOf(v)
	k := r.Kind()
	for k == reflect.Interface || k == reflect.Ptr {
		if r.IsNil() {
			return nil, nil
		}
		r = r.Elem()
		k = r.Kind()
	}

	switch k {
	case reflect.Slice, reflect.Array:
		lst := make([]any, r.Len())
		for i := range r.Len() {
			parsed, err := parseValue(r.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			lst[i] = parsed
		}
		return lst, nil
	case reflect.Struct:
		return parseStruct(r)
	case reflect.Map:
		return parseMap(r)
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		// Scalars pass through unchanged, same as the typed cases
		// above.
		return r.Interface(), nil
	default:
		return nil, domain.ErrDocumentType{Value: v}
	}
}

func parseSlice(s []any) ([]any, error) {
	lst := make([]any, len(s))
	for i, item := range s {
		parsed, err := parseValue(item)
		if err != nil {
			return nil, err
		}
		lst[i] = parsed
	}
	return lst, nil
}

func isNil(r reflect.Value) bool {
	switch r.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return r.IsNil()
	default:
		return false
	}
}
