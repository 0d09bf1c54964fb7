// Package structure contains type-related helpers, such as iterating over a
// value of type any as a generic sequence.
package structure

import (
	"errors"
	"iter"

	"github.com/goccy/go-reflect"
)

var (
	// ErrNilObj may be returned by [Seq] when a nil value is passed as
	// argument.
	ErrNilObj = errors.New("nil object")
)

// ErrNonList is returned by [Seq] when a value that is neither a slice nor
// an array is passed as argument.
type ErrNonList struct {
	Type reflect.Type
}

func (e ErrNonList) Error() string {
	return "expected slice or array, got " + e.Type.String()
}

// Seq returns an iterator over the elements of any slice or array, together
// with its length. Typed slices of common primitives take the fast path;
// everything else goes through reflection.
func Seq(obj any) (iter.Seq[any], int, error) {
	if obj == nil {
		return nil, 0, ErrNilObj
	}
	if i, l, ok := fastPath(obj); ok {
		return i, l, nil
	}

	r := reflect.ValueNoEscapeOf(obj)
	k := r.Kind()
	for k == reflect.Interface || k == reflect.Ptr {
		if r.IsNil() {
			return nil, 0, ErrNilObj
		}
		r = r.Elem()
		k = r.Kind()
	}
	if k != reflect.Slice && k != reflect.Array {
		return nil, 0, ErrNonList{Type: r.Type()}
	}

	l := r.Len()
	return func(yield func(any) bool) {
		for i := range l {
			if !yield(r.Index(i).Interface()) {
				return
			}
		}
	}, l, nil
}

func fastPath(obj any) (iter.Seq[any], int, bool) {
	switch t := obj.(type) {
	case []any:
		return sliceSeq(t), len(t), true
	case []string:
		return sliceSeq(t), len(t), true
	case []bool:
		return sliceSeq(t), len(t), true
	case []int:
		return sliceSeq(t), len(t), true
	case []int32:
		return sliceSeq(t), len(t), true
	case []int64:
		return sliceSeq(t), len(t), true
	case []float32:
		return sliceSeq(t), len(t), true
	case []float64:
		return sliceSeq(t), len(t), true
	default:
		return nil, 0, false
	}
}

func sliceSeq[T any](s []T) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}
