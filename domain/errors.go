package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when [Collection.FindOne] cannot find any
	// matching result for the given query.
	ErrNotFound = errors.New("no matching document found")
	// ErrTargetNil is returned when user provides a nil value as a
	// target to decode data into.
	ErrTargetNil = errors.New("target interface is nil")
	// ErrNonPointer is returned when a decode target is not a pointer.
	ErrNonPointer = errors.New("target must be a pointer")
	// ErrCannotModifyID is returned by [Modifier.Modify] when the user
	// performs some action that would modify a document _id.
	ErrCannotModifyID = errors.New("you cannot change a document's _id")
	// ErrMixedModifiers is returned when an update query mixes '$'
	// modifiers and normal fields.
	ErrMixedModifiers = errors.New("cannot mix modifiers and normal fields")
	// ErrDecodeBeforeNext is returned when calling [Cursor.Decode]
	// before calling [Cursor.Next].
	ErrDecodeBeforeNext = errors.New("called Decode before calling Next")
	// ErrCursorClosed is returned when trying to perform operations on a
	// closed [Cursor].
	ErrCursorClosed = errors.New("cursor is closed")
	// ErrMixedProjection is returned when a projection both keeps and
	// omits fields other than _id.
	ErrMixedProjection = errors.New("can't both keep and omit fields except for _id")
)

// ErrFieldName represents an invalid field name, usually for when a document
// is created with a reserved prefix.
type ErrFieldName struct {
	Field string
}

func (e ErrFieldName) Error() string {
	return fmt.Sprintf("field names cannot begin with the $ character: %q", e.Field)
}

// ErrDuplicateKey is returned when inserting a document whose _id already
// exists in the collection.
type ErrDuplicateKey struct {
	ID any
}

func (e ErrDuplicateKey) Error() string {
	return fmt.Sprintf("a document with _id %v already exists", e.ID)
}

// ErrDocumentType is returned when a value that is invalid or contains an
// invalid sub value is passed to create a document.
type ErrDocumentType struct {
	Value any
}

func (e ErrDocumentType) Error() string {
	return fmt.Sprintf("expected map or struct, got %T", e.Value)
}

// ErrCannotCompare is returned when [Comparer.Compare] is called with two
// values that cannot be compared by the current [Comparer] implementation.
type ErrCannotCompare struct {
	A any
	B any
}

func (e ErrCannotCompare) Error() string {
	return fmt.Sprintf("cannot compare unexpected types %T and %T", e.A, e.B)
}

// ErrUnknownModifier is returned when an update query contains a '$' field
// that is not a supported modifier.
type ErrUnknownModifier struct {
	Modifier string
}

func (e ErrUnknownModifier) Error() string {
	return fmt.Sprintf("unknown modifier %q", e.Modifier)
}

// ErrModifierArg is returned when a modifier is called with an argument of
// invalid type.
type ErrModifierArg struct {
	Modifier string
	Actual   any
}

func (e ErrModifierArg) Error() string {
	return fmt.Sprintf("modifier %s's argument must be an object, got %T", e.Modifier, e.Actual)
}

// ErrPatternOperand is returned when a $regex operand is neither a pattern
// string nor a compiled regular expression, and the field value is a string
// the pattern would have been applied to.
type ErrPatternOperand struct {
	Operand any
}

func (e ErrPatternOperand) Error() string {
	return fmt.Sprintf("$regex operand must be a pattern string or a compiled pattern, got %T", e.Operand)
}

// ErrDecode wraps third party decoding errors.
type ErrDecode struct {
	Source any
	Target any
}

func (e ErrDecode) Error() string {
	return fmt.Sprintf("cannot decode %T into %T", e.Source, e.Target)
}
