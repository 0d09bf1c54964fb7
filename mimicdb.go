// Package mimicdb provides an in-memory document store imitating the client
// API of MongoDB.
//
// It is meant as a lightweight stand-in for a real database in tests and
// prototypes: databases and collections are created on first access, data
// lives entirely in process memory, and queries use the familiar filter
// shape with implicit equality and per-field operator objects ($eq, $ne,
// $gt, $gte, $lt, $lte, $in, $regex).
//
// The basic usage starts with creating a new [Client] instance, which can be
// done by calling [NewClient].
package mimicdb

import (
	"io"

	"github.com/mimicdb/mimicdb/adapter/registry"
	"github.com/mimicdb/mimicdb/domain"
)

var (
	// ErrNotFound is returned when [Collection.FindOne] cannot find any
	// matching result for the given query.
	ErrNotFound = domain.ErrNotFound
	// ErrTargetNil is returned when user provides a nil value as a target
	// to decode data, for example, calling [Collection.FindOne].
	ErrTargetNil = domain.ErrTargetNil
	// ErrNonPointer is returned when a decode target is not a pointer.
	ErrNonPointer = domain.ErrNonPointer
	// ErrCannotModifyID is returned by [Modifier.Modify] when the user
	// performs some action that would modify a document _id.
	ErrCannotModifyID = domain.ErrCannotModifyID
	// ErrMixedModifiers is returned when an update query mixes $ modifiers
	// with plain replacement fields.
	ErrMixedModifiers = domain.ErrMixedModifiers
	// ErrCursorClosed is returned when trying to perform operations on a
	// closed [Cursor].
	ErrCursorClosed = domain.ErrCursorClosed
	// ErrDecodeBeforeNext is returned when calling [Cursor.Decode] before
	// calling [Cursor.Next].
	ErrDecodeBeforeNext = domain.ErrDecodeBeforeNext
	// ErrMixedProjection is returned when a projection both keeps and
	// omits fields other than _id.
	ErrMixedProjection = domain.ErrMixedProjection
)

// ErrFieldName represents an invalid field name, usually for when a document
// is created with a reserved prefix.
type ErrFieldName = domain.ErrFieldName

// ErrDuplicateKey is returned when inserting a document whose _id already
// exists in the collection.
type ErrDuplicateKey = domain.ErrDuplicateKey

// ErrDocumentType is returned when an user passes a value that is invalid or
// contains an invalid sub value for creating a document.
type ErrDocumentType = domain.ErrDocumentType

// ErrCannotCompare is returned when [Comparer.Compare] is called with two
// values that cannot be compared by the current [Comparer] interface.
type ErrCannotCompare = domain.ErrCannotCompare

// ErrDecode is returned by [Decoder.Decode] to easily wrap third party
// decoding errors.
type ErrDecode = domain.ErrDecode

// NewClient creates a new in-memory client with the provided configuration
// options:
//
// - [WithTimestamps]: enables automatic timestamping of documents.
//
// - [WithIDLength]: sets the length of generated document ids.
//
// - [WithComparer]: sets the comparer for value comparison operations.
//
// - [WithMatcher]: sets the matcher implementation for query evaluation.
//
// - [WithModifier]: sets the modifier implementation for document updates.
//
// - [WithDecoder]: sets the decoder for data format conversions.
//
// - [WithProjector]: sets the projector applied to query results.
//
// - [WithIDGenerator]: sets the idgenerator to create new document ids.
//
// - [WithRandomReader]: sets the reader to be used by the IDGenerator.
//
// - [WithTimeGetter]: sets the time getter for timestamping operations.
//
// - [WithDocumentFactory]: sets the function for creating [Document]
// instances.
//
// - [WithCursorFactory]: sets the function for creating cursor instances.
func NewClient(options ...registry.Option) Client {
	return registry.NewClient(options...)
}

// Client is the entry point of the store: a name-keyed registry of databases,
// created on first access. It imitates the shape of a document-database
// client without any networking underneath.
//
// All data is held in process memory, and operations are safe to use
// concurrently from multiple goroutines.
type Client = domain.Client

// Database is a name-keyed registry of collections, created on first access.
type Database = domain.Database

// Collection is a named, ordered set of documents. Documents are copied on
// the way in and on the way out, so caller-side mutation never corrupts the
// stored state.
//
// If not reimplementing [DocumentFactory] defaults, Insert should accept any
// structs or maps[string]T. Values can be nested structures and/or arrays
// and slices.
//
// For structs, unexported fields will be ignored; If a field has a "mimicdb"
// struct tag, it's value will replace the field name. If tag value contains
// ",omitempty", [nil] values will not be set; If tag value contains
// ",omitzero", uninitialized fields will not be set.
type Collection = domain.Collection

// Cursor provides iteration over a snapshot of query results.
type Cursor = domain.Cursor

// Document represents a record held by a collection.
type Document = domain.Document

// Matcher evaluates whether documents match query criteria.
type Matcher = domain.Matcher

// Modifier applies update operations to documents.
type Modifier = domain.Modifier

// Decoder converts between different data representations.
type Decoder = domain.Decoder

// Comparer provides ordering and comparison for different data types.
type Comparer = domain.Comparer

// Projector narrows documents down to a projection of their fields.
type Projector = domain.Projector

// TimeGetter provides current time for timestamping operations.
type TimeGetter = domain.TimeGetter

// IDGenerator is used to create unique IDs for new instances of [Document].
type IDGenerator = domain.IDGenerator

// CollectionStats reports the size of a collection.
type CollectionStats = domain.CollectionStats

// DatabaseStats reports the size of a database.
type DatabaseStats = domain.DatabaseStats

// Sort represents an ordered list of fields which should be used,
// respectively, to sort the results of a query.
type Sort = []SortName

// SortName represents a single field and the order which should be used to
// sort it, a positive value meaning ascending order and a negative value
// meaning descending order.
type SortName = domain.SortName

// DocumentFactory represents a [Document] constructor that can be
// reimplemented. It should accept structured data types and create an
// equivalent [Document], respecting the given structure. If nil is given as
// argument, a document of length 0 should be returned.
type DocumentFactory = domain.DocumentFactory

// CursorFactory represents a [Cursor] constructor that can be reimplemented.
// It should receive an ordered set of documents and allow user to decode
// them into a data type of their choice.
type CursorFactory = domain.CursorFactory

// FindOption configures query behavior through the functional options
// pattern.
type FindOption = domain.FindOption

// WithProjection specifies which fields to include or exclude from query
// results.
func WithProjection(p map[string]int64) FindOption {
	return domain.WithFindProjection(p)
}

// WithSkip sets the number of documents to skip in query results.
func WithSkip(s int64) FindOption {
	return domain.WithFindSkip(s)
}

// WithLimit sets the maximum number of documents to return.
func WithLimit(l int64) FindOption {
	return domain.WithFindLimit(l)
}

// WithSort specifies the sort order for query results.
func WithSort(s Sort) FindOption {
	return domain.WithFindSort(s)
}

// UpdateOption configures update behavior through the functional options
// pattern.
type UpdateOption = domain.UpdateOption

// WithUpdateMulti enables updating multiple documents that match the query.
func WithUpdateMulti(m bool) UpdateOption {
	return domain.WithUpdateMulti(m)
}

// WithUpsert enables inserting a document if no matches are found.
func WithUpsert(u bool) UpdateOption {
	return domain.WithUpsert(u)
}

// RemoveOption configures remove behavior through the functional options
// pattern.
type RemoveOption = domain.RemoveOption

// WithRemoveMulti enables removing multiple documents that match the query.
func WithRemoveMulti(m bool) RemoveOption {
	return domain.WithRemoveMulti(m)
}

// CursorOption configures cursor behavior through the functional options
// pattern.
type CursorOption = domain.CursorOption

// WithCursorDecoder sets the decoder for converting cursor results.
func WithCursorDecoder(d Decoder) CursorOption {
	return domain.WithCursorDecoder(d)
}

// Option configures client behavior through the functional options pattern.
type Option = registry.Option

// WithTimestamps enables automatic timestamping of documents with createdAt
// and updatedAt fields.
func WithTimestamps(t bool) Option {
	return registry.WithTimestamps(t)
}

// WithIDLength sets the length of generated document ids.
func WithIDLength(l int) Option {
	return registry.WithIDLength(l)
}

// WithComparer sets the comparer for value comparison operations.
func WithComparer(c Comparer) Option {
	return registry.WithComparer(c)
}

// WithMatcher sets the matcher implementation for query evaluation.
func WithMatcher(m Matcher) Option {
	return registry.WithMatcher(m)
}

// WithModifier sets the modifier implementation for document updates.
func WithModifier(m Modifier) Option {
	return registry.WithModifier(m)
}

// WithDecoder sets the decoder for data format conversions.
func WithDecoder(d Decoder) Option {
	return registry.WithDecoder(d)
}

// WithProjector sets the projector applied to query results.
func WithProjector(p Projector) Option {
	return registry.WithProjector(p)
}

// WithIDGenerator sets the idgenerator to create new document ids.
func WithIDGenerator(ig IDGenerator) Option {
	return registry.WithIDGenerator(ig)
}

// WithRandomReader sets the reader to be used by the IDGenerator.
func WithRandomReader(r io.Reader) Option {
	return registry.WithRandomReader(r)
}

// WithTimeGetter sets the time getter for timestamping operations.
func WithTimeGetter(t TimeGetter) Option {
	return registry.WithTimeGetter(t)
}

// WithDocumentFactory sets the factory function for creating [Document]
// instances.
func WithDocumentFactory(d DocumentFactory) Option {
	return registry.WithDocumentFactory(d)
}

// WithCursorFactory sets the factory function for creating cursor instances.
func WithCursorFactory(c CursorFactory) Option {
	return registry.WithCursorFactory(c)
}
