// Package domain contains the interfaces and option types of MimicDB.
//
// This package defines the core interfaces that must be implemented by
// adapters, as well as functional options for configuring queries, updates,
// removes and client construction.
package domain

import (
	"context"
	"iter"
	"time"
)

// Document represents a record held by a collection: an unordered mapping
// from field names to loosely typed values (strings, numbers, booleans, nil,
// arrays and nested documents). An absent field is distinct from a field set
// to nil; Has tells them apart. Document is read by one goroutine at a time
// and doesn't need to be concurrency safe.
type Document interface {
	// ID returns the document _id, if any, or nil.
	ID() any
	// Get returns the value under the given key, or nil if unset.
	Get(string) any
	// Set sets the value under the given key.
	Set(string, any)
	// Unset removes the given key.
	Unset(string)
	// Has reports whether a value is set under the given key.
	Has(string) bool
	// Iter returns an unordered sequence of key-value pairs in the
	// document.
	Iter() iter.Seq2[string, any]
	// Keys returns an unordered sequence of keys in the document.
	Keys() iter.Seq[string]
	// Len returns the number of set fields in the document.
	Len() int
}

// Matcher evaluates whether documents match query criteria. Implementations
// are pure predicates: they hold no state across calls and never mutate the
// document or the query.
type Matcher interface {
	// Match returns true if the value matches the query. A nil or empty
	// query matches everything.
	Match(any, any) (bool, error)
	// MatchAll returns the documents matching the query, preserving the
	// input relative order.
	MatchAll([]Document, any) ([]Document, error)
}

// Comparer provides ordering and comparison operations for different data
// types.
type Comparer interface {
	// Compare returns -1, 0, or 1 based on the comparison of two values.
	Compare(any, any) (int, error)
	// Comparable returns true if two values can be ordered against each
	// other.
	Comparable(any, any) bool
}

// Modifier applies update operations to documents.
type Modifier interface {
	// Modify applies an update query to a document and returns the
	// result as a new document, leaving the input untouched.
	Modify(Document, Document) (Document, error)
	// Upsert builds the document to insert when an update with upsert
	// enabled matches nothing, seeding it from the query's literal
	// fields before applying the update query.
	Upsert(Document, Document) (Document, error)
}

// Decoder converts documents into user-defined types.
type Decoder interface {
	// Decode converts from one data representation to another.
	Decode(any, any) error
}

// IDGenerator is used to create unique ids for new instances of [Document].
type IDGenerator interface {
	// GenerateID returns a new id with the given length.
	GenerateID(int) (string, error)
}

// TimeGetter provides current time for timestamping operations.
type TimeGetter interface {
	// GetTime returns the current time.
	GetTime() time.Time
}

// Projector narrows documents down to a projection of their fields.
type Projector interface {
	// Project applies an include/exclude projection to each document and
	// returns the projected copies.
	Project([]Document, map[string]int64) ([]Document, error)
}

// Cursor provides iteration over a snapshot of query results.
type Cursor interface {
	// Next advances the cursor to the next document, returning true if
	// one is available.
	Next() bool
	// Decode decodes the current document into the target. Next must
	// have been called at least once.
	Decode(any) error
	// All decodes every result into the target, which must be a pointer
	// to a slice.
	All(context.Context, any) error
	// Err returns any error that occurred during iteration.
	Err() error
	// Close releases cursor resources and should be called when done.
	Close() error
}

// Collection is a named, ordered set of documents. All operations are safe
// for concurrent use; documents are copied on the way in and on the way out,
// so caller-side mutation never corrupts the stored state.
type Collection interface {
	// Name returns the collection name.
	Name() string

	// Insert adds one or more documents and returns a cursor over the
	// stored versions, including generated ids. Accepts structs and
	// maps; field names cannot begin with '$'.
	Insert(ctx context.Context, newDocs ...any) (Cursor, error)

	// Find returns a cursor over all documents matching the query, in
	// insertion order. Options: [WithFindSkip], [WithFindLimit],
	// [WithFindSort], [WithFindProjection].
	Find(ctx context.Context, query any, options ...FindOption) (Cursor, error)

	// FindOne decodes the first document matching the query into target.
	// Returns [ErrNotFound] when nothing matches.
	FindOne(ctx context.Context, query any, target any, options ...FindOption) error

	// Count returns the number of documents matching the query.
	Count(ctx context.Context, query any) (int64, error)

	// Update modifies the first document matching the query using the
	// update query and returns a cursor over the affected documents.
	// Options: [WithUpdateMulti], [WithUpsert].
	Update(ctx context.Context, query any, updateQuery any, options ...UpdateOption) (Cursor, error)

	// Remove deletes the first document matching the query and returns
	// the number of documents removed. Option [WithRemoveMulti] deletes
	// every match.
	Remove(ctx context.Context, query any, options ...RemoveOption) (int64, error)

	// Drop removes the collection and all its documents from the parent
	// database.
	Drop(ctx context.Context) error

	// Stats reports the collection name and document count.
	Stats(ctx context.Context) (CollectionStats, error)
}

// Database is a name-keyed registry of collections. Collections are created
// on first access.
type Database interface {
	// Name returns the database name.
	Name() string
	// Collection returns the named collection, creating it on first
	// access.
	Collection(name string) Collection
	// ListCollectionNames returns the names of the existing collections
	// in lexical order.
	ListCollectionNames(ctx context.Context) ([]string, error)
	// DropCollection removes the named collection. Dropping an absent
	// collection is a no-op.
	DropCollection(ctx context.Context, name string) error
	// Drop removes every collection in the database.
	Drop(ctx context.Context) error
	// Stats reports the database name, collection count and total
	// document count.
	Stats(ctx context.Context) (DatabaseStats, error)
}

// Client is the entry point of the store: a name-keyed registry of
// databases, created on first access. It imitates the shape of a
// document-database client without any networking underneath.
type Client interface {
	// Database returns the named database, creating it on first access.
	Database(name string) Database
	// ListDatabaseNames returns the names of the existing databases in
	// lexical order.
	ListDatabaseNames(ctx context.Context) ([]string, error)
	// DropDatabase removes the named database and everything in it.
	DropDatabase(ctx context.Context, name string) error
}
