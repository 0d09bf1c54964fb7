package domain

import "context"

// CollectionStats reports bookkeeping numbers for a single collection.
type CollectionStats struct {
	Name      string `mimicdb:"name"`
	Documents int64  `mimicdb:"documents"`
}

// DatabaseStats reports bookkeeping numbers for a database and the
// collections it holds.
type DatabaseStats struct {
	Name        string `mimicdb:"name"`
	Collections int64  `mimicdb:"collections"`
	Documents   int64  `mimicdb:"documents"`
}

// Sort represents an ordered list of fields which should be used to sort
// query results, applied in sequence.
type Sort = []SortName

// SortName represents a single field and the order which should be used to
// sort it. A positive Order value means ascending order and a negative value
// means descending order.
type SortName struct {
	Key   string
	Order int64
}

// DocumentFactory represents a function that constructs [Document] instances
// from structured data types. If nil is provided, returns an empty document.
type DocumentFactory = func(any) (Document, error)

// CursorFactory represents a function that constructs [Cursor] instances
// over a snapshot of documents with configurable options.
type CursorFactory = func(context.Context, []Document, ...CursorOption) (Cursor, error)
