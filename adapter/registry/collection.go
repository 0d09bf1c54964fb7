package registry

import (
	"context"
	"slices"
	"strings"

	"github.com/mimicdb/mimicdb/domain"
	"github.com/mimicdb/mimicdb/pkg/ctxsync"
)

// Collection implements domain.Collection. Documents are kept in insertion
// order; every operation locks the collection, and documents are copied both
// on the way in and on the way out.
type Collection struct {
	name     string
	db       *Database
	executor *ctxsync.Mutex
	docs     []domain.Document
	cfg      *config
}

func newCollection(name string, db *Database, cfg *config) *Collection {
	return &Collection{
		name:     name,
		db:       db,
		executor: ctxsync.NewMutex(),
		cfg:      cfg,
	}
}

// Name implements domain.Collection.
func (c *Collection) Name() string {
	return c.name
}

// Insert implements domain.Collection.
func (c *Collection) Insert(ctx context.Context, newDocs ...any) (domain.Cursor, error) {
	if err := c.executor.LockWithContext(ctx); err != nil {
		return nil, err
	}
	defer c.executor.Unlock()

	prepared := make([]domain.Document, len(newDocs))
	for n, newDoc := range newDocs {
		doc, err := c.prepareDocumentForInsertion(newDoc)
		if err != nil {
			return nil, err
		}
		if c.idExists(doc.ID(), prepared[:n]...) {
			return nil, domain.ErrDuplicateKey{ID: doc.ID()}
		}
		prepared[n] = doc
	}
	c.docs = append(c.docs, prepared...)

	res, err := c.cloneDocs(prepared)
	if err != nil {
		return nil, err
	}
	return c.cfg.cursorFactory(ctx, res, domain.WithCursorDecoder(c.cfg.decoder))
}

func (c *Collection) prepareDocumentForInsertion(newDoc any) (domain.Document, error) {
	doc, err := c.cfg.documentFactory(newDoc)
	if err != nil {
		return nil, err
	}
	if err := c.checkDocument(doc); err != nil {
		return nil, err
	}
	if !doc.Has("_id") {
		id, err := c.newID()
		if err != nil {
			return nil, err
		}
		doc.Set("_id", id)
	}
	if c.cfg.timestampData {
		now := c.cfg.timeGetter.GetTime()
		if !doc.Has("createdAt") {
			doc.Set("createdAt", now)
		}
		if !doc.Has("updatedAt") {
			doc.Set("updatedAt", now)
		}
	}
	return doc, nil
}

func (c *Collection) checkDocument(doc domain.Document) error {
	for k, v := range doc.Iter() {
		if strings.HasPrefix(k, "$") {
			return domain.ErrFieldName{Field: k}
		}
		if subDoc, ok := v.(domain.Document); ok {
			if err := c.checkDocument(subDoc); err != nil {
				return err
			}
		}
	}
	return nil
}

// newID keeps generating until the id is free. Collisions are close to
// impossible at the default length, so the loop almost always runs once.
func (c *Collection) newID() (string, error) {
	for {
		id, err := c.cfg.idGenerator.GenerateID(c.cfg.idLength)
		if err != nil {
			return "", err
		}
		if !c.idExists(id) {
			return id, nil
		}
	}
}

func (c *Collection) idExists(id any, pending ...domain.Document) bool {
	for _, doc := range c.docs {
		if comp, err := c.cfg.comparer.Compare(doc.ID(), id); err == nil && comp == 0 {
			return true
		}
	}
	for _, doc := range pending {
		if comp, err := c.cfg.comparer.Compare(doc.ID(), id); err == nil && comp == 0 {
			return true
		}
	}
	return false
}

// Find implements domain.Collection.
func (c *Collection) Find(ctx context.Context, query any, options ...domain.FindOption) (domain.Cursor, error) {
	if err := c.executor.LockWithContext(ctx); err != nil {
		return nil, err
	}
	defer c.executor.Unlock()
	return c.find(ctx, query, options...)
}

func (c *Collection) find(ctx context.Context, query any, options ...domain.FindOption) (domain.Cursor, error) {
	queryDoc, err := c.cfg.documentFactory(query)
	if err != nil {
		return nil, err
	}

	var opt domain.FindOptions
	for _, option := range options {
		option(&opt)
	}

	res, err := c.cfg.matcher.MatchAll(c.docs, queryDoc)
	if err != nil {
		return nil, err
	}

	if len(opt.Sort) != 0 {
		c.sortDocs(res, opt.Sort)
	}

	skip := min(max(0, opt.Skip), int64(len(res)))
	res = res[skip:]

	if opt.Limit > 0 {
		res = res[:min(opt.Limit, int64(len(res)))]
	}

	if len(opt.Projection) != 0 {
		res, err = c.cfg.projector.Project(res, opt.Projection)
		if err != nil {
			return nil, err
		}
	}

	res, err = c.cloneDocs(res)
	if err != nil {
		return nil, err
	}

	return c.cfg.cursorFactory(ctx, res, domain.WithCursorDecoder(c.cfg.decoder))
}

// sortDocs orders docs by the given criteria. Values the comparer refuses to
// order keep their relative position.
func (c *Collection) sortDocs(docs []domain.Document, criteria domain.Sort) {
	slices.SortStableFunc(docs, func(a, b domain.Document) int {
		for _, criterion := range criteria {
			comp, err := c.cfg.comparer.Compare(a.Get(criterion.Key), b.Get(criterion.Key))
			if err != nil || comp == 0 {
				continue
			}
			if criterion.Order < 0 {
				return -comp
			}
			return comp
		}
		return 0
	})
}

func (c *Collection) cloneDocs(docs []domain.Document) ([]domain.Document, error) {
	res := make([]domain.Document, len(docs))
	for n, doc := range docs {
		clone, err := c.cfg.documentFactory(doc)
		if err != nil {
			return nil, err
		}
		res[n] = clone
	}
	return res, nil
}

// FindOne implements domain.Collection.
func (c *Collection) FindOne(ctx context.Context, query any, target any, options ...domain.FindOption) error {
	if err := c.executor.LockWithContext(ctx); err != nil {
		return err
	}
	defer c.executor.Unlock()

	options = append(options, domain.WithFindLimit(1))

	cur, err := c.find(ctx, query, options...)
	if err != nil {
		return err
	}
	defer cur.Close()
	if !cur.Next() {
		return domain.ErrNotFound
	}
	return cur.Decode(target)
}

// Count implements domain.Collection.
func (c *Collection) Count(ctx context.Context, query any) (int64, error) {
	if err := c.executor.LockWithContext(ctx); err != nil {
		return 0, err
	}
	defer c.executor.Unlock()

	queryDoc, err := c.cfg.documentFactory(query)
	if err != nil {
		return 0, err
	}
	res, err := c.cfg.matcher.MatchAll(c.docs, queryDoc)
	if err != nil {
		return 0, err
	}
	return int64(len(res)), nil
}

// Update implements domain.Collection.
func (c *Collection) Update(ctx context.Context, query any, updateQuery any, options ...domain.UpdateOption) (domain.Cursor, error) {
	if err := c.executor.LockWithContext(ctx); err != nil {
		return nil, err
	}
	defer c.executor.Unlock()

	queryDoc, err := c.cfg.documentFactory(query)
	if err != nil {
		return nil, err
	}
	updateDoc, err := c.cfg.documentFactory(updateQuery)
	if err != nil {
		return nil, err
	}

	var opts domain.UpdateOptions
	for _, option := range options {
		option(&opts)
	}

	idxs, err := c.matchingIndexes(queryDoc, opts.Multi)
	if err != nil {
		return nil, err
	}

	if len(idxs) == 0 && opts.Upsert {
		return c.upsert(ctx, queryDoc, updateDoc)
	}

	updated := make([]domain.Document, 0, len(idxs))
	for _, n := range idxs {
		oldDoc := c.docs[n]
		newDoc, err := c.cfg.modifier.Modify(oldDoc, updateDoc)
		if err != nil {
			return nil, err
		}
		if c.cfg.timestampData {
			if oldDoc.Has("createdAt") {
				newDoc.Set("createdAt", oldDoc.Get("createdAt"))
			}
			newDoc.Set("updatedAt", c.cfg.timeGetter.GetTime())
		}
		c.docs[n] = newDoc
		updated = append(updated, newDoc)
	}

	res, err := c.cloneDocs(updated)
	if err != nil {
		return nil, err
	}
	return c.cfg.cursorFactory(ctx, res, domain.WithCursorDecoder(c.cfg.decoder))
}

func (c *Collection) upsert(ctx context.Context, queryDoc, updateDoc domain.Document) (domain.Cursor, error) {
	seeded, err := c.cfg.modifier.Upsert(queryDoc, updateDoc)
	if err != nil {
		return nil, err
	}
	prepared, err := c.prepareDocumentForInsertion(seeded)
	if err != nil {
		return nil, err
	}
	if c.idExists(prepared.ID()) {
		return nil, domain.ErrDuplicateKey{ID: prepared.ID()}
	}
	c.docs = append(c.docs, prepared)

	res, err := c.cloneDocs([]domain.Document{prepared})
	if err != nil {
		return nil, err
	}
	return c.cfg.cursorFactory(ctx, res, domain.WithCursorDecoder(c.cfg.decoder))
}

func (c *Collection) matchingIndexes(queryDoc domain.Document, multi bool) ([]int, error) {
	var idxs []int
	for n, doc := range c.docs {
		matches, err := c.cfg.matcher.Match(doc, queryDoc)
		if err != nil {
			return nil, err
		}
		if !matches {
			continue
		}
		idxs = append(idxs, n)
		if !multi {
			break
		}
	}
	return idxs, nil
}

// Remove implements domain.Collection.
func (c *Collection) Remove(ctx context.Context, query any, options ...domain.RemoveOption) (int64, error) {
	if err := c.executor.LockWithContext(ctx); err != nil {
		return 0, err
	}
	defer c.executor.Unlock()

	queryDoc, err := c.cfg.documentFactory(query)
	if err != nil {
		return 0, err
	}

	var opts domain.RemoveOptions
	for _, option := range options {
		option(&opts)
	}

	idxs, err := c.matchingIndexes(queryDoc, opts.Multi)
	if err != nil {
		return 0, err
	}
	if len(idxs) == 0 {
		return 0, nil
	}

	remaining := make([]domain.Document, 0, len(c.docs)-len(idxs))
	removed := 0
	for n, doc := range c.docs {
		if removed < len(idxs) && idxs[removed] == n {
			removed++
			continue
		}
		remaining = append(remaining, doc)
	}
	c.docs = remaining

	return int64(removed), nil
}

// Drop implements domain.Collection.
func (c *Collection) Drop(ctx context.Context) error {
	return c.db.DropCollection(ctx, c.name)
}

// Stats implements domain.Collection.
func (c *Collection) Stats(ctx context.Context) (domain.CollectionStats, error) {
	if err := c.executor.LockWithContext(ctx); err != nil {
		return domain.CollectionStats{}, err
	}
	defer c.executor.Unlock()
	return domain.CollectionStats{
		Name:      c.name,
		Documents: int64(len(c.docs)),
	}, nil
}

func (c *Collection) clear(ctx context.Context) error {
	if err := c.executor.LockWithContext(ctx); err != nil {
		return err
	}
	defer c.executor.Unlock()
	c.docs = nil
	return nil
}
