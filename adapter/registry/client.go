// Package registry contains the default implementations of [domain.Client],
// [domain.Database] and [domain.Collection]: an in-memory, name-keyed store
// where databases and collections are created on first access.
package registry

import (
	"context"
	"slices"

	"github.com/mimicdb/mimicdb/adapter/comparer"
	"github.com/mimicdb/mimicdb/adapter/cursor"
	"github.com/mimicdb/mimicdb/adapter/data"
	"github.com/mimicdb/mimicdb/adapter/decoder"
	"github.com/mimicdb/mimicdb/adapter/idgenerator"
	"github.com/mimicdb/mimicdb/adapter/matcher"
	"github.com/mimicdb/mimicdb/adapter/modifier"
	"github.com/mimicdb/mimicdb/adapter/projector"
	"github.com/mimicdb/mimicdb/adapter/timegetter"
	"github.com/mimicdb/mimicdb/domain"
	"github.com/mimicdb/mimicdb/pkg/ctxsync"
)

// DefaultIDLength is the length of generated _id values.
const DefaultIDLength = 16

// config holds the collaborators shared by every database and collection
// spawned from one client.
type config struct {
	timestampData   bool
	idLength        int
	comparer        domain.Comparer
	matcher         domain.Matcher
	modifier        domain.Modifier
	decoder         domain.Decoder
	projector       domain.Projector
	idGenerator     domain.IDGenerator
	timeGetter      domain.TimeGetter
	documentFactory domain.DocumentFactory
	cursorFactory   domain.CursorFactory
}

// Client implements domain.Client.
type Client struct {
	mu  *ctxsync.Mutex
	dbs map[string]*Database
	cfg *config
}

// NewClient returns a new implementation of domain.Client holding all of its
// data in memory.
func NewClient(options ...Option) domain.Client {
	docFac := data.NewDocument
	comp := comparer.NewComparer()
	cfg := config{
		idLength: DefaultIDLength,
		comparer: comp,
		matcher: matcher.NewMatcher(
			matcher.WithDocumentFactory(docFac),
			matcher.WithComparer(comp),
		),
		modifier: modifier.NewModifier(
			modifier.WithDocumentFactory(docFac),
			modifier.WithComparer(comp),
		),
		decoder:         decoder.NewDecoder(),
		projector:       projector.NewProjector(projector.WithDocumentFactory(docFac)),
		idGenerator:     idgenerator.NewIDGenerator(),
		timeGetter:      timegetter.NewTimeGetter(),
		documentFactory: docFac,
		cursorFactory:   cursor.NewCursor,
	}
	for _, option := range options {
		option(&cfg)
	}

	return &Client{
		mu:  ctxsync.NewMutex(),
		dbs: make(map[string]*Database),
		cfg: &cfg,
	}
}

// Database implements domain.Client.
func (c *Client) Database(name string) domain.Database {
	c.mu.Lock()
	defer c.mu.Unlock()
	if db, ok := c.dbs[name]; ok {
		return db
	}
	db := newDatabase(name, c.cfg)
	c.dbs[name] = db
	return db
}

// ListDatabaseNames implements domain.Client.
func (c *Client) ListDatabaseNames(ctx context.Context) ([]string, error) {
	if err := c.mu.LockWithContext(ctx); err != nil {
		return nil, err
	}
	defer c.mu.Unlock()
	names := make([]string, 0, len(c.dbs))
	for name := range c.dbs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// DropDatabase implements domain.Client. Dropping an absent database is a
// no-op.
func (c *Client) DropDatabase(ctx context.Context, name string) error {
	if err := c.mu.LockWithContext(ctx); err != nil {
		return err
	}
	defer c.mu.Unlock()
	db, ok := c.dbs[name]
	if !ok {
		return nil
	}
	delete(c.dbs, name)
	return db.Drop(context.WithoutCancel(ctx))
}
