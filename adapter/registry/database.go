package registry

import (
	"context"
	"slices"

	"github.com/mimicdb/mimicdb/domain"
	"github.com/mimicdb/mimicdb/pkg/ctxsync"
)

// Database implements domain.Database.
type Database struct {
	name  string
	mu    *ctxsync.Mutex
	colls map[string]*Collection
	cfg   *config
}

func newDatabase(name string, cfg *config) *Database {
	return &Database{
		name:  name,
		mu:    ctxsync.NewMutex(),
		colls: make(map[string]*Collection),
		cfg:   cfg,
	}
}

// Name implements domain.Database.
func (d *Database) Name() string {
	return d.name
}

// Collection implements domain.Database.
func (d *Database) Collection(name string) domain.Collection {
	d.mu.Lock()
	defer d.mu.Unlock()
	if coll, ok := d.colls[name]; ok {
		return coll
	}
	coll := newCollection(name, d, d.cfg)
	d.colls[name] = coll
	return coll
}

// ListCollectionNames implements domain.Database.
func (d *Database) ListCollectionNames(ctx context.Context) ([]string, error) {
	if err := d.mu.LockWithContext(ctx); err != nil {
		return nil, err
	}
	defer d.mu.Unlock()
	names := make([]string, 0, len(d.colls))
	for name := range d.colls {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// DropCollection implements domain.Database. Dropping an absent collection
// is a no-op.
func (d *Database) DropCollection(ctx context.Context, name string) error {
	if err := d.mu.LockWithContext(ctx); err != nil {
		return err
	}
	defer d.mu.Unlock()
	coll, ok := d.colls[name]
	if !ok {
		return nil
	}
	delete(d.colls, name)
	return coll.clear(context.WithoutCancel(ctx))
}

// Drop implements domain.Database.
func (d *Database) Drop(ctx context.Context) error {
	if err := d.mu.LockWithContext(ctx); err != nil {
		return err
	}
	defer d.mu.Unlock()
	ctx = context.WithoutCancel(ctx)
	for name, coll := range d.colls {
		if err := coll.clear(ctx); err != nil {
			return err
		}
		delete(d.colls, name)
	}
	return nil
}

// Stats implements domain.Database.
func (d *Database) Stats(ctx context.Context) (domain.DatabaseStats, error) {
	if err := d.mu.LockWithContext(ctx); err != nil {
		return domain.DatabaseStats{}, err
	}
	defer d.mu.Unlock()
	stats := domain.DatabaseStats{Name: d.name, Collections: int64(len(d.colls))}
	for _, coll := range d.colls {
		collStats, err := coll.Stats(ctx)
		if err != nil {
			return domain.DatabaseStats{}, err
		}
		stats.Documents += collStats.Documents
	}
	return stats, nil
}
