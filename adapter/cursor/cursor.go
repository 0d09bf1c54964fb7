// Package cursor contains the default [domain.Cursor] implementation.
package cursor

import (
	"context"
	"fmt"

	"github.com/mimicdb/mimicdb/adapter/decoder"
	"github.com/mimicdb/mimicdb/domain"
	"github.com/mimicdb/mimicdb/pkg/ctxsync"
)

// Cursor implements domain.Cursor over a pre-computed snapshot of results.
type Cursor struct {
	data      []domain.Document
	ctx       context.Context
	mu        *ctxsync.Mutex
	dec       domain.Decoder
	started   bool
	storedErr error
}

// NewCursor returns a new implementation of domain.Cursor over the given
// snapshot. The snapshot is iterated in order; the cursor never touches the
// backing store again.
func NewCursor(ctx context.Context, dt []domain.Document, options ...domain.CursorOption) (domain.Cursor, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	opts := domain.CursorOptions{
		Decoder: decoder.NewDecoder(),
	}
	for _, option := range options {
		option(&opts)
	}

	return &Cursor{
		data: dt,
		ctx:  ctx,
		mu:   ctxsync.NewMutex(),
		dec:  opts.Decoder,
	}, nil
}

// Next implements domain.Cursor.
func (c *Cursor) Next() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.data) == 0 {
		return false
	}
	if c.started {
		c.data = c.data[1:]
	}
	c.started = true
	return len(c.data) > 0
}

// Decode implements domain.Cursor.
func (c *Cursor) Decode(target any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.storedErr != nil {
		return c.storedErr
	}
	if !c.started {
		return domain.ErrDecodeBeforeNext
	}
	if len(c.data) == 0 {
		return fmt.Errorf("called Decode on exhausted cursor")
	}
	return c.dec.Decode(c.data[0], target)
}

// All implements domain.Cursor. It drains the remaining results into the
// target slice and closes the cursor.
func (c *Cursor) All(ctx context.Context, target any) error {
	innerCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	go func() {
		select {
		case <-ctx.Done():
			cancel(context.Cause(ctx))
		case <-c.ctx.Done():
			cancel(context.Cause(c.ctx))
		case <-innerCtx.Done():
		}
	}()
	if err := c.mu.LockWithContext(innerCtx); err != nil {
		return err
	}
	defer c.mu.Unlock()
	if c.storedErr != nil {
		return c.storedErr
	}

	dt := make([]any, len(c.data))
	for n, doc := range c.data {
		dt[n] = doc
	}
	c.data = nil
	return c.dec.Decode(dt, target)
}

// Err implements domain.Cursor.
func (c *Cursor) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storedErr
}

// Close implements domain.Cursor.
func (c *Cursor) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.data) > 0 {
		c.storedErr = domain.ErrCursorClosed
	}
	c.data = nil
	return nil
}
