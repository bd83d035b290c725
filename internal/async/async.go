package async

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var logger = log.WithField("component", "async")

func pcall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("async/pcall: Error=%v", r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return fn()
}

// Run calls fn in a new goroutine. A panic is logged instead of crashing the
// process.
func Run(fn func()) {
	go pcall(func() error { fn(); return nil })
}

// Group runs tasks concurrently with at most limit of them in flight.
type Group struct {
	g   *errgroup.Group
	ctx context.Context
}

// NewGroup returns a group whose context is cancelled by the first failing
// task. A limit <= 0 means no limit.
func NewGroup(ctx context.Context, limit int) *Group {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	return &Group{g: g, ctx: ctx}
}

// Context is cancelled once a task fails or Wait returns.
func (g *Group) Context() context.Context {
	return g.ctx
}

// Go starts fn, blocking while the group is at its limit. Panics become
// errors.
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.g.Go(func() error {
		return pcall(func() error { return fn(g.ctx) })
	})
}

// Wait blocks until every task has returned and reports the first error.
func (g *Group) Wait() error {
	return g.g.Wait()
}
