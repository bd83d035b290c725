package async

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunRecovers(t *testing.T) {
	done := make(chan struct{})
	Run(func() {
		defer close(done)
		panic("boom")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
}

func TestGroupLimit(t *testing.T) {
	var running, peak int32
	g := NewGroup(context.Background(), 2)

	for i := 0; i < 8; i++ {
		g.Go(func(ctx context.Context) error {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if peak > 2 {
		t.Fatalf("got %d tasks in flight", peak)
	}
}

func TestGroupFirstError(t *testing.T) {
	errBad := errors.New("bad")
	g := NewGroup(context.Background(), 0)

	g.Go(func(ctx context.Context) error { return errBad })
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	if err := g.Wait(); !errors.Is(err, errBad) {
		t.Fatalf("got %v", err)
	}
}

func TestGroupPanic(t *testing.T) {
	g := NewGroup(context.Background(), 1)
	g.Go(func(ctx context.Context) error { panic("boom") })

	err := g.Wait()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("got %v", err)
	}
}
