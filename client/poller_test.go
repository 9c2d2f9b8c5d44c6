package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled")
	}
}

func TestPoller(t *testing.T) {
	t.Run(`a new round cancels the previous in-flight round`, func(t *testing.T) {
		p := NewPoller("requisition-list", time.Minute)
		rounds := make(chan context.Context, 2)
		job := func(ctx context.Context) error {
			rounds <- ctx
			<-ctx.Done()
			return ctx.Err()
		}

		p.fire(context.Background(), job)
		first := <-rounds
		require.Nil(t, first.Err())

		p.fire(context.Background(), job)
		waitDone(t, first)

		second := <-rounds
		require.Nil(t, second.Err())
		p.Stop()
		waitDone(t, second)
	})

	t.Run(`stop without an in-flight round is a no-op`, func(t *testing.T) {
		p := NewPoller("idle", time.Minute)
		p.Stop()
		p.Stop()
	})

	t.Run(`run exits when the outer context finishes`, func(t *testing.T) {
		p := NewPoller("requisition-list", time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			p.Run(ctx, func(ctx context.Context) error { return nil })
			close(done)
		}()
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("poller did not stop")
		}
	})
}
