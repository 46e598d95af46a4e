package relay_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	rerr "github.com/next-trace/scg-signal/contract/errors"
	crelay "github.com/next-trace/scg-signal/contract/relay"
	"github.com/next-trace/scg-signal/relay"
)

type countingPub struct {
	mu    sync.Mutex
	count int
	err   error
}

func (c *countingPub) Publish(ctx context.Context, m crelay.Message) error {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()

	return c.err
}

func TestFanout_PublishesToAllSinks(t *testing.T) {
	a, b := &countingPub{}, &countingPub{}
	f := relay.NewFanout(a, b)

	if err := f.Publish(t.Context(), crelay.Message{Topic: "t"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if a.count != 1 || b.count != 1 {
		t.Fatalf("want both sinks hit once, got a=%d b=%d", a.count, b.count)
	}
}

func TestFanout_FailingSinkDoesNotStopOthers(t *testing.T) {
	bad := &countingPub{err: errors.New("down")}
	good := &countingPub{}
	f := relay.NewFanout(bad, good)

	if err := f.Publish(t.Context(), crelay.Message{Topic: "t"}); err == nil {
		t.Fatal("want error from failing sink")
	}

	if good.count != 1 {
		t.Fatalf("healthy sink must still be hit, got %d", good.count)
	}
}

func TestFanout_Empty(t *testing.T) {
	f := relay.NewFanout()
	if err := f.Publish(t.Context(), crelay.Message{}); !errors.Is(err, rerr.ErrNotConfigured) {
		t.Fatalf("want ErrNotConfigured, got %v", err)
	}
}
