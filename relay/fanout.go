package relay

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	rerr "github.com/next-trace/scg-signal/contract/errors"
	crelay "github.com/next-trace/scg-signal/contract/relay"
)

// Fanout is a Publisher that forwards each message to every configured
// publisher concurrently. A failing sink does not stop the others; the
// first error observed is returned after all sinks finish.
type Fanout struct {
	pubs []crelay.Publisher
}

var _ crelay.Publisher = (*Fanout)(nil)

// NewFanout constructs a Fanout over the given publishers.
func NewFanout(pubs ...crelay.Publisher) *Fanout {
	return &Fanout{pubs: pubs}
}

// Publish sends m to all configured publishers and waits for all of them.
func (f *Fanout) Publish(ctx context.Context, m crelay.Message) error {
	if len(f.pubs) == 0 {
		return fmt.Errorf("relay fanout: %w", rerr.ErrNotConfigured)
	}

	var g errgroup.Group
	for _, p := range f.pubs {
		g.Go(func() error { return p.Publish(ctx, m) })
	}

	return g.Wait()
}
