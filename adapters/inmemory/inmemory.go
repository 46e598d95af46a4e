package inmemory

import (
	"context"
	"sync"

	crelay "github.com/next-trace/scg-signal/contract/relay"
)

// Publisher is a thread-safe in-memory implementation of crelay.Publisher.
// It records published messages for testing and examples.
type Publisher struct {
	mu       sync.Mutex
	Messages []crelay.Message
}

// Ensure Publisher implements the contract.
var _ crelay.Publisher = (*Publisher)(nil)

// New creates a new in-memory publisher instance.
func New() *Publisher { return &Publisher{} }

func (p *Publisher) Publish(ctx context.Context, m crelay.Message) error {
	p.mu.Lock()
	p.Messages = append(p.Messages, m)
	p.mu.Unlock()

	return nil
}

// Recorded returns a copy of the messages published so far.
func (p *Publisher) Recorded() []crelay.Message {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]crelay.Message, len(p.Messages))
	copy(out, p.Messages)

	return out
}
