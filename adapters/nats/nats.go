package nats

import (
	"context"
	"errors"
	"fmt"

	rerr "github.com/next-trace/scg-signal/contract/errors"
	crelay "github.com/next-trace/scg-signal/contract/relay"
)

// Client is a minimal NATS-like publisher interface decoupled from any concrete library.
// Users can provide a wrapper around their NATS connection to satisfy this.
type Client interface {
	// Publish publishes a message to a subject with optional headers.
	Publish(subject string, data []byte, headers map[string]string) error
}

// Adapter implements crelay.Publisher using an injected NATS-like Client.
// The message topic maps directly to the NATS subject.
type Adapter struct {
	Client Client
}

// Ensure Adapter implements the contract.
var _ crelay.Publisher = (*Adapter)(nil)

// New creates a new NATS adapter instance with the provided client.
func New(c Client) *Adapter { return &Adapter{Client: c} }

func (a *Adapter) Publish(ctx context.Context, m crelay.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Client == nil {
		return fmt.Errorf("nats publish: %w", rerr.ErrNotConfigured)
	}

	if err := a.Client.Publish(m.Topic, m.Body, messageHeaders(m)); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("nats publish %q: %w", m.Topic, errors.Join(rerr.ErrPublishFailed, err))
	}

	return nil
}

func messageHeaders(m crelay.Message) map[string]string {
	h := make(map[string]string, len(m.Headers)+1)
	for k, v := range m.Headers {
		h[k] = v
	}

	if m.Key != "" {
		h["key"] = m.Key
	}

	return h
}
