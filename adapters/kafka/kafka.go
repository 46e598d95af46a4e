package kafka

import (
	"context"
	"errors"
	"fmt"

	rerr "github.com/next-trace/scg-signal/contract/errors"
	crelay "github.com/next-trace/scg-signal/contract/relay"
)

// Writer is a minimal Kafka-like writer interface.
// Users can adapt franz-go, segmentio/kafka-go or any other client to this.
type Writer interface {
	Write(topic string, key, value []byte, headers map[string]string) error
}

// Adapter implements crelay.Publisher using an injected Writer.
// The message key becomes the Kafka record key for partition affinity.
type Adapter struct {
	Writer Writer
}

var _ crelay.Publisher = (*Adapter)(nil)

// New creates a new Kafka adapter instance with the provided writer.
func New(w Writer) *Adapter { return &Adapter{Writer: w} }

func (a *Adapter) Publish(ctx context.Context, m crelay.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if a.Writer == nil {
		return fmt.Errorf("kafka publish: %w", rerr.ErrNotConfigured)
	}

	var key []byte
	if m.Key != "" {
		key = []byte(m.Key)
	}

	if err := a.Writer.Write(m.Topic, key, m.Body, m.Headers); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		return fmt.Errorf("kafka publish %q: %w", m.Topic, errors.Join(rerr.ErrPublishFailed, err))
	}

	return nil
}
