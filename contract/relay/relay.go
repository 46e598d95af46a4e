package relay

import "context"

// Message is the wire unit handed to a Publisher. Body is an opaque,
// already-serialized payload; Topic guides routing in the transport.
type Message struct {
	Topic   string
	Key     string
	Body    []byte
	Headers map[string]string
}

// Publisher abstracts publishing messages to a broker/bus.
// Library users provide an implementation that maps to Kafka/NATS/RabbitMQ etc.
// Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, m Message) error
}

// PublishOptions controls a single publish.
type PublishOptions struct {
	TopicOverride string
	Key           string
	Headers       map[string]string
}
