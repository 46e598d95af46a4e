package errors

// Error codes for the relay contracts. Keep stable; used across adapters and relay.
const (
	ErrCodeNotConfigured       = "relay.not_configured"
	ErrCodePublishFailed       = "relay.publish_failed"
	ErrCodeSerializationFailed = "relay.serialization_failed"
	ErrCodeConnectFailed       = "relay.connect_failed"
)

// Code returns an error value that carries only a code string.
// It implements error by returning the code string in Error().
func Code(code string) error { return codedError(code) }

type codedError string

func (e codedError) Error() string { return string(e) }

var (
	ErrNotConfigured       = Code(ErrCodeNotConfigured)
	ErrPublishFailed       = Code(ErrCodePublishFailed)
	ErrSerializationFailed = Code(ErrCodeSerializationFailed)
	ErrConnectFailed       = Code(ErrCodeConnectFailed)
)
