package errors_test

import (
	"errors"
	"testing"

	rerr "github.com/next-trace/scg-signal/contract/errors"
)

func TestCodeAndVars(t *testing.T) {
	e := rerr.Code(rerr.ErrCodePublishFailed)
	if e.Error() != rerr.ErrCodePublishFailed {
		t.Fatalf("unexpected error string: %s", e.Error())
	}

	// exported variables must carry their codes
	tests := []struct {
		err  error
		code string
	}{
		{rerr.ErrNotConfigured, rerr.ErrCodeNotConfigured},
		{rerr.ErrPublishFailed, rerr.ErrCodePublishFailed},
		{rerr.ErrSerializationFailed, rerr.ErrCodeSerializationFailed},
		{rerr.ErrConnectFailed, rerr.ErrCodeConnectFailed},
	}

	for _, tc := range tests {
		if !errors.Is(tc.err, rerr.Code(tc.code)) {
			t.Fatalf("expected %s to be %s", tc.err, tc.code)
		}
	}
}
