package generation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUpstreamError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, callStatusSuccess},
		{"canceled", fmt.Errorf("call: %w", context.Canceled), callStatusCanceled},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), callStatusTimeout},
		{"missing key", errors.New("api key is required for Google AI backend"), callStatusAuth},
		{"permission", errors.New("Error 403, Message: denied, Status: PERMISSION_DENIED, Details: []"), callStatusAuth},
		{"quota", errors.New("Error 429, Message: quota, Status: RESOURCE_EXHAUSTED, Details: []"), callStatusRateLimited},
		{"bad request", errors.New("Error 400, Message: bad mime, Status: INVALID_ARGUMENT, Details: []"), callStatusInvalid},
		{"other", errors.New("connection reset by peer"), callStatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyUpstreamError(tt.err))
		})
	}
}
