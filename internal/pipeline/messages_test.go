package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "jerseyform/internal/errors"
)

func TestDescribeFailure(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "network",
			err:         apperrors.NewNetworkError("Network connection failed. Please check your internet connection.", nil),
			wantTitle:   "Connection Error",
			wantMessage: "Network connection issue. Please check your internet and try again.",
		},
		{
			name:        "validation",
			err:         apperrors.NewValidationError("Jersey number must be a number"),
			wantTitle:   "Validation Error",
			wantMessage: "Jersey number must be a number",
		},
		{
			name:        "rate limit",
			err:         apperrors.NewRateLimitError("slow down"),
			wantTitle:   "Rate Limited",
			wantMessage: "Too many requests. Please wait a moment and try again.",
		},
		{
			name:        "server",
			err:         apperrors.NewServerError(503, "upstream down"),
			wantTitle:   "Server Error",
			wantMessage: "Server error. Our team has been notified. Please try again later.",
		},
		{
			name:        "bad request",
			err:         apperrors.NewBadRequestError("size is not valid"),
			wantTitle:   "Invalid Request",
			wantMessage: "size is not valid",
		},
		{
			name:        "conflict with server message",
			err:         apperrors.NewConflictError("Jersey number already taken for this batch."),
			wantTitle:   "Conflict Error",
			wantMessage: "Jersey number already taken for this batch.",
		},
		{
			name:        "conflict without server message",
			err:         apperrors.NewConflictError(""),
			wantTitle:   "Conflict Error",
			wantMessage: "Jersey number already taken for this batch.",
		},
		{
			name:        "not found",
			err:         apperrors.NewNotFoundError("no such order"),
			wantTitle:   "Not Found",
			wantMessage: "The requested resource was not found.",
		},
		{
			name:        "unclassified with message",
			err:         errors.New("something odd"),
			wantTitle:   "Request Failed",
			wantMessage: "something odd",
		},
		{
			name:        "nil",
			err:         nil,
			wantTitle:   "Error",
			wantMessage: "An unexpected error occurred. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, message := describeFailure(tt.err)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestNotifyFailure_EmailFailureOnlyLenientDuringSubmission(t *testing.T) {
	err := apperrors.NewServerError(500, "Order created but the confirmation email could not be sent")

	notifier := &recordingNotifier{}
	notifyFailure(notifier, err, contextFormSubmission)
	msg, ok := notifier.lastMessage()
	require.True(t, ok)
	assert.Equal(t, ChannelWarning, msg.channel)
	assert.Equal(t, "Partial Success", msg.title)

	// The same error during a retry is reported as a plain failure.
	notifier = &recordingNotifier{}
	notifyFailure(notifier, err, contextRetry)
	msg, ok = notifier.lastMessage()
	require.True(t, ok)
	assert.Equal(t, ChannelError, msg.channel)
	assert.Equal(t, "Server Error", msg.title)
}
