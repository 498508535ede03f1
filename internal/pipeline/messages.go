package pipeline

import (
	"strings"

	apperrors "jerseyform/internal/errors"
)

type failureContext string

const (
	contextFormSubmission failureContext = "form-submission"
	contextRetry          failureContext = "retry"
)

// notifyFailure maps an error onto the user-facing notification. One
// deviation from the strict success/fail split: an email-delivery failure
// during submission means the order itself was created, so it goes out on
// the warning channel and the form is left alone.
func notifyFailure(n Notifier, err error, fctx failureContext) {
	if fctx == contextFormSubmission && strings.Contains(err.Error(), "email") {
		n.ShowMessage(ChannelWarning, "Partial Success",
			"Your order was submitted but there was an issue sending the confirmation email. Please contact support if needed.")
		return
	}

	title, message := describeFailure(err)
	n.ShowMessage(ChannelError, title, message)
}

// describeFailure resolves the taxonomy to a human-readable title and
// message; server-provided messages win over the canned ones where the
// backend is specific (validation, bad request, conflict).
func describeFailure(err error) (title, message string) {
	switch {
	case isNetwork(err):
		return "Connection Error", "Network connection issue. Please check your internet and try again."

	case isValidation(err):
		return "Validation Error", messageOr(err, "Please check your form inputs.")

	case isRateLimit(err):
		return "Rate Limited", "Too many requests. Please wait a moment and try again."

	case isServer(err):
		return "Server Error", "Server error. Our team has been notified. Please try again later."

	case isBadRequest(err):
		return "Invalid Request", messageOr(err, "Invalid request. Please check your information and try again.")

	case isConflict(err):
		return "Conflict Error", messageOr(err, "Jersey number already taken for this batch.")

	case isNotFound(err):
		return "Not Found", "The requested resource was not found."

	case err != nil && err.Error() != "":
		return "Request Failed", err.Error()

	default:
		return "Error", "An unexpected error occurred. Please try again."
	}
}

func messageOr(err error, fallback string) string {
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}

func isNetwork(err error) bool {
	_, ok := apperrors.IsNetworkError(err)
	return ok
}

func isValidation(err error) bool {
	_, ok := apperrors.IsValidationError(err)
	return ok
}

func isRateLimit(err error) bool {
	_, ok := apperrors.IsRateLimitError(err)
	return ok
}

func isServer(err error) bool {
	_, ok := apperrors.IsServerError(err)
	return ok
}

func isBadRequest(err error) bool {
	_, ok := apperrors.IsBadRequestError(err)
	return ok
}

func isConflict(err error) bool {
	_, ok := apperrors.IsConflictError(err)
	return ok
}

func isNotFound(err error) bool {
	_, ok := apperrors.IsNotFoundError(err)
	return ok
}
