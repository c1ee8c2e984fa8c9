package apierrors

import (
	"fmt"
	"net/http"
	"os"
)

// Machine-readable error codes returned to API clients.
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeInvalidStage         = "INVALID_STAGE"
	CodeMissingAttribution   = "MISSING_ATTRIBUTION"
	CodeEmailRequired        = "EMAIL_REQUIRED"
	CodeContactRequired      = "CONTACT_REQUIRED"
	CodeInvalidTransition    = "INVALID_TRANSITION"
	CodeInvalidStatus        = "INVALID_STATUS"
	CodeInvalidSenderType    = "INVALID_SENDER_TYPE"
	CodeUnknownPlan          = "UNKNOWN_PLAN"
	CodeInvalidDateRange     = "INVALID_DATE_RANGE"
	CodeCaptchaRequired      = "CAPTCHA_REQUIRED"
	CodeCaptchaFailed        = "CAPTCHA_FAILED"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInvalidSignature     = "INVALID_SIGNATURE"
	CodeForbidden            = "FORBIDDEN"
	CodeNotFound             = "NOT_FOUND"
	CodeLeadNotFound         = "LEAD_NOT_FOUND"
	CodeSubscriberNotFound   = "SUBSCRIBER_NOT_FOUND"
	CodeTicketNotFound       = "TICKET_NOT_FOUND"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeEmailExists          = "EMAIL_EXISTS"
	CodeConcurrentUpdate     = "CONCURRENT_UPDATE"
	CodeWebhookInProgress    = "WEBHOOK_IN_PROGRESS"
	CodeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	CodePaymentProviderError = "PAYMENT_PROVIDER_ERROR"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeServiceUnavailable   = "SERVICE_UNAVAILABLE"
)

// APIError is an error that knows how it should be rendered over HTTP.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// RetryAfter is the number of seconds a throttled client should wait. Zero means unset.
	RetryAfter int
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func TooManyRequests(retryAfterSeconds int) *APIError {
	return &APIError{
		StatusCode: http.StatusTooManyRequests,
		Code:       CodeRateLimitExceeded,
		Message:    "Too many requests. Please try again later.",
		RetryAfter: retryAfterSeconds,
	}
}

// ServiceUnavailable is used when an upstream provider call was the purpose of the request.
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError returns a sanitized 500. The underlying error text is only
// exposed outside production.
func InternalError(err error) *APIError {
	message := "An internal error occurred. Please try again later."
	if err != nil && os.Getenv("GO_ENV") != "production" {
		message = err.Error()
	}
	return &APIError{StatusCode: http.StatusInternalServerError, Code: CodeInternalError, Message: message, Err: err}
}

// ValidationError builds a 400 from a binding or validator error.
func ValidationError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       CodeInvalidInput,
		Message:    validationMessage(err),
		Err:        err,
	}
}
