package apierrors

import (
	"errors"
	"net/http"

	authProcessor "github.com/GanonMaor/spectra-salon-website-sub004/internal/auth/processor"
	billingProcessor "github.com/GanonMaor/spectra-salon-website-sub004/internal/billing/processor"
	funnelProcessor "github.com/GanonMaor/spectra-salon-website-sub004/internal/funnel/processor"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/ratelimit"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"
	supportProcessor "github.com/GanonMaor/spectra-salon-website-sub004/internal/support/processor"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// Unknown errors become a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var limitErr *ratelimit.LimitExceededError
	if errors.As(err, &limitErr) {
		return TooManyRequests(limitErr.RetryAfterSeconds())
	}

	switch {
	// funnel
	case errors.Is(err, funnelProcessor.ErrInvalidStage):
		return BadRequest(CodeInvalidStage, "Invalid stage. Valid values: cta_clicked, account_completed, address_completed, payment_viewed")
	case errors.Is(err, funnelProcessor.ErrMissingAttribution):
		return BadRequest(CodeMissingAttribution, "source_page is required when creating a lead")
	case errors.Is(err, funnelProcessor.ErrEmailRequired):
		return BadRequest(CodeEmailRequired, "email is required from the account_completed stage onward")
	case errors.Is(err, funnelProcessor.ErrLeadNotFound):
		return NotFound(CodeLeadNotFound, "Lead not found")
	case errors.Is(err, funnelProcessor.ErrConcurrentUpdate):
		return Conflict(CodeConcurrentUpdate, "Lead was modified concurrently. Please retry.")
	case errors.Is(err, funnelProcessor.ErrInvalidDateRange):
		return BadRequest(CodeInvalidDateRange, "Invalid date range. Use from/to as YYYY-MM-DD with from <= to")

	// billing
	case errors.Is(err, billingProcessor.ErrLeadNotFound):
		return NotFound(CodeLeadNotFound, "Lead not found")
	case errors.Is(err, billingProcessor.ErrSubscriberNotFound):
		return NotFound(CodeSubscriberNotFound, "Subscriber not found")
	case errors.Is(err, billingProcessor.ErrInvalidTransition):
		return Conflict(CodeInvalidTransition, "The requested transition is not allowed from the current state")
	case errors.Is(err, billingProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid subscriber status. Valid values: trial_active, active, past_due, canceled")
	case errors.Is(err, billingProcessor.ErrUnknownPlan):
		return BadRequest(CodeUnknownPlan, "Unknown plan code")
	case errors.Is(err, billingProcessor.ErrInvalidAmount):
		return BadRequest(CodeInvalidInput, "amount_minor must be a non-negative integer")
	case errors.Is(err, billingProcessor.ErrInvalidPayload):
		return BadRequest(CodeInvalidInput, "Invalid billing payload")
	case errors.Is(err, billingProcessor.ErrInvalidSignature):
		return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeInvalidSignature, Message: "Invalid webhook signature"}
	case errors.Is(err, billingProcessor.ErrWebhookInProgress):
		return Conflict(CodeWebhookInProgress, "Webhook delivery is already being processed. Please retry later.")
	case errors.Is(err, billingProcessor.ErrPaymentProvider):
		return ServiceUnavailable(CodePaymentProviderError,
			"Payment provider is temporarily unavailable. Please try again later.", err)

	// support
	case errors.Is(err, supportProcessor.ErrTicketNotFound):
		return NotFound(CodeTicketNotFound, "Ticket not found")
	case errors.Is(err, supportProcessor.ErrContactRequired):
		return BadRequest(CodeContactRequired, "Either email or phone is required")
	case errors.Is(err, supportProcessor.ErrInvalidSenderType):
		return BadRequest(CodeInvalidSenderType, "Invalid sender type. Valid values: customer, agent, system")
	case errors.Is(err, supportProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid ticket status. Valid values: open, pending, closed")
	case errors.Is(err, supportProcessor.ErrEmptyMessage):
		return BadRequest(CodeInvalidInput, "message must not be empty")
	case errors.Is(err, supportProcessor.ErrCaptchaRequired):
		return BadRequest(CodeCaptchaRequired, "Captcha verification required")
	case errors.Is(err, supportProcessor.ErrCaptchaFailed):
		return BadRequest(CodeCaptchaFailed, "Captcha verification failed")
	case errors.Is(err, supportProcessor.ErrInvalidSignature):
		return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeInvalidSignature, Message: "Invalid webhook signature"}

	// auth
	case errors.Is(err, authProcessor.ErrMissingToken):
		return Unauthorized("Authorization token is missing")
	case errors.Is(err, authProcessor.ErrInvalidCredentials):
		return Unauthorized("Invalid email or password")
	case errors.Is(err, authProcessor.ErrExpiredToken):
		return Unauthorized("Token has expired")
	case errors.Is(err, authProcessor.ErrInvalidJWTToken), errors.Is(err, authProcessor.ErrParseJWTToken):
		return Unauthorized("Invalid token")
	case errors.Is(err, authProcessor.ErrInsufficientRole):
		return Forbidden("You do not have access to this resource")
	case errors.Is(err, authProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")
	case errors.Is(err, authProcessor.ErrEmailAlreadyExists):
		return Conflict(CodeEmailExists, "Email already exists")
	case errors.Is(err, authProcessor.ErrInvalidRole):
		return BadRequest(CodeInvalidInput, "Invalid role. Valid values: admin, support")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
