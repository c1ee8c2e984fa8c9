package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"

	"github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/twilio/twilio-go/twiml"
)

var ErrNotConfigured = errors.New("whatsapp provider not configured")

const addressPrefix = "whatsapp:"

// Client sends and verifies WhatsApp traffic through Twilio.
type Client struct {
	rest      *twilio.RestClient
	validator *client.RequestValidator
	from      string
	logger    *observability.Logger
}

// NewClient builds the Twilio client. Missing credentials leave sending
// disabled and signature checks skipped.
func NewClient(accountSID, authToken, from string, logger *observability.Logger) *Client {
	c := &Client{from: Address(from), logger: logger}
	if accountSID != "" && authToken != "" {
		c.rest = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}
	if authToken != "" {
		validator := client.NewRequestValidator(authToken)
		c.validator = &validator
	}
	return c
}

func (c *Client) IsEnabled() bool {
	return c != nil && c.rest != nil && c.from != ""
}

// VerifiesSignatures reports whether inbound webhooks are checked.
func (c *Client) VerifiesSignatures() bool {
	return c != nil && c.validator != nil
}

// Address prefixes a phone number with the WhatsApp channel marker.
func Address(phone string) string {
	if phone == "" || strings.HasPrefix(phone, addressPrefix) {
		return phone
	}
	return addressPrefix + phone
}

// Phone strips the channel marker from a Twilio address.
func Phone(address string) string {
	return strings.TrimPrefix(address, addressPrefix)
}

// SendMessage sends body to phone and returns the message SID.
func (c *Client) SendMessage(ctx context.Context, phone, body string) (string, error) {
	if !c.IsEnabled() {
		return "", ErrNotConfigured
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "whatsapp_to", Value: phone})

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(Address(phone))
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.rest.Api.CreateMessage(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send whatsapp message", err)
		return "", fmt.Errorf("failed to send whatsapp message: %w", err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	c.logger.Info(ctx, "whatsapp message sent", observability.Field{Key: "message_sid", Value: sid})
	return sid, nil
}

// ValidateSignature checks X-Twilio-Signature against the full webhook URL and
// the posted form parameters.
func (c *Client) ValidateSignature(url string, params map[string]string, signature string) bool {
	if !c.VerifiesSignatures() {
		return true
	}
	return c.validator.Validate(url, params, signature)
}

// EmptyResponse is the TwiML acknowledgement for an inbound message.
func EmptyResponse() (string, error) {
	return twiml.Messages(nil)
}
