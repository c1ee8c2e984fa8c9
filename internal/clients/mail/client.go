package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"

	"github.com/resendlabs/resend-go"
)

var ErrNotConfigured = errors.New("email provider not configured")

type ResendClient struct {
	client *resend.Client
	from   string
	logger *observability.Logger
}

// NewResendClient builds the transactional sender. An empty apiKey yields a
// client whose sends fail with ErrNotConfigured.
func NewResendClient(apiKey, from string, logger *observability.Logger) *ResendClient {
	c := &ResendClient{from: from, logger: logger}
	if apiKey != "" {
		c.client = resend.NewClient(apiKey)
	}
	return c
}

func (c *ResendClient) IsEnabled() bool {
	return c != nil && c.client != nil
}

// SendEmail sends one HTML message and returns the provider message ID.
func (c *ResendClient) SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error) {
	if !c.IsEnabled() {
		return "", ErrNotConfigured
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully", observability.Field{Key: "email_id", Value: res.Id})
	return res.Id, nil
}
