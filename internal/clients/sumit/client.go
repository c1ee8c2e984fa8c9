package sumit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
)

const (
	pathCharge   = "/billing/payments/charge/"
	pathTokenize = "/billing/paymentmethods/setforcustomer/"
)

var ErrNotConfigured = errors.New("billing provider not configured")

// ProviderError is a transport failure, a non-2xx answer, or a failure the
// provider declared in its response envelope.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("sumit: status %d: %s", e.StatusCode, e.Message)
	}
	return "sumit: " + e.Message
}

// ChargeRequest describes one checkout. When ChargeNow is false the card is
// only stored against the customer for the end of the trial.
type ChargeRequest struct {
	CustomerName string
	Email        string
	Phone        string
	CardToken    string
	Description  string
	AmountMinor  int64
	Currency     string
	ChargeNow    bool
}

// ChargeResult holds the provider references stored on the subscriber.
type ChargeResult struct {
	CustomerID         string
	PaymentMethodToken string
	TransactionID      string
}

type Client struct {
	baseURL    string
	creds      credentials
	httpClient *http.Client
	logger     *observability.Logger
}

func NewClient(baseURL, companyID, apiKey string, logger *observability.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      credentials{CompanyID: companyID, APIKey: apiKey},
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

func (c *Client) IsEnabled() bool {
	return c != nil && c.baseURL != "" && c.creds.CompanyID != "" && c.creds.APIKey != ""
}

// Charge charges or tokenizes depending on req.ChargeNow.
func (c *Client) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	if !c.IsEnabled() {
		return ChargeResult{}, ErrNotConfigured
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "provider", Value: "sumit"},
		observability.Field{Key: "charge_now", Value: req.ChargeNow},
	)

	cust := customer{Name: req.CustomerName, EmailAddress: req.Email, Phone: req.Phone}

	if !req.ChargeNow {
		var data tokenizeData
		body := tokenizeRequest{Credentials: c.creds, Customer: cust, SingleUseToken: req.CardToken}
		if err := c.post(ctx, pathTokenize, body, &data); err != nil {
			return ChargeResult{}, err
		}
		return ChargeResult{
			CustomerID:         strconv.FormatInt(data.CustomerID, 10),
			PaymentMethodToken: strconv.FormatInt(data.PaymentMethodID, 10),
		}, nil
	}

	line := item{Quantity: 1, UnitPrice: float64(req.AmountMinor) / 100, Currency: req.Currency}
	line.Item.Name = req.Description

	var data chargeData
	body := chargeRequest{
		Credentials:    c.creds,
		Customer:       cust,
		SingleUseToken: req.CardToken,
		Items:          []item{line},
		VATIncluded:    true,
	}
	if err := c.post(ctx, pathCharge, body, &data); err != nil {
		return ChargeResult{}, err
	}
	if !data.Payment.ValidPayment {
		return ChargeResult{}, &ProviderError{Message: "payment declined: " + data.Payment.StatusDescription}
	}

	return ChargeResult{
		CustomerID:         strconv.FormatInt(data.CustomerID, 10),
		PaymentMethodToken: strconv.FormatInt(data.Payment.PaymentMethod.ID, 10),
		TransactionID:      strconv.FormatInt(data.Payment.ID, 10),
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal sumit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create sumit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call sumit", err)
		return &ProviderError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &ProviderError{StatusCode: resp.StatusCode, Message: "failed to read response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		perr := &ProviderError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		c.logger.Error(ctx, "sumit rejected request", perr)
		return perr
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &ProviderError{StatusCode: resp.StatusCode, Message: "malformed response"}
	}
	if env.Status != 0 {
		msg := "request failed"
		if env.UserErrorMessage != nil && *env.UserErrorMessage != "" {
			msg = *env.UserErrorMessage
		}
		perr := &ProviderError{Message: msg}
		c.logger.Error(ctx, "sumit declared failure", perr)
		return perr
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &ProviderError{Message: "response without data"}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &ProviderError{Message: "malformed response data"}
	}
	return nil
}
