package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/apierrors"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/billing/processor"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxWebhookBody = 1 << 20

// BillingService is the subset of BillingProcessor the HTTP layer calls.
type BillingService interface {
	Checkout(ctx context.Context, req processor.CheckoutRequest) (store.Subscriber, error)
	PromoteToSubscriber(ctx context.Context, leadID uuid.UUID, details processor.BillingDetails) (store.Subscriber, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) (processor.WebhookResult, error)
	ListSubscribers(ctx context.Context, req processor.ListSubscribersRequest) (processor.ListSubscribersResponse, error)
	CancelSubscriber(ctx context.Context, id uuid.UUID) (store.Subscriber, error)
}

type Handler struct {
	processor BillingService
	logger    *observability.Logger
}

func New(processor BillingService, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type CheckoutRequest struct {
	LeadID    string `json:"lead_id" binding:"required,uuid"`
	PlanCode  string `json:"plan_code" binding:"required,max=100"`
	CardToken string `json:"card_token" binding:"max=500"`
	ChargeNow bool   `json:"charge_now"`
}

// PromoteRequest is the payload of an already confirmed checkout.
type PromoteRequest struct {
	LeadID              string  `json:"lead_id" binding:"required,uuid"`
	PlanCode            string  `json:"plan_code" binding:"required,max=100"`
	SumitCustomerID     string  `json:"sumit_customer_id" binding:"required,max=200"`
	SumitPaymentMethod  *string `json:"sumit_payment_method" binding:"omitempty,max=200"`
	SumitSubscriptionID *string `json:"sumit_subscription_id" binding:"omitempty,max=200"`
	AmountMinor         *int64  `json:"amount_minor"`
	Currency            string  `json:"currency" binding:"omitempty,len=3"`
	ChargeNow           bool    `json:"charge_now"`
}

// HandleCheckout handles POST /api/checkout
func (h *Handler) HandleCheckout(c *gin.Context) {
	ctx := c.Request.Context()

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	subscriber, err := h.processor.Checkout(ctx, processor.CheckoutRequest{
		LeadID:    uuid.MustParse(req.LeadID),
		PlanCode:  req.PlanCode,
		CardToken: req.CardToken,
		ChargeNow: req.ChargeNow,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriber": subscriber})
}

// HandlePromote handles POST /api/subscribers
func (h *Handler) HandlePromote(c *gin.Context) {
	ctx := c.Request.Context()

	var req PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	subscriber, err := h.processor.PromoteToSubscriber(ctx, uuid.MustParse(req.LeadID), processor.BillingDetails{
		PlanCode:            req.PlanCode,
		SumitCustomerID:     req.SumitCustomerID,
		SumitPaymentMethod:  req.SumitPaymentMethod,
		SumitSubscriptionID: req.SumitSubscriptionID,
		AmountMinor:         req.AmountMinor,
		Currency:            req.Currency,
		ChargeNow:           req.ChargeNow,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriber": subscriber})
}

// HandleWebhook handles POST /api/billing/webhook. The raw body is needed
// for signature verification so it is read before any decoding.
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		h.logger.Error(ctx, "failed to read billing webhook body", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Unable to read request body"))
		return
	}

	result, err := h.processor.HandleWebhook(ctx, body, c.GetHeader("X-Webhook-Signature"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	if result.Duplicate {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "duplicate": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleListSubscribers handles GET /api/admin/subscribers
func (h *Handler) HandleListSubscribers(c *gin.Context) {
	ctx := c.Request.Context()

	var statuses []string
	for _, s := range strings.Split(c.Query("status"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, s)
		}
	}

	resp, err := h.processor.ListSubscribers(ctx, processor.ListSubscribersRequest{
		Statuses: statuses,
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 20),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleCancelSubscriber handles POST /api/admin/subscribers/:id/cancel
func (h *Handler) HandleCancelSubscriber(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid subscriber ID"))
		return
	}

	subscriber, err := h.processor.CancelSubscriber(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriber": subscriber})
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
