package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/apierrors"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/funnel/processor"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FunnelService is the subset of FunnelProcessor the HTTP layer calls.
type FunnelService interface {
	RecordStageEvent(ctx context.Context, req processor.StageEventRequest) (store.Lead, error)
	GetLead(ctx context.Context, id uuid.UUID) (store.Lead, error)
	GetLeadDetail(ctx context.Context, id uuid.UUID) (processor.LeadDetail, error)
	ListLeads(ctx context.Context, req processor.ListLeadsRequest) (processor.ListLeadsResponse, error)
	RecordCTAClick(ctx context.Context, req processor.CTAClickRequest) (store.CTAClick, error)
	GetSummary(ctx context.Context) (store.FunnelSummary, error)
	GetDailyFunnel(ctx context.Context, from, to string) ([]store.DailyFunnelRow, error)
}

type Handler struct {
	processor FunnelService
	logger    *observability.Logger
}

func New(processor FunnelService, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type RecordLeadRequest struct {
	LeadID      string          `json:"lead_id" binding:"omitempty,uuid"`
	FullName    *string         `json:"full_name" binding:"omitempty,max=200"`
	Email       *string         `json:"email" binding:"omitempty,email"`
	Stage       string          `json:"stage"`
	SourcePage  string          `json:"source_page" binding:"max=500"`
	UTMSource   *string         `json:"utm_source" binding:"omitempty,max=200"`
	UTMMedium   *string         `json:"utm_medium" binding:"omitempty,max=200"`
	UTMCampaign *string         `json:"utm_campaign" binding:"omitempty,max=200"`
	Meta        json.RawMessage `json:"meta"`
}

type CTAClickRequest struct {
	CTAID       string  `json:"cta_id" binding:"required,max=200"`
	SourcePage  string  `json:"source_page" binding:"required,max=500"`
	UTMSource   *string `json:"utm_source" binding:"omitempty,max=200"`
	UTMMedium   *string `json:"utm_medium" binding:"omitempty,max=200"`
	UTMCampaign *string `json:"utm_campaign" binding:"omitempty,max=200"`
}

// HandleRecordLead handles POST /api/leads
func (h *Handler) HandleRecordLead(c *gin.Context) {
	ctx := c.Request.Context()

	var req RecordLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	stageReq := processor.StageEventRequest{
		Stage:       req.Stage,
		SourcePage:  req.SourcePage,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
		Email:       req.Email,
		FullName:    req.FullName,
		DeviceType:  observability.GetDeviceType(c),
		DeviceOS:    observability.GetDeviceOS(c),
	}
	if len(req.Meta) > 0 && string(req.Meta) != "null" {
		stageReq.Meta = req.Meta
	}
	if req.LeadID != "" {
		leadID, err := uuid.Parse(req.LeadID)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid lead ID"))
			return
		}
		stageReq.LeadID = &leadID
	}

	lead, err := h.processor.RecordStageEvent(ctx, stageReq)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

// HandleGetLead handles GET /api/leads/:id
func (h *Handler) HandleGetLead(c *gin.Context) {
	ctx := c.Request.Context()

	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid lead ID"))
		return
	}

	lead, err := h.processor.GetLead(ctx, leadID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

// HandleCTAClick handles POST /api/cta-clicks
func (h *Handler) HandleCTAClick(c *gin.Context) {
	ctx := c.Request.Context()

	var req CTAClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	click, err := h.processor.RecordCTAClick(ctx, processor.CTAClickRequest{
		CTAID:       req.CTAID,
		SourcePage:  req.SourcePage,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
		DeviceType:  observability.GetDeviceType(c),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"click": click})
}

// HandleListLeads handles GET /api/admin/leads
func (h *Handler) HandleListLeads(c *gin.Context) {
	ctx := c.Request.Context()

	resp, err := h.processor.ListLeads(ctx, processor.ListLeadsRequest{
		Stage:      c.Query("status"),
		SourcePage: c.Query("source"),
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 20),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleGetLeadDetail handles GET /api/admin/leads/:id
func (h *Handler) HandleGetLeadDetail(c *gin.Context) {
	ctx := c.Request.Context()

	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid lead ID"))
		return
	}

	detail, err := h.processor.GetLeadDetail(ctx, leadID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// HandleSummary handles GET /api/admin/funnel/summary
func (h *Handler) HandleSummary(c *gin.Context) {
	summary, err := h.processor.GetSummary(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// HandleDaily handles GET /api/admin/funnel/daily
func (h *Handler) HandleDaily(c *gin.Context) {
	rows, err := h.processor.GetDailyFunnel(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": rows})
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
