package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/apierrors"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/whatsapp"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/support/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SupportService is the subset of SupportProcessor the HTTP layer calls.
type SupportService interface {
	CreateTicket(ctx context.Context, req processor.CreateTicketRequest) (store.Ticket, error)
	AppendMessage(ctx context.Context, req processor.AppendMessageRequest) (store.TicketMessage, error)
	HandleInboundWhatsApp(ctx context.Context, req processor.InboundWhatsAppRequest) error
	ListTickets(ctx context.Context, req processor.ListTicketsRequest) (processor.ListTicketsResponse, error)
	GetTicket(ctx context.Context, id uuid.UUID) (processor.TicketDetail, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (store.Ticket, error)
}

// StreamHub owns upgraded dashboard connections.
type StreamHub interface {
	Serve(ctx context.Context, conn *websocket.Conn)
}

type Handler struct {
	processor     SupportService
	hub           StreamHub
	publicBaseURL string
	logger        *observability.Logger
}

func New(processor SupportService, hub StreamHub, publicBaseURL string, logger *observability.Logger) Handler {
	return Handler{
		processor:     processor,
		hub:           hub,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// upgrader accepts any origin; the stream is gated by the JWT in ?token=.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type CreateTicketRequest struct {
	Name         string  `json:"name" binding:"max=200"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty,max=32"`
	Message      string  `json:"message" binding:"required"`
	SourcePage   string  `json:"source_page" binding:"max=500"`
	CaptchaToken string  `json:"captcha_token"`
}

type AppendMessageRequest struct {
	TicketID   string `json:"ticket_id" binding:"required,uuid"`
	SenderType string `json:"sender_type"`
	SenderName string `json:"sender_name" binding:"max=200"`
	Message    string `json:"message" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// HandleCreateTicket handles POST /api/support/tickets
func (h *Handler) HandleCreateTicket(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ticket, err := h.processor.CreateTicket(ctx, processor.CreateTicketRequest{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
		SourcePage:   req.SourcePage,
		CaptchaToken: req.CaptchaToken,
		RemoteIP:     observability.GetRealClientIP(c),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ticket": ticket})
}

// HandleCustomerMessage handles POST /api/support/messages. Only customer
// messages are accepted on the public route.
func (h *Handler) HandleCustomerMessage(c *gin.Context) {
	h.appendMessage(c, store.SenderTypeCustomer, store.SenderTypeCustomer)
}

// HandleAgentMessage handles POST /api/admin/support/messages
func (h *Handler) HandleAgentMessage(c *gin.Context) {
	h.appendMessage(c, store.SenderTypeAgent, store.SenderTypeAgent, store.SenderTypeSystem)
}

func (h *Handler) appendMessage(c *gin.Context, defaultSender string, allowed ...string) {
	ctx := c.Request.Context()

	var req AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	senderType := req.SenderType
	if senderType == "" {
		senderType = defaultSender
	}
	permitted := false
	for _, a := range allowed {
		if senderType == a {
			permitted = true
		}
	}
	if !permitted {
		apierrors.RespondWithError(c, processor.ErrInvalidSenderType)
		return
	}

	msg, err := h.processor.AppendMessage(ctx, processor.AppendMessageRequest{
		TicketID:   uuid.MustParse(req.TicketID),
		SenderType: senderType,
		SenderName: req.SenderName,
		Message:    req.Message,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// HandleWhatsAppWebhook handles POST /api/webhooks/whatsapp
func (h *Handler) HandleWhatsAppWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := c.Request.ParseForm(); err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid form body"))
		return
	}
	params := make(map[string]string, len(c.Request.PostForm))
	for key := range c.Request.PostForm {
		params[key] = c.Request.PostForm.Get(key)
	}

	err := h.processor.HandleInboundWhatsApp(ctx, processor.InboundWhatsAppRequest{
		URL:       h.webhookURL(c),
		Params:    params,
		Signature: c.GetHeader("X-Twilio-Signature"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	twiml, err := whatsapp.EmptyResponse()
	if err != nil {
		h.logger.Error(ctx, "failed to render twiml", err)
		twiml = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`
	}
	c.Data(http.StatusOK, "application/xml", []byte(twiml))
}

// webhookURL rebuilds the URL Twilio signed.
func (h *Handler) webhookURL(c *gin.Context) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL + c.Request.URL.RequestURI()
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}

// HandleListTickets handles GET /api/admin/support/tickets
func (h *Handler) HandleListTickets(c *gin.Context) {
	ctx := c.Request.Context()

	var statuses []string
	for _, s := range strings.Split(c.Query("status"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, s)
		}
	}

	resp, err := h.processor.ListTickets(ctx, processor.ListTicketsRequest{
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

// HandleGetTicket handles GET /api/admin/support/tickets/:id
func (h *Handler) HandleGetTicket(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid ticket ID"))
		return
	}

	detail, err := h.processor.GetTicket(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// HandleSetStatus handles PATCH /api/admin/support/tickets/:id/status
func (h *Handler) HandleSetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid ticket ID"))
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ticket, err := h.processor.SetStatus(ctx, id, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

// HandleStream handles GET /api/admin/support/stream
func (h *Handler) HandleStream(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WarnWithError(ctx, "failed to upgrade support stream", err)
		return
	}

	h.hub.Serve(ctx, conn)
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
