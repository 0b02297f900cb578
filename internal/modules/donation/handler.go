package donation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/create-checkout-session", h.CreateCheckoutSession)
	r.GET("/success", h.Success)
	r.GET("/cancel", h.Cancel)
	r.POST("/stripe/webhook", h.StripeWebhook)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/donations/export", h.ExportCSV)
}

// CreateCheckoutSession godoc
// @Summary      Create a hosted checkout session
// @Description  Validates the amount, opens a gateway checkout session and stores a pending donation
// @Tags         Donations
// @Accept       json
// @Produce      json
// @Param        body body CreateCheckoutRequest true "Donation payload"
// @Success      200 {object} CreateCheckoutResponse
// @Failure      400 {object} ErrorResponse
// @Router       /create-checkout-session [post]
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var req CreateCheckoutRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		h.loggerf("level=warn msg=invalid request data err=%v", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount"})
		return
	}

	sessionID, err := h.service.CreateCheckout(
		c.Request.Context(),
		req.Amount,
		req.Name,
		req.Email,
		requestLocale(c),
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount):
			h.loggerf("level=warn msg=invalid amount in checkout request")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount"})
		case errors.Is(err, ErrAmountTooSmall), errors.Is(err, ErrAmountTooLarge):
			h.loggerf("level=info msg=donation amount out of range err=%v", err)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: trimSentinel(err)})
		default:
			h.loggerf("level=error msg=error creating checkout session err=%v", err)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unable to create checkout session"})
		}
		return
	}

	c.JSON(http.StatusOK, CreateCheckoutResponse{ID: sessionID})
}

// StripeWebhook godoc
// @Summary      Gateway webhook endpoint
// @Description  Verifies the event signature and reconciles the donation record
// @Tags         Donations
// @Accept       json
// @Success      200 {string} string "acknowledged"
// @Failure      400 {string} string "bad signature or unrecoverable fetch"
// @Router       /stripe/webhook [post]
func (h *Handler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err = h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		// signature failures and unrecoverable intent fetches are the only
		// cases the gateway should retry
		c.Status(http.StatusBadRequest)
		return
	}
	c.Status(http.StatusOK)
}

// Success godoc
// @Summary      Confirmation details after hosted-page redirect
// @Tags         Donations
// @Produce      json
// @Param        session_id query string false "Checkout session id"
// @Success      200 {object} SessionDetails
// @Router       /success [get]
func (h *Handler) Success(c *gin.Context) {
	sid := c.Query("session_id")
	if sid == "" {
		c.JSON(http.StatusOK, SessionDetails{})
		return
	}

	details, err := h.service.SessionDetails(c.Request.Context(), sid)
	if err != nil {
		// best effort: the donor already paid, never show them an error here
		h.loggerf("level=error msg=session retrieval error session_id=%s err=%v", sid, err)
		c.JSON(http.StatusOK, SessionDetails{})
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.loggerf("level=info msg=donation cancelled by user")
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ExportCSV godoc
// @Summary      Export all donations as CSV
// @Tags         Donations
// @Security     BearerAuth
// @Produce      text/csv
// @Success      200 {string} string "CSV stream"
// @Failure      403 {object} ErrorResponse
// @Router       /donations/export [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	h.loggerf("level=info msg=donation csv export initiated user_id=%d", c.GetInt64("user_id"))

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="donations_all.csv"`)
	if err := h.service.WriteCSV(c.Request.Context(), c.Writer); err != nil {
		h.loggerf("level=error msg=donation csv export failed err=%v", err)
		c.Status(http.StatusInternalServerError)
	}
}

// requestLocale picks the donor language from Accept-Language, primary
// subtag only; empty when the header is absent.
func requestLocale(c *gin.Context) string {
	header := c.GetHeader("Accept-Language")
	if header == "" {
		return ""
	}
	first := strings.TrimSpace(strings.Split(header, ",")[0])
	if i := strings.Index(first, ";"); i > 0 {
		first = first[:i]
	}
	return strings.TrimSpace(first)
}

// trimSentinel drops the "<sentinel>: " prefix, leaving the human message.
func trimSentinel(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
