package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brewrain/brewrain-backend/internal/app/model"
	"github.com/brewrain/brewrain-backend/internal/app/service"
	apperrors "github.com/brewrain/brewrain-backend/internal/errors"
	"github.com/brewrain/brewrain-backend/internal/middleware"
	"github.com/brewrain/brewrain-backend/pkg/currency"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (r CustomerRequest) toModel() model.Customer {
	return model.Customer{
		Name:  r.Name,
		Phone: r.Phone,
		Notes: r.Notes,
	}
}

type ComposeMessageRequest struct {
	Customer CustomerRequest `json:"customer"`
	Target   string          `json:"target"` // "seller" or anything else for a share link
}

type ReceiptRequest struct {
	Customer CustomerRequest `json:"customer"`
}

// GetSummary returns the derived order for the session
// GET /api/v1/orders/summary
func (ctrl *OrderController) GetSummary(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Request reached orders without a session", nil)
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.SessionMissing, "Sesi tidak ditemukan")
		return
	}

	order := ctrl.orderService.Summary(sessionID, model.Customer{})

	c.JSON(http.StatusOK, gin.H{
		"lines":           order.Lines,
		"count":           len(order.Lines),
		"total":           order.Total,
		"total_formatted": currency.Format(order.Total),
	})
}

// ComposeMessage builds the outbound order text and its deep link
// POST /api/v1/orders/message
func (ctrl *OrderController) ComposeMessage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Request reached orders without a session", nil)
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.SessionMissing, "Sesi tidak ditemukan")
		return
	}

	var req ComposeMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid compose message request", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Data pesanan tidak valid")
		return
	}

	composed := ctrl.orderService.ComposeMessage(sessionID, req.Customer.toModel(), req.Target)

	log.Info("Order message composed successfully", map[string]interface{}{
		"session_id": sessionID,
		"target":     req.Target,
		"total":      composed.Total,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":         composed.Message,
		"link":            composed.Link,
		"total":           composed.Total,
		"total_formatted": currency.Format(composed.Total),
	})
}

// GetReceipt renders the printable receipt document
// POST /api/v1/orders/receipt
func (ctrl *OrderController) GetReceipt(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Request reached orders without a session", nil)
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.SessionMissing, "Sesi tidak ditemukan")
		return
	}

	var req ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid receipt request", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Data pesanan tidak valid")
		return
	}

	doc, err := ctrl.orderService.RenderReceipt(sessionID, req.Customer.toModel(), time.Now())
	if err != nil {
		log.Error("Failed to render receipt", err, map[string]interface{}{
			"session_id": sessionID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}
