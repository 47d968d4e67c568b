package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewrain/brewrain-backend/internal/app/service"
	apperrors "github.com/brewrain/brewrain-backend/internal/errors"
	"github.com/brewrain/brewrain-backend/internal/middleware"
	"github.com/brewrain/brewrain-backend/pkg/currency"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ProductID  string `json:"product_id" binding:"required"`
	SizeID     string `json:"size_id"`
	Quantity   int    `json:"quantity"`
	IceLevel   string `json:"ice_level"`
	SugarLevel string `json:"sugar_level"`
	Notes      string `json:"notes"`
}

// Quantity is deliberately unvalidated here: zero and negative values are
// accepted and clamped to 1 downstream.
type UpdateCartLineRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the session's cart
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Request reached cart without a session", nil)
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.SessionMissing, "Sesi tidak ditemukan")
		return
	}

	cart := ctrl.cartService.GetCart(sessionID)
	total := cart.Total()

	log.Info("Cart fetched successfully", map[string]interface{}{
		"session_id": sessionID,
		"count":      cart.Len(),
		"total":      total,
	})

	c.JSON(http.StatusOK, gin.H{
		"cart_lines":      cart.Lines,
		"count":           cart.Len(),
		"total":           total,
		"total_formatted": currency.Format(total),
	})
}

// AddToCart confirms a configurator and appends a line
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Request reached cart without a session", nil)
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.SessionMissing, "Sesi tidak ditemukan")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Data pesanan tidak valid")
		return
	}

	line, err := ctrl.cartService.AddLine(sessionID, service.AddLineInput{
		ProductID:  req.ProductID,
		SizeID:     req.SizeID,
		Quantity:   req.Quantity,
		IceLevel:   req.IceLevel,
		SugarLevel: req.SugarLevel,
		Notes:      req.Notes,
	})
	if err != nil {
		info := apperrors.ParseError(err)
		log.Warn("Failed to add line to cart", map[string]interface{}{
			"session_id": sessionID,
			"product_id": req.ProductID,
			"code":       info.Code,
		})
		apperrors.RespondWithError(c, apperrors.HTTPStatus(info.Code), info.Code, info.Message)
		return
	}

	log.Info("Cart line added successfully", map[string]interface{}{
		"session_id": sessionID,
		"line_id":    line.ID,
		"quantity":   line.Quantity,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item ditambahkan ke keranjang",
		"line":    line,
	})
}

// UpdateCartLine replaces a line's quantity (clamped to a minimum of 1)
// PUT /api/v1/cart/:id
func (ctrl *CartController) UpdateCartLine(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Request reached cart without a session", nil)
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.SessionMissing, "Sesi tidak ditemukan")
		return
	}

	lineID := c.Param("id")
	if lineID == "" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "ID item tidak valid")
		return
	}

	var req UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update cart request", map[string]interface{}{
			"session_id": sessionID,
			"line_id":    lineID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Data pesanan tidak valid")
		return
	}

	line, err := ctrl.cartService.UpdateQuantity(sessionID, lineID, req.Quantity)
	if err != nil {
		info := apperrors.ParseError(err)
		log.Warn("Failed to update cart line", map[string]interface{}{
			"session_id": sessionID,
			"line_id":    lineID,
			"code":       info.Code,
		})
		apperrors.RespondWithError(c, apperrors.HTTPStatus(info.Code), info.Code, info.Message)
		return
	}

	log.Info("Cart line updated successfully", map[string]interface{}{
		"session_id": sessionID,
		"line_id":    lineID,
		"quantity":   line.Quantity,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Jumlah item diperbarui",
		"line":    line,
	})
}

// RemoveFromCart removes one line
// DELETE /api/v1/cart/:id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Request reached cart without a session", nil)
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.SessionMissing, "Sesi tidak ditemukan")
		return
	}

	lineID := c.Param("id")
	if err := ctrl.cartService.RemoveLine(sessionID, lineID); err != nil {
		info := apperrors.ParseError(err)
		log.Warn("Failed to remove cart line", map[string]interface{}{
			"session_id": sessionID,
			"line_id":    lineID,
			"code":       info.Code,
		})
		apperrors.RespondWithError(c, apperrors.HTTPStatus(info.Code), info.Code, info.Message)
		return
	}

	log.Info("Cart line removed successfully", map[string]interface{}{
		"session_id": sessionID,
		"line_id":    lineID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Item dihapus dari keranjang",
	})
}

// ClearCart empties the session's cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Request reached cart without a session", nil)
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.SessionMissing, "Sesi tidak ditemukan")
		return
	}

	ctrl.cartService.ClearCart(sessionID)

	log.Info("Cart cleared successfully", map[string]interface{}{
		"session_id": sessionID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Keranjang dikosongkan",
	})
}
