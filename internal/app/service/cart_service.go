package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/brewrain/brewrain-backend/internal/app/model"
	"github.com/brewrain/brewrain-backend/internal/app/repository"
	"github.com/brewrain/brewrain-backend/internal/catalog"
	"github.com/brewrain/brewrain-backend/pkg/logger"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrSizeNotFound      = errors.New("size option not found")
	ErrInvalidIceLevel   = errors.New("invalid ice level")
	ErrInvalidSugarLevel = errors.New("invalid sugar level")
	ErrCartLineNotFound  = errors.New("cart line not found")
)

// AddLineInput carries one configurator confirmation. Zero values take the
// documented defaults: first catalog size, quantity 1, ice "Normal", sugar
// "75%", empty notes.
type AddLineInput struct {
	ProductID  string
	SizeID     string
	Quantity   int
	IceLevel   string
	SugarLevel string
	Notes      string
}

type CartService interface {
	GetCart(sessionID string) model.Cart
	AddLine(sessionID string, input AddLineInput) (model.CartLine, error)
	UpdateQuantity(sessionID, lineID string, quantity int) (model.CartLine, error)
	RemoveLine(sessionID, lineID string) error
	ClearCart(sessionID string)
}

type cartService struct {
	cartRepo repository.CartRepository
	catalog  *catalog.Catalog
	now      func() time.Time
}

func NewCartService(cartRepo repository.CartRepository, c *catalog.Catalog) CartService {
	return &cartService{
		cartRepo: cartRepo,
		catalog:  c,
		now:      time.Now,
	}
}

func (s *cartService) GetCart(sessionID string) model.Cart {
	logger.Debug("Fetching session cart", map[string]interface{}{
		"session_id": sessionID,
	})
	return s.cartRepo.Get(sessionID)
}

// AddLine confirms a configurator: it resolves the product and options,
// fixes the unit price at this instant, and prepends the resulting snapshot
// to the session's cart.
func (s *cartService) AddLine(sessionID string, input AddLineInput) (model.CartLine, error) {
	logger.Info("Adding line to cart", map[string]interface{}{
		"session_id": sessionID,
		"product_id": input.ProductID,
		"size_id":    input.SizeID,
		"quantity":   input.Quantity,
	})

	product, ok := s.catalog.ProductByID(input.ProductID)
	if !ok {
		logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
			"session_id": sessionID,
			"product_id": input.ProductID,
		})
		return model.CartLine{}, ErrProductNotFound
	}

	size := s.catalog.DefaultSize()
	if input.SizeID != "" {
		size, ok = s.catalog.SizeByID(input.SizeID)
		if !ok {
			logger.Warn("Cannot add to cart: size not found", map[string]interface{}{
				"session_id": sessionID,
				"size_id":    input.SizeID,
			})
			return model.CartLine{}, ErrSizeNotFound
		}
	}

	iceLevel := input.IceLevel
	if iceLevel == "" {
		iceLevel = catalog.DefaultIceLevel
	}
	if !s.catalog.HasIceLevel(iceLevel) {
		return model.CartLine{}, ErrInvalidIceLevel
	}

	sugarLevel := input.SugarLevel
	if sugarLevel == "" {
		sugarLevel = catalog.DefaultSugarLevel
	}
	if !s.catalog.HasSugarLevel(sugarLevel) {
		return model.CartLine{}, ErrInvalidSugarLevel
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	line := model.CartLine{
		ID:         s.newLineID(product.ID),
		ProductID:  product.ID,
		Name:       product.Name,
		SizeID:     size.ID,
		SizeLabel:  size.Label,
		IceLevel:   iceLevel,
		SugarLevel: sugarLevel,
		Notes:      input.Notes,
		UnitPrice:  s.catalog.UnitPrice(product, size),
		Quantity:   quantity,
	}

	cart := s.cartRepo.Get(sessionID).Add(line)
	s.cartRepo.Replace(sessionID, cart)

	logger.Info("Cart line added", map[string]interface{}{
		"session_id": sessionID,
		"line_id":    line.ID,
		"unit_price": line.UnitPrice,
		"count":      cart.Len(),
	})
	return line, nil
}

func (s *cartService) UpdateQuantity(sessionID, lineID string, quantity int) (model.CartLine, error) {
	logger.Info("Updating cart line quantity", map[string]interface{}{
		"session_id": sessionID,
		"line_id":    lineID,
		"quantity":   quantity,
	})

	cart := s.cartRepo.Get(sessionID)
	if _, ok := cart.Find(lineID); !ok {
		logger.Warn("Cart line not found", map[string]interface{}{
			"session_id": sessionID,
			"line_id":    lineID,
		})
		return model.CartLine{}, ErrCartLineNotFound
	}

	cart = cart.SetQuantity(lineID, quantity)
	s.cartRepo.Replace(sessionID, cart)

	line, _ := cart.Find(lineID)
	return line, nil
}

func (s *cartService) RemoveLine(sessionID, lineID string) error {
	logger.Info("Removing cart line", map[string]interface{}{
		"session_id": sessionID,
		"line_id":    lineID,
	})

	cart := s.cartRepo.Get(sessionID)
	if _, ok := cart.Find(lineID); !ok {
		logger.Warn("Cart line not found for removal", map[string]interface{}{
			"session_id": sessionID,
			"line_id":    lineID,
		})
		return ErrCartLineNotFound
	}

	s.cartRepo.Replace(sessionID, cart.Remove(lineID))
	return nil
}

func (s *cartService) ClearCart(sessionID string) {
	logger.Info("Clearing session cart", map[string]interface{}{
		"session_id": sessionID,
	})
	s.cartRepo.Delete(sessionID)
}

// newLineID derives a line id from the product id and the creation instant.
// Nanosecond resolution keeps ids unique even for back-to-back adds.
func (s *cartService) newLineID(productID string) string {
	return fmt.Sprintf("%s-%d", productID, s.now().UnixNano())
}
