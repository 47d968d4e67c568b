package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/brewrain/brewrain-backend/internal/app/model"
	"github.com/brewrain/brewrain-backend/internal/app/repository"
	"github.com/brewrain/brewrain-backend/pkg/currency"
	"github.com/brewrain/brewrain-backend/pkg/logger"
	"github.com/brewrain/brewrain-backend/pkg/whatsapp"
)

// ComposedMessage is the outbound order: the plain text, the deep link that
// carries it, and the order total it reports.
type ComposedMessage struct {
	Message string `json:"message"`
	Link    string `json:"link"`
	Total   int64  `json:"total"`
}

type OrderService interface {
	Summary(sessionID string, customer model.Customer) model.Order
	ComposeMessage(sessionID string, customer model.Customer, target string) ComposedMessage
	RenderReceipt(sessionID string, customer model.Customer, now time.Time) (string, error)
}

type orderService struct {
	cartRepo  repository.CartRepository
	storeName string
	links     whatsapp.LinkBuilder
}

func NewOrderService(cartRepo repository.CartRepository, storeName string, links whatsapp.LinkBuilder) OrderService {
	return &orderService{
		cartRepo:  cartRepo,
		storeName: storeName,
		links:     links,
	}
}

// Summary assembles the derived order for the session. An empty cart is a
// valid summary with a zero total.
func (s *orderService) Summary(sessionID string, customer model.Customer) model.Order {
	return model.NewOrder(s.cartRepo.Get(sessionID), customer)
}

func (s *orderService) ComposeMessage(sessionID string, customer model.Customer, target string) ComposedMessage {
	order := s.Summary(sessionID, customer)
	message := composeMessage(order, s.storeName)

	logger.Info("Order message composed", map[string]interface{}{
		"session_id": sessionID,
		"target":     target,
		"lines":      len(order.Lines),
		"total":      order.Total,
	})

	return ComposedMessage{
		Message: message,
		Link:    s.links.Link(message, target),
		Total:   order.Total,
	}
}

func (s *orderService) RenderReceipt(sessionID string, customer model.Customer, now time.Time) (string, error) {
	order := s.Summary(sessionID, customer)

	doc, err := renderReceipt(order, s.storeName, now)
	if err != nil {
		logger.Error("Failed to render receipt", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return "", err
	}

	logger.Info("Receipt rendered", map[string]interface{}{
		"session_id": sessionID,
		"lines":      len(order.Lines),
		"total":      order.Total,
	})
	return doc, nil
}

// composeMessage builds the order text. The layout is fixed: header,
// customer info block, numbered line blocks, footer with the grand total
// and the closing phrase. Identical inputs always produce identical bytes.
func composeMessage(order model.Order, storeName string) string {
	header := fmt.Sprintf("*%s – Order*", storeName)

	info := []string{
		"Nama: " + orDash(order.Customer.Name),
		"WA: " + orDash(order.Customer.Phone),
		"Alamat: " + orDash(order.Customer.Notes),
	}

	lines := make([]string, 0, len(order.Lines))
	for i, line := range order.Lines {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s (%s) x%d\n", i+1, line.Name, line.SizeLabel, line.Quantity)
		fmt.Fprintf(&b, "   Es: %s • Gula: %s", line.IceLevel, line.SugarLevel)
		if line.Notes != "" {
			b.WriteString("\n   Note: " + line.Notes)
		}
		b.WriteString("\n   Subtotal: " + currency.Format(line.Subtotal()))
		lines = append(lines, b.String())
	}

	footer := "Total: " + currency.Format(order.Total) + "\n\nTerima kasih! 🙏"

	return header + "\n\n" +
		strings.Join(info, "\n") + "\n\n" +
		strings.Join(lines, "\n") + "\n\n" +
		footer
}

// orDash substitutes the placeholder for empty customer fields.
func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
