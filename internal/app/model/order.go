package model

// Order is the derived view handed to the message composer and receipt
// renderer. It is assembled on demand from the current cart and customer
// details and never stored.
type Order struct {
	Lines    []CartLine `json:"lines"`
	Customer Customer   `json:"customer"`
	Total    int64      `json:"total"`
}

// NewOrder assembles an order snapshot from a cart and customer details.
func NewOrder(cart Cart, customer Customer) Order {
	return Order{
		Lines:    cart.Lines,
		Customer: customer,
		Total:    cart.Total(),
	}
}
