package model

// Customer holds the contact details entered with an order. All fields are
// free text; empty fields render as a placeholder dash, never as errors.
// Notes doubles as the delivery-window field for this store.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}
