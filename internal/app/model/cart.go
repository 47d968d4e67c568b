package model

// CartLine is one confirmed, priced, configured unit of a product pending
// submission. Lines are immutable snapshots: the unit price is fixed at the
// moment the line is created and later catalog changes never touch it.
// Quantity changes replace the whole line.
type CartLine struct {
	ID         string `json:"id"`
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	SizeID     string `json:"size_id"`
	SizeLabel  string `json:"size_label"`
	IceLevel   string `json:"ice_level"`
	SugarLevel string `json:"sugar_level"`
	Notes      string `json:"notes"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
}

// Subtotal returns unit price times quantity.
func (l CartLine) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart is the ordered collection of confirmed lines, most recent first.
// Every mutation returns a fresh snapshot with its own backing array, so a
// renderer holding an older snapshot never observes a partial update.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add prepends a line so the newest addition is listed first.
func (c Cart) Add(line CartLine) Cart {
	lines := make([]CartLine, 0, len(c.Lines)+1)
	lines = append(lines, line)
	lines = append(lines, c.Lines...)
	return Cart{Lines: lines}
}

// Remove filters out the line with the given id. A missing id is a no-op,
// not an error.
func (c Cart) Remove(id string) Cart {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.ID != id {
			lines = append(lines, line)
		}
	}
	return Cart{Lines: lines}
}

// SetQuantity replaces the line with the given id using the new quantity,
// clamped to a minimum of 1. A missing id is a no-op.
func (c Cart) SetQuantity(id string, quantity int) Cart {
	if quantity < 1 {
		quantity = 1
	}
	lines := make([]CartLine, len(c.Lines))
	for i, line := range c.Lines {
		if line.ID == id {
			line.Quantity = quantity
		}
		lines[i] = line
	}
	return Cart{Lines: lines}
}

// Find returns the line with the given id, if present.
func (c Cart) Find(id string) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ID == id {
			return line, true
		}
	}
	return CartLine{}, false
}

// Total is the sum of line subtotals. No rounding or tax is applied.
func (c Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}

// Len returns the number of lines.
func (c Cart) Len() int {
	return len(c.Lines)
}

// Clone returns a snapshot with a copied backing array.
func (c Cart) Clone() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
