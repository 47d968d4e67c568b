package model

// Product is one purchasable menu entry. The catalog is fixed at startup;
// prices are whole rupiah.
type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice int64  `json:"base_price"`
}

// SizeOption adjusts the base price of a product. The price adjustment may
// be zero (and currently is, for the single regular size).
type SizeOption struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	PriceAdjustment int64  `json:"price_adjustment"`
}
