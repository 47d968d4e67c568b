package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/brewrain/brewrain-backend/internal/app/model"
	"github.com/brewrain/brewrain-backend/pkg/logger"
)

// Defaults applied when a configurator leaves a field untouched.
const (
	DefaultIceLevel   = "Normal"
	DefaultSugarLevel = "75%"
)

// Catalog is the static set of purchasable products and their variants.
// It is loaded once at startup and never mutated afterwards.
type Catalog struct {
	Products    []model.Product    `json:"products"`
	Sizes       []model.SizeOption `json:"sizes"`
	IceLevels   []string           `json:"ice_levels"`
	SugarLevels []string           `json:"sugar_levels"`
}

// Default returns the compiled-in menu.
func Default() *Catalog {
	return &Catalog{
		Products: []model.Product{
			{ID: "matcha", Name: "Matcha Latte", BasePrice: 15000},
			{ID: "aren", Name: "Aren Latte", BasePrice: 15000},
			{ID: "vanilla", Name: "Vanilla Latte", BasePrice: 15000},
			{ID: "caffe", Name: "BRAIN Latte", BasePrice: 15000},
			{ID: "thai", Name: "Thai Tea", BasePrice: 15000},
			{ID: "green", Name: "Green Tea", BasePrice: 15000},
			{ID: "coklat", Name: "Choco Luxe", BasePrice: 15000},
		},
		Sizes: []model.SizeOption{
			{ID: "250", Label: "Reguler", PriceAdjustment: 0},
		},
		IceLevels:   []string{"Normal"},
		SugarLevels: []string{"0%", "25%", "50%", "75%", "100%"},
	}
}

// Load reads a catalog from a JSON file. An empty path returns the
// compiled-in defaults. Level lists omitted from the file fall back to the
// default enumerations.
func Load(path string) (*Catalog, error) {
	if path == "" {
		logger.Info("Using compiled-in catalog", nil)
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	defaults := Default()
	if len(c.IceLevels) == 0 {
		c.IceLevels = defaults.IceLevels
	}
	if len(c.SugarLevels) == 0 {
		c.SugarLevels = defaults.SugarLevels
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Catalog loaded", map[string]interface{}{
		"path":     path,
		"products": len(c.Products),
		"sizes":    len(c.Sizes),
	})
	return &c, nil
}

// Validate checks the structural rules a usable catalog must satisfy.
func (c *Catalog) Validate() error {
	if len(c.Products) == 0 {
		return fmt.Errorf("catalog has no products")
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("catalog has no size options")
	}

	seen := make(map[string]bool, len(c.Products))
	for _, p := range c.Products {
		if p.ID == "" || p.Name == "" {
			return fmt.Errorf("product entries need both id and name")
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.BasePrice < 0 {
			return fmt.Errorf("product %q has a negative base price", p.ID)
		}
		seen[p.ID] = true
	}

	sizes := make(map[string]bool, len(c.Sizes))
	for _, s := range c.Sizes {
		if s.ID == "" || s.Label == "" {
			return fmt.Errorf("size entries need both id and label")
		}
		if sizes[s.ID] {
			return fmt.Errorf("duplicate size id %q", s.ID)
		}
		sizes[s.ID] = true
	}

	return nil
}

// ProductByID looks up a product.
func (c *Catalog) ProductByID(id string) (model.Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// SizeByID looks up a size option.
func (c *Catalog) SizeByID(id string) (model.SizeOption, bool) {
	for _, s := range c.Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return model.SizeOption{}, false
}

// DefaultSize is the first size option, applied when a request names none.
func (c *Catalog) DefaultSize() model.SizeOption {
	return c.Sizes[0]
}

// HasIceLevel reports whether the level is a catalog enumeration entry.
func (c *Catalog) HasIceLevel(level string) bool {
	return contains(c.IceLevels, level)
}

// HasSugarLevel reports whether the level is a catalog enumeration entry.
func (c *Catalog) HasSugarLevel(level string) bool {
	return contains(c.SugarLevels, level)
}

// UnitPrice is the product base price plus the size adjustment.
func (c *Catalog) UnitPrice(product model.Product, size model.SizeOption) int64 {
	return product.BasePrice + size.PriceAdjustment
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
