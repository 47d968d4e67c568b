package service

import (
	"github.com/brewrain/brewrain-backend/internal/app/model"
	"github.com/brewrain/brewrain-backend/internal/catalog"
)

// CatalogView is the single payload the order form needs to render every
// configurator: products, sizes, and the two level enumerations.
type CatalogView struct {
	Products    []model.Product    `json:"products"`
	Sizes       []model.SizeOption `json:"sizes"`
	IceLevels   []string           `json:"ice_levels"`
	SugarLevels []string           `json:"sugar_levels"`
}

type CatalogService interface {
	Snapshot() CatalogView
}

type catalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(c *catalog.Catalog) CatalogService {
	return &catalogService{catalog: c}
}

func (s *catalogService) Snapshot() CatalogView {
	return CatalogView{
		Products:    s.catalog.Products,
		Sizes:       s.catalog.Sizes,
		IceLevels:   s.catalog.IceLevels,
		SugarLevels: s.catalog.SugarLevels,
	}
}
