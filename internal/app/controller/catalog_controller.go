package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewrain/brewrain-backend/internal/app/service"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetCatalog returns the full menu in one payload
// GET /api/v1/catalog
func (ctrl *CatalogController) GetCatalog(c *gin.Context) {
	view := ctrl.catalogService.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"products":     view.Products,
		"sizes":        view.Sizes,
		"ice_levels":   view.IceLevels,
		"sugar_levels": view.SugarLevels,
	})
}
