// controllers/catalog.go
package controllers

import (
	"net/http"

	"salonstore-backend/catalog"
	"salonstore-backend/models"

	"github.com/gin-gonic/gin"
)

// serviceEntry is a catalog service plus the preformatted label the booking
// selector renders.
type serviceEntry struct {
	models.Service
	Label string `json:"label"`
}

// CatalogController serves the immutable reference lists.
type CatalogController struct {
	Catalog *catalog.Catalog
}

// GetServices lists the bookable services.
func (ct *CatalogController) GetServices(c *gin.Context) {
	entries := make([]serviceEntry, 0, len(ct.Catalog.Services))
	for _, s := range ct.Catalog.Services {
		entries = append(entries, serviceEntry{Service: s, Label: s.Label()})
	}
	c.JSON(http.StatusOK, entries)
}

// GetProducts lists the purchasable products.
func (ct *CatalogController) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, ct.Catalog.Products)
}
