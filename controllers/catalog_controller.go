// controllers/catalog_controller.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Akralan/NutriPlanner-sub000/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// GetCatalog handles GET /catalog?month=jun — the seasonal food browse.
// Month defaults to the current one.
func (h *CatalogController) GetCatalog(c *gin.Context) {
	month := strings.ToLower(c.DefaultQuery("month", time.Now().Format("Jan")))
	items, err := h.Catalog.InSeason(month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
