package handlers

import (
	"net/http"

	"flyaway/internal/forms"
	"flyaway/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/content
func (h *Handler) Content(c *gin.Context) {
	now := h.now().In(h.location())
	c.JSON(http.StatusOK, gin.H{
		"brand":         h.Catalog.Brand,
		"languages":     h.Catalog.Languages,
		"hero":          h.Catalog.Hero,
		"features":      h.Catalog.Features,
		"promos":        h.Catalog.Promos,
		"testimonials":  h.Catalog.Testimonials,
		"footer":        h.Catalog.Footer,
		"copyrightYear": utils.CopyrightYear(now),
		"search":        forms.NewSearch(now),
		"cabinClasses":  forms.CabinClasses,
	})
}
