package handlers

import (
	"net/http"

	"flyaway/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/search
func (h *Handler) Search(c *gin.Context) {
	var q models.TripSearchQuery
	if !BindJSONOrError(c, &q) {
		return
	}
	res, err := h.searchService(c).Search(q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
