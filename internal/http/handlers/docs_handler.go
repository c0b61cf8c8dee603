package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /reservation/:id/itinerary.pdf
func (h *Handler) ItineraryPDF(c *gin.Context) {
	pdfBytes, filename, err := h.docsService(c).Itinerary(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
