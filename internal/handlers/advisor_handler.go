package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warung-catalog/internal/advisor"
)

// AdvisorHandler expone las llamadas best-effort de asesoría. La
// ausencia de sugerencia es una respuesta 200 con cuerpo null: la
// presentación muestra "sin sugerencia" y sigue en modo manual.
type AdvisorHandler struct {
	advisor *advisor.Client
}

func NewAdvisorHandler(a *advisor.Client) *AdvisorHandler {
	return &AdvisorHandler{advisor: a}
}

// GET /v1/suggestions?name=
func (h *AdvisorHandler) SuggestProductInfo(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name query parameter is required"})
		return
	}

	suggestion := h.advisor.Suggest(c.Request.Context(), name)
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

// GET /v1/product-images?name=
func (h *AdvisorHandler) GenerateProductImage(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name query parameter is required"})
		return
	}

	image := h.advisor.GenerateImage(c.Request.Context(), name)
	if image == "" {
		c.JSON(http.StatusOK, gin.H{"image": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": image})
}
