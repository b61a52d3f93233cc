package offers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sixcities/internal/middleware"
	"sixcities/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /offers.
func (h *Handler) List(c *gin.Context) {
	offers, err := h.service.List(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		response.CommonError(c, http.StatusInternalServerError, "Failed to load offers")
		return
	}
	c.JSON(http.StatusOK, offers)
}

// Get handles GET /offers/:id.
func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.CommonError(c, http.StatusNotFound, "Offer not found")
			return
		}
		response.CommonError(c, http.StatusInternalServerError, "Failed to load offer")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Nearby handles GET /offers/:id/nearby.
func (h *Handler) Nearby(c *gin.Context) {
	offers, err := h.service.Nearby(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.CommonError(c, http.StatusNotFound, "Offer not found")
			return
		}
		response.CommonError(c, http.StatusInternalServerError, "Failed to load nearby offers")
		return
	}
	c.JSON(http.StatusOK, offers)
}
