package favorites

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sixcities/internal/domain"
	"sixcities/internal/middleware"
	"sixcities/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /favorite.
func (h *Handler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	offers, err := h.service.List(c.Request.Context(), user.ID)
	if err != nil {
		response.CommonError(c, http.StatusInternalServerError, "Failed to load favorites")
		return
	}
	c.JSON(http.StatusOK, offers)
}

// Set handles POST /favorite/:offerId/:status with status 1 (add) or
// 0 (remove).
func (h *Handler) Set(c *gin.Context) {
	user := middleware.CurrentUser(c)

	status := c.Param("status")
	if status != "0" && status != "1" {
		response.ValidationError(c, http.StatusBadRequest, "Invalid favorite status", []domain.ErrorDetail{
			{Property: "status", Messages: []string{"status must be 0 or 1"}},
		})
		return
	}

	updated, err := h.service.Set(c.Request.Context(), user.ID, c.Param("offerId"), status == "1")
	if err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			response.CommonError(c, http.StatusNotFound, "Offer not found")
			return
		}
		response.CommonError(c, http.StatusInternalServerError, "Failed to update favorite")
		return
	}

	code := http.StatusOK
	if updated.IsFavorite {
		code = http.StatusCreated
	}
	c.JSON(code, updated)
}
