package comments

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

// List handles GET /comments/:id.
func (h *Handler) List(c *gin.Context) {
	comments, err := h.service.ListByOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			response.CommonError(c, http.StatusNotFound, "Offer not found")
			return
		}
		response.CommonError(c, http.StatusInternalServerError, "Failed to load comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Create handles POST /comments/:id.
func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "Invalid comment", response.BindingDetails(err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.Comment, req.Rating)
	if err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			response.CommonError(c, http.StatusNotFound, "Offer not found")
			return
		}
		response.CommonError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}
	c.JSON(http.StatusCreated, created)
}
