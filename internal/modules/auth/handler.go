package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sixcities/internal/client"
	"sixcities/internal/middleware"
	"sixcities/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "Invalid login request", response.BindingDetails(err))
		return
	}

	info, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.ValidationError(c, http.StatusBadRequest, "Wrong email or password", nil)
			return
		}
		response.CommonError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusCreated, info)
}

// VerifySession handles GET /login; RequireAuth already resolved the user.
func (h *Handler) VerifySession(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	info := user.Info()
	info.Token = c.GetHeader(client.AuthHeaderName)
	c.JSON(http.StatusOK, info)
}

// Logout handles DELETE /logout. Tokens are stateless JWTs, so ending the
// session is purely a client-side affair; the endpoint exists to satisfy
// the API contract.
func (h *Handler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
