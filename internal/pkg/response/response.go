// Package response writes failures in the backend error contract the client
// recognizes: common errors carry a status and message, validation errors
// add per-property detail entries. Unauthorized responses deliberately carry
// no structured body.
package response

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"sixcities/internal/domain"
)

func CommonError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, domain.ServerError{
		Status:    statusCode,
		ErrorType: domain.CommonError,
		Message:   message,
	})
}

func ValidationError(c *gin.Context, statusCode int, message string, details []domain.ErrorDetail) {
	c.JSON(statusCode, domain.ServerError{
		Status:    statusCode,
		ErrorType: domain.ValidationError,
		Message:   message,
		Details:   details,
	})
}

// BindingDetails converts gin binding failures into per-property detail
// entries. Non-validator errors (malformed JSON) yield a single "body" entry.
func BindingDetails(err error) []domain.ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.ErrorDetail{{Property: "body", Messages: []string{err.Error()}}}
	}

	details := make([]domain.ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, domain.ErrorDetail{
			Property: strings.ToLower(fe.Field()),
			Messages: []string{fmt.Sprintf("failed on the %q rule", fe.Tag())},
		})
	}
	return details
}
