package handlers

import (
	"errors"
	"log"
	"net/http"

	"lightning-talks-backend/internal/apperrors"
	"lightning-talks-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Session = models.Session
type Talk = models.Talk

// respondError maps the service error taxonomy onto HTTP status codes.
// Storage errors are logged with context and never leak details to clients.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		conflictErr   *apperrors.ConflictError
		notFoundErr   *apperrors.NotFoundError
		authErr       *apperrors.AuthorizationError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Msg})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, ErrorResponse{Error: conflictErr.Msg})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundErr.Msg})
	case errors.As(err, &authErr):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: authErr.Msg})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
