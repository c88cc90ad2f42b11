package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ElyRami/Loterias/internal/errors"
	"github.com/ElyRami/Loterias/internal/models"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response as written by middleware.ErrorHandler.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// parseOptionalDate parses a YYYY-MM-DD value; an empty string yields nil.
func parseOptionalDate(value, field string) (*models.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := models.ParseDate(value)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+field+": expected YYYY-MM-DD")
	}
	return &d, nil
}

// respondWithError attaches err to the request and stops the handler chain.
// middleware.ErrorHandler renders it as an ErrorResponse.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
