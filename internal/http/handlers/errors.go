package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/http/middleware"
)

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"details":    details,
		"request_id": middleware.GetRequestID(c),
	})
}

// respondRedirect answers a step-precondition failure: the client should
// send the traveler back to the named step with the notice as a toast.
func respondRedirect(c *gin.Context, redirect domain.RedirectError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":       redirect.Msg,
		"code":        "redirect",
		"redirect_to": redirect.Target,
		"request_id":  middleware.GetRequestID(c),
	})
}

// respondFieldErrors surfaces per-field validation messages; the client
// keeps the traveler on the current step.
func respondFieldErrors(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":      "validation failed",
		"code":       "field_validation",
		"errors":     errs,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	if redirect, ok := domain.AsRedirect(err); ok {
		respondRedirect(c, redirect)
		return
	}
	switch {
	case domain.IsCapacity(err):
		respondError(c, http.StatusBadRequest, "capacity_error", err.Error(), nil)
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
