// Package response defines the uniform JSON envelope shared by every
// endpoint: successful handlers reply with Body, failures with APIError.
package response

import (
	"errors"
	"net/http"

	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Body struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// APIError carries an HTTP status code alongside the message so handlers can
// raise it anywhere in the call chain and let Wrap shape the reply.
type APIError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(statusCode int, message string, errs ...string) *APIError {
	if errs == nil {
		errs = []string{}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     errs,
	}
}

func BadRequest(message string, errs ...string) *APIError {
	return NewAPIError(http.StatusBadRequest, message, errs...)
}

func Unauthorized(message string, errs ...string) *APIError {
	return NewAPIError(http.StatusUnauthorized, message, errs...)
}

func Forbidden(message string, errs ...string) *APIError {
	return NewAPIError(http.StatusForbidden, message, errs...)
}

func NotFound(message string, errs ...string) *APIError {
	return NewAPIError(http.StatusNotFound, message, errs...)
}

func Internal(message string, errs ...string) *APIError {
	return NewAPIError(http.StatusInternalServerError, message, errs...)
}

// OK writes the success envelope with the HTTP status equal to statusCode.
func OK(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, Body{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < http.StatusBadRequest,
	})
}

type HandlerFunc func(c *gin.Context) error

// Wrap adapts an error-returning handler to gin. Any *APIError is written
// as-is; everything else is logged and becomes a 500 so no request ever
// terminates without a well-formed JSON body.
func Wrap(log *logger.Logger, fn HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := fn(c)
		if err == nil {
			return
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			log.Error("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			apiErr = Internal("Internal server error")
		}
		c.JSON(apiErr.StatusCode, apiErr)
	}
}
