package httperr

import (
	"net/http"
	"strings"

	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Error codes are part of the API contract; clients switch on them instead of messages.
const (
	CodeNotFound               = "NOT_FOUND"
	CodeNotAvailable           = "NOT_AVAILABLE"
	CodeInvalidState           = "INVALID_STATE"
	CodeUnsupportedFilter      = "UNSUPPORTED_FILTER"
	CodeValidation             = "VALIDATION_ERROR"
	CodeConflict               = "CONFLICT"
	CodeConcurrentModification = "CONCURRENT_MODIFICATION"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeRateLimited            = "RATE_LIMITED"
	CodeInternal               = "INTERNAL_ERROR"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// NewResponse builds the error body for status with the code derived from err.
func NewResponse(status int, err error, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Code = CodeOf(err, status)
	resp.Error.Message = msg
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, err, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort classifies err by its taxonomy kind and aborts with the matching status.
// Unclassified errors become a 500 with a generic message.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, Message(err), nil)
}

func StatusOf(err error) int {
	switch errs.Kind(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrNotAvailable, errs.ErrInvalidState, errs.ErrUnsupportedFilter, errs.ErrValidation:
		return http.StatusBadRequest
	case errs.ErrConflict, errs.ErrConcurrentModification:
		return http.StatusConflict
	case errs.ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf names err by its taxonomy kind. Errors without a kind, such as binding
// failures, are named by the status they are answered with.
func CodeOf(err error, status int) string {
	switch errs.Kind(err) {
	case errs.ErrNotFound:
		return CodeNotFound
	case errs.ErrNotAvailable:
		return CodeNotAvailable
	case errs.ErrInvalidState:
		return CodeInvalidState
	case errs.ErrUnsupportedFilter:
		return CodeUnsupportedFilter
	case errs.ErrValidation:
		return CodeValidation
	case errs.ErrConflict:
		return CodeConflict
	case errs.ErrConcurrentModification:
		return CodeConcurrentModification
	case errs.ErrUnauthorized:
		return CodeUnauthorized
	}

	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusTooManyRequests:
		return CodeRateLimited
	default:
		return CodeInternal
	}
}

// Message drops the trailing kind text cockroachdb appends ("booking in future: invalid state").
func Message(err error) string {
	msg := err.Error()
	if kind := errs.Kind(err); kind != nil {
		msg = strings.TrimSuffix(msg, ": "+kind.Error())
	}
	return msg
}
