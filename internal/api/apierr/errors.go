package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kalegame/circleoftrust/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeCircleDoesNotExist    = "CIRCLE_DOES_NOT_EXIST"
	CodePlayerNotFound        = "PLAYER_NOT_FOUND"
	CodeAlreadyCreatedCircle  = "ALREADY_CREATED_CIRCLE"
	CodeAlreadyInCircle       = "ALREADY_IN_CIRCLE"
	CodeCircleBetrayed        = "CIRCLE_BETRAYED"
	CodeNotOwner              = "NOT_OWNER"
	CodeCannotJoinOwnCircle   = "CANNOT_JOIN_OWN_CIRCLE"
	CodeCannotBetrayOwnCircle = "CANNOT_BETRAY_OWN_CIRCLE"
	CodeWrongPassword         = "WRONG_PASSWORD"
	CodeLongPassword          = "LONG_PASSWORD"
	CodeInvalidAmount         = "INVALID_AMOUNT"
	CodeInternalError         = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrCircleDoesNotExist):
		return &httpError{http.StatusNotFound, APIError{CodeCircleDoesNotExist, "Circle does not exist"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrAlreadyCreatedCircle):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyCreatedCircle, "Wallet has already created a circle"}}
	case errors.Is(err, model.ErrAlreadyInCircle):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInCircle, "Wallet is already in a circle"}}
	case errors.Is(err, model.ErrCircleBetrayed):
		return &httpError{http.StatusConflict, APIError{CodeCircleBetrayed, "Circle has been betrayed"}}
	case errors.Is(err, model.ErrNotOwner):
		return &httpError{http.StatusForbidden, APIError{CodeNotOwner, "Only the circle creator can perform this action"}}
	case errors.Is(err, model.ErrCannotJoinOwnCircle):
		return &httpError{http.StatusForbidden, APIError{CodeCannotJoinOwnCircle, "Cannot join your own circle"}}
	case errors.Is(err, model.ErrCannotBetrayOwnCircle):
		return &httpError{http.StatusForbidden, APIError{CodeCannotBetrayOwnCircle, "Cannot betray your own circle"}}
	case errors.Is(err, model.ErrWrongPassword):
		return &httpError{http.StatusForbidden, APIError{CodeWrongPassword, "Wrong password"}}
	case errors.Is(err, model.ErrLongPassword):
		return &httpError{http.StatusBadRequest, APIError{CodeLongPassword, "Password exceeds maximum length"}}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAmount, "Invalid amount"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Wallet identification required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
