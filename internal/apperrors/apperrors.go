package apperrors

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrTaskNotFound is returned when a task is absent or not owned by the caller.
	ErrTaskNotFound = errors.New("task not found")
	// ErrLabelNotFound is returned when a label is absent or not owned by the caller.
	ErrLabelNotFound = errors.New("label not found")
	// ErrLabelAlreadyExists is returned on a duplicate (title, user) pair.
	ErrLabelAlreadyExists = errors.New("label already exists")
	// ErrUserAlreadyExists is returned when registering an existing username.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Not-found deliberately
// covers both "absent" and "exists but not yours"; callers never learn which.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrTaskNotFound),
		errors.Is(err, ErrLabelNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrLabelAlreadyExists),
		errors.Is(err, ErrUserAlreadyExists),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE")
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
