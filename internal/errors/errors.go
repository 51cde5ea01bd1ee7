package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAdNotFound is returned when an ad is not found.
	ErrAdNotFound = errors.New("ad not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbiddenRole is returned when the caller's role does not permit the action.
	ErrForbiddenRole = errors.New("you dont have access to this")
	// ErrForbiddenOwnership is returned when the caller does not own the target resource.
	ErrForbiddenOwnership = errors.New("you do not have permission to access this resource")
	// ErrDuplicateReview is returned when a user reviews the same ad twice.
	ErrDuplicateReview = errors.New("repeated review")
	// ErrDuplicateComplaint is returned when a user complains about the same ad twice.
	ErrDuplicateComplaint = errors.New("repeated complaint")
	// ErrInvalidRating is returned when a review rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrInvalidAdType is returned when an unknown ad type is supplied.
	ErrInvalidAdType = errors.New("invalid ad type")
)

// InternalDetail is the fixed detail string for unexpected failures. The
// real cause is logged and forwarded to the alert sink, never returned.
const InternalDetail = "An unexpected error occurred"

// Envelope is the shared response body shape.
type Envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
	Details interface{} `json:"details"`
}

// ErrorEnvelope is the error response body shape.
type ErrorEnvelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
	Detail string      `json:"detail"`
}

// Success wraps data in a success envelope.
func Success(data interface{}) Envelope {
	return Envelope{Status: "success", Data: data, Details: nil}
}

// Failure builds an error envelope with the given detail.
func Failure(detail string) ErrorEnvelope {
	return ErrorEnvelope{Status: "error", Data: nil, Detail: detail}
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAdNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "AD_NOT_FOUND")
	case errors.Is(err, ErrCommentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrForbiddenRole):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN_ROLE")
	case errors.Is(err, ErrForbiddenOwnership):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN_OWNERSHIP")
	case errors.Is(err, ErrDuplicateReview), errors.Is(err, ErrDuplicateComplaint):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE")
	case errors.Is(err, ErrInvalidRating):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RATING")
	case errors.Is(err, ErrInvalidAdType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AD_TYPE")
	default:
		return NewHTTPError(http.StatusInternalServerError, InternalDetail, "INTERNAL_ERROR")
	}
}
