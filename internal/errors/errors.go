package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrSurveyNotFound is returned when a survey is not found.
	ErrSurveyNotFound = errors.New("survey not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrReportNotFound is returned when a report is not found.
	ErrReportNotFound = errors.New("report not found")
	// ErrAlreadyVoted is returned when a subject already holds a participation entry.
	ErrAlreadyVoted = errors.New("user has already voted in this survey")
	// ErrAlreadyReacted is returned when a subject already liked or disliked a survey.
	ErrAlreadyReacted = errors.New("user has already reacted to this survey")
	// ErrInvalidAmount is returned when a payment amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidChoice is returned when a vote names an option the survey does not offer.
	ErrInvalidChoice = errors.New("choice is not one of the survey options")
	// ErrInvalidRole is returned when a role change names an unknown role.
	ErrInvalidRole = errors.New("unknown role")
	// ErrInvalidStatus is returned when a status patch names an unknown lifecycle status.
	ErrInvalidStatus = errors.New("unknown survey status")
	// ErrForbidden is returned when the caller's role does not allow the operation.
	ErrForbidden = errors.New("insufficient privileges")
	// ErrUnauthenticated is returned when the session credential is missing or invalid.
	ErrUnauthenticated = errors.New("missing or invalid credentials")
	// ErrGatewayUnavailable is returned when the payment gateway rejects or times out.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
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

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Store failures fall through
// to a generic 500 with no detail exposed to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrSurveyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SURVEY_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrReportNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REPORT_NOT_FOUND")
	case errors.Is(err, ErrAlreadyVoted):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_VOTED")
	case errors.Is(err, ErrAlreadyReacted):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_REACTED")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrInvalidChoice):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CHOICE")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrGatewayUnavailable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "GATEWAY_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
