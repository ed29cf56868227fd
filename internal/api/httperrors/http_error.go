package httperrors

import (
	"fmt"

	"github.com/go-openapi/swag"
	"github.com/kashguard/go-cosmos/internal/types"
	"github.com/labstack/echo/v4"
)

// HTTPError wraps the public error payload with internal context that is
// logged but never returned to the caller.
type HTTPError struct {
	types.PublicHTTPError
	Internal       error
	AdditionalData map[string]string
}

// NewHTTPError returns a new HTTPError with the given code, type and title.
func NewHTTPError(code int, errorType, title string) *HTTPError {
	return &HTTPError{
		PublicHTTPError: types.PublicHTTPError{
			Code:  swag.Int64(int64(code)),
			Type:  swag.String(errorType),
			Title: swag.String(title),
		},
	}
}

// NewHTTPErrorWithDetail returns a new HTTPError with an additional public detail string.
func NewHTTPErrorWithDetail(code int, errorType, title, detail string) *HTTPError {
	e := NewHTTPError(code, errorType, title)
	e.Detail = detail
	return e
}

// NewFromEcho converts an *echo.HTTPError into an HTTPError.
func NewFromEcho(e *echo.HTTPError) *HTTPError {
	return NewHTTPError(e.Code, types.PublicHTTPErrorTypeGeneric, fmt.Sprintf("%v", e.Message))
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTPError %d (%s): %s", *e.Code, *e.Type, *e.Title)
}

// HTTPValidationError is an HTTPError carrying per-field validation details.
type HTTPValidationError struct {
	types.PublicHTTPValidationError
	Internal       error
	AdditionalData map[string]string
}

// NewHTTPValidationError returns a new HTTPValidationError with the given validation error details.
func NewHTTPValidationError(code int, errorType, title string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		PublicHTTPValidationError: types.PublicHTTPValidationError{
			PublicHTTPError: types.PublicHTTPError{
				Code:  swag.Int64(int64(code)),
				Type:  swag.String(errorType),
				Title: swag.String(title),
			},
			ValidationErrors: validationErrors,
		},
	}
}

func (e *HTTPValidationError) Error() string {
	return fmt.Sprintf("HTTPValidationError %d (%s): %s (%d fields)", *e.Code, *e.Type, *e.Title, len(e.ValidationErrors))
}
