package types

import (
	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// Public error types returned to API consumers.
const (
	PublicHTTPErrorTypeGeneric = "generic"
)

// PublicHTTPError is the wire representation of an unsuccessful request.
type PublicHTTPError struct {
	// HTTP status code
	Code *int64 `json:"status"`
	// Error type identifier
	Type *string `json:"type"`
	// Short human readable title
	Title *string `json:"title"`
	// Optional details
	Detail string `json:"detail,omitempty"`
}

// Validate validates this public HTTP error.
func (e *PublicHTTPError) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("status", "body", e.Code); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("type", "body", e.Type); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("title", "body", e.Title); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return openapierrors.CompositeValidationError(res...)
	}

	return nil
}

// PublicHTTPValidationError extends PublicHTTPError with per-field details.
type PublicHTTPValidationError struct {
	PublicHTTPError

	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// Validate validates this public HTTP validation error.
func (e *PublicHTTPValidationError) Validate(formats strfmt.Registry) error {
	return e.PublicHTTPError.Validate(formats)
}

// HTTPValidationErrorDetail describes a single invalid field.
type HTTPValidationErrorDetail struct {
	// Name of the invalid field
	Key *string `json:"key"`
	// Location of the field (body, query, path)
	In *string `json:"in"`
	// Description of the violation
	Error *string `json:"error"`
}
