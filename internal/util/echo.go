package util

import (
	"net/http"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/kashguard/go-cosmos/internal/api/httperrors"
	"github.com/kashguard/go-cosmos/internal/types"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BindAndValidateBody binds the JSON body of the request to the given
// payload and validates it, returning an HTTPValidationError with per-field
// details on failure.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("failed to access default binder")
	}

	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response payload and writes it as JSON.
// An invalid response payload is a server error, not a client one.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		return err
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	err := v.Validate(strfmt.Default)
	if err == nil {
		return nil
	}

	details := validationErrorDetails(err)
	LogFromEchoContext(c).Debug().Err(err).Msg("Payload validation failed")

	return httperrors.NewHTTPValidationError(
		http.StatusBadRequest,
		types.PublicHTTPErrorTypeGeneric,
		http.StatusText(http.StatusBadRequest),
		details,
	)
}

// validationErrorDetails flattens go-openapi validation errors into the
// public detail representation.
func validationErrorDetails(err error) []*types.HTTPValidationErrorDetail {
	var details []*types.HTTPValidationErrorDetail

	var composite *openapierrors.CompositeError
	if errors.As(err, &composite) {
		for _, nested := range composite.Errors {
			details = append(details, validationErrorDetails(nested)...)
		}
		return details
	}

	var validation *openapierrors.Validation
	if errors.As(err, &validation) {
		return []*types.HTTPValidationErrorDetail{{
			Key:   swag.String(validation.Name),
			In:    swag.String(validation.In),
			Error: swag.String(validation.Error()),
		}}
	}

	return []*types.HTTPValidationErrorDetail{{
		Key:   swag.String("body"),
		In:    swag.String("body"),
		Error: swag.String(err.Error()),
	}}
}
