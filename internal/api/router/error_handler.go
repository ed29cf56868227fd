package router

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/kashguard/go-cosmos/internal/api/httperrors"
	"github.com/kashguard/go-cosmos/internal/types"
	"github.com/kashguard/go-cosmos/internal/util"
	"github.com/labstack/echo/v4"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig returns an echo.HTTPErrorHandler that converts
// any error bubbling out of a handler into our public error payload.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := util.LogFromEchoContext(c)

		var code int
		var he error

		switch e := err.(type) {
		case *httperrors.HTTPError:
			code = int(*e.Code)

			if e.Internal != nil {
				log.Warn().Err(e.Internal).Msg("Internal HTTPError")

				if code == http.StatusInternalServerError && config.HideInternalServerErrorDetails {
					e.Detail = ""
				}
			}

			he = e
		case *httperrors.HTTPValidationError:
			code = int(*e.Code)

			if e.Internal != nil {
				log.Warn().Err(e.Internal).Msg("Internal HTTPValidationError")
			}

			he = e
		case *echo.HTTPError:
			code = e.Code

			if e.Internal != nil {
				log.Warn().Err(e.Internal).Msg("Internal echo.HTTPError")
			}

			msg := http.StatusText(e.Code)
			if !config.HideInternalServerErrorDetails || e.Code != http.StatusInternalServerError {
				if m, ok := e.Message.(string); ok {
					msg = m
				}
			}

			he = &httperrors.HTTPError{
				PublicHTTPError: types.PublicHTTPError{
					Code:  swag.Int64(int64(e.Code)),
					Type:  swag.String(types.PublicHTTPErrorTypeGeneric),
					Title: swag.String(msg),
				},
			}
		default:
			log.Error().Err(err).Msg("Unhandled error")

			code = http.StatusInternalServerError
			title := http.StatusText(http.StatusInternalServerError)
			if !config.HideInternalServerErrorDetails {
				title = err.Error()
			}

			he = &httperrors.HTTPError{
				PublicHTTPError: types.PublicHTTPError{
					Code:  swag.Int64(int64(http.StatusInternalServerError)),
					Type:  swag.String(types.PublicHTTPErrorTypeGeneric),
					Title: swag.String(title),
				},
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, he)
		}

		if err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
	}
}
