package httperrors

import (
	"net/http"

	"github.com/kashguard/go-cosmos/internal/types"
)

var (
	ErrBadRequestInvalidMasterKey = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Master key is not valid base64.")
	ErrNotFoundAccount            = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeGeneric, "Account not found.")
	ErrConflictAccountName        = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeGeneric, "Account name already exists.")
	ErrForbiddenPolicy            = NewHTTPError(http.StatusForbidden, types.PublicHTTPErrorTypeGeneric, "Request is not allowed by account policy.")
)
