package accounts

import (
	"errors"
	"net/http"

	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/kashguard/go-cosmos/internal/api/httperrors"
	"github.com/kashguard/go-cosmos/internal/cosmos/account"
	"github.com/kashguard/go-cosmos/internal/cosmos/auth"
	"github.com/kashguard/go-cosmos/internal/types"
	"github.com/kashguard/go-cosmos/internal/util"
	"github.com/labstack/echo/v4"
)

func PostCreateAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Cosmos.POST("/accounts", postCreateAccountHandler(s))
}

func postCreateAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostCreateAccountPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		req := &account.CreateAccountRequest{
			Name:            *body.Name,
			Endpoint:        *body.Endpoint,
			MasterKey:       *body.MasterKey,
			DefaultDatabase: body.DefaultDatabase,
			Policy:          policyFromLists(body.AllowedVerbs, body.AllowedResourceTypes),
		}

		created, err := s.AccountService.CreateAccount(ctx, req)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to create account")
			switch {
			case errors.Is(err, account.ErrAccountNameExists):
				return httperrors.ErrConflictAccountName
			case errors.Is(err, auth.ErrInvalidMasterKey):
				return httperrors.ErrBadRequestInvalidMasterKey
			case errors.Is(err, account.ErrMissingName):
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Account name is required.")
			default:
				log.Error().Err(err).Msg("Failed to create account")
				return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, "Failed to create account.")
			}
		}

		s.Metrics.IncAccountRequest("create")

		return util.ValidateAndReturn(c, http.StatusCreated, toAccountResponse(created))
	}
}
