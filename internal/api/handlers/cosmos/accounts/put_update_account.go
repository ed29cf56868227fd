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

func PutUpdateAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Cosmos.PUT("/accounts/:account_id", putUpdateAccountHandler(s))
}

func putUpdateAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		accountID := c.Param("account_id")

		var body types.PutUpdateAccountPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		req := &account.UpdateAccountRequest{
			Endpoint:        body.Endpoint,
			MasterKey:       body.MasterKey,
			DefaultDatabase: body.DefaultDatabase,
			Policy:          policyFromLists(body.AllowedVerbs, body.AllowedResourceTypes),
		}

		updated, err := s.AccountService.UpdateAccount(ctx, accountID, req)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to update account")
			switch {
			case errors.Is(err, account.ErrAccountNotFound):
				return httperrors.ErrNotFoundAccount
			case errors.Is(err, auth.ErrInvalidMasterKey):
				return httperrors.ErrBadRequestInvalidMasterKey
			default:
				log.Error().Err(err).Msg("Failed to update account")
				return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, "Failed to update account.")
			}
		}

		s.Metrics.IncAccountRequest("update")

		return util.ValidateAndReturn(c, http.StatusOK, toAccountResponse(updated))
	}
}
