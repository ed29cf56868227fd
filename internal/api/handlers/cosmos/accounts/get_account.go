package accounts

import (
	"errors"
	"net/http"

	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/kashguard/go-cosmos/internal/api/httperrors"
	"github.com/kashguard/go-cosmos/internal/cosmos/account"
	"github.com/kashguard/go-cosmos/internal/types"
	"github.com/kashguard/go-cosmos/internal/util"
	"github.com/labstack/echo/v4"
)

func GetAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Cosmos.GET("/accounts/:account_id", getAccountHandler(s))
}

func getAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		accountID := c.Param("account_id")

		found, err := s.AccountService.GetAccount(ctx, accountID)
		if err != nil {
			if errors.Is(err, account.ErrAccountNotFound) {
				return httperrors.ErrNotFoundAccount
			}

			log.Error().Err(err).Msg("Failed to get account")
			return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, "Failed to get account.")
		}

		return util.ValidateAndReturn(c, http.StatusOK, toAccountResponse(found))
	}
}
