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

func DeleteAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Cosmos.DELETE("/accounts/:account_id", deleteAccountHandler(s))
}

func deleteAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		accountID := c.Param("account_id")

		if err := s.AccountService.DeleteAccount(ctx, accountID); err != nil {
			if errors.Is(err, account.ErrAccountNotFound) {
				return httperrors.ErrNotFoundAccount
			}

			log.Error().Err(err).Msg("Failed to delete account")
			return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, "Failed to delete account.")
		}

		s.Metrics.IncAccountRequest("delete")

		return c.NoContent(http.StatusNoContent)
	}
}
