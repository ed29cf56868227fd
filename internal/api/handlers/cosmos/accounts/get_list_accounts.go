package accounts

import (
	"net/http"
	"strconv"

	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/kashguard/go-cosmos/internal/api/httperrors"
	"github.com/kashguard/go-cosmos/internal/cosmos/account"
	"github.com/kashguard/go-cosmos/internal/types"
	"github.com/kashguard/go-cosmos/internal/util"
	"github.com/labstack/echo/v4"
)

func GetListAccountsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Cosmos.GET("/accounts", getListAccountsHandler(s))
}

func getListAccountsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		filter := &account.Filter{
			Name: c.QueryParam("name"),
		}

		if v := c.QueryParam("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil || limit < 0 {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Invalid limit parameter.")
			}
			filter.Limit = limit
		}

		if v := c.QueryParam("offset"); v != "" {
			offset, err := strconv.Atoi(v)
			if err != nil || offset < 0 {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Invalid offset parameter.")
			}
			filter.Offset = offset
		}

		found, err := s.AccountService.ListAccounts(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("Failed to list accounts")
			return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, "Failed to list accounts.")
		}

		response := &types.ListAccountsResponse{
			Accounts: make([]*types.AccountResponse, 0, len(found)),
			Total:    int64(len(found)),
		}
		for _, a := range found {
			response.Accounts = append(response.Accounts, toAccountResponse(a))
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
