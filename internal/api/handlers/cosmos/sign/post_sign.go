package sign

import (
	"errors"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/kashguard/go-cosmos/internal/api/httperrors"
	"github.com/kashguard/go-cosmos/internal/cosmos/auth"
	"github.com/kashguard/go-cosmos/internal/cosmos/policy"
	"github.com/kashguard/go-cosmos/internal/cosmos/sign"
	"github.com/kashguard/go-cosmos/internal/types"
	"github.com/kashguard/go-cosmos/internal/util"
	"github.com/labstack/echo/v4"
)

func PostSignRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Cosmos.POST("/sign", postSignHandler(s))
}

func postSignHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSignPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		// 转换请求，未指定账户时回退到配置的默认账户
		account := body.Account
		if account == "" && body.MasterKey == "" {
			account = s.Config.Cosmos.DefaultAccount
		}

		req := &sign.SignRequest{
			Account:      account,
			MasterKey:    body.MasterKey,
			Verb:         *body.Verb,
			ResourceType: *body.ResourceType,
			ResourceID:   *body.ResourceID,
			Date:         body.Date,
		}

		// 调用服务
		resp, err := s.SignService.Sign(ctx, req)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to sign authorization")
			switch {
			case errors.Is(err, sign.ErrAccountNotFound):
				return httperrors.ErrNotFoundAccount
			case errors.Is(err, sign.ErrMissingMasterKey):
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Either a master key or an account is required.")
			case errors.Is(err, auth.ErrInvalidMasterKey):
				return httperrors.ErrBadRequestInvalidMasterKey
			case errors.Is(err, policy.ErrVerbNotAllowed), errors.Is(err, policy.ErrResourceTypeNotAllowed):
				return httperrors.ErrForbiddenPolicy
			default:
				log.Error().Err(err).Msg("Failed to sign authorization")
				return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, "Failed to sign authorization.")
			}
		}

		// 转换响应
		response := &types.PostSignResponse{
			Authorization: swag.String(resp.Authorization),
			Date:          swag.String(resp.Date),
			AccountID:     resp.AccountID,
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
