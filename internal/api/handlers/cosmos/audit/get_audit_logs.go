package audit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/kashguard/go-cosmos/internal/api/httperrors"
	"github.com/kashguard/go-cosmos/internal/cosmos/storage"
	"github.com/kashguard/go-cosmos/internal/types"
	"github.com/kashguard/go-cosmos/internal/util"
	"github.com/labstack/echo/v4"
)

func GetAuditLogsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Cosmos.GET("/audit-logs", getAuditLogsHandler(s))
}

func getAuditLogsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		// 构建过滤器
		filter := &storage.AuditLogFilter{
			AccountID: c.QueryParam("account_id"),
			UserID:    c.QueryParam("user_id"),
			EventType: c.QueryParam("event_type"),
			Operation: c.QueryParam("operation"),
			Result:    c.QueryParam("result"),
			Limit:     100, //nolint:mnd // default limit for audit logs
			Offset:    0,
		}

		// 解析时间参数
		if v := c.QueryParam("start_time"); v != "" {
			startTime, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Invalid start_time parameter.")
			}
			filter.StartTime = &startTime
		}
		if v := c.QueryParam("end_time"); v != "" {
			endTime, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Invalid end_time parameter.")
			}
			filter.EndTime = &endTime
		}

		// 解析 limit 和 offset
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

		// 查询审计日志
		events, err := s.Store.QueryAuditLogs(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("Failed to query audit logs")
			return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, "Failed to query audit logs.")
		}

		// 转换响应
		eventResponses := make([]*types.AuditEventResponse, 0, len(events))
		for _, event := range events {
			timestamp := strfmt.DateTime(event.Timestamp)
			eventResponse := &types.AuditEventResponse{
				Timestamp: &timestamp,
				EventType: &event.EventType,
				Operation: &event.Operation,
				Result:    &event.Result,
				UserID:    event.UserID,
				AccountID: event.AccountID,
				IPAddress: event.IPAddress,
			}
			if event.Details != nil {
				eventResponse.Details = event.Details
			}
			eventResponses = append(eventResponses, eventResponse)
		}

		response := &types.GetAuditLogsResponse{
			Events: eventResponses,
			Total:  int64(len(eventResponses)),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
