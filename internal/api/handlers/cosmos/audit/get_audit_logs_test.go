package audit_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/kashguard/go-cosmos/internal/cosmos/audit"
	"github.com/kashguard/go-cosmos/internal/test"
	"github.com/kashguard/go-cosmos/internal/types"
	"github.com/stretchr/testify/require"
)

func TestGetAuditLogs(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		createPayload := types.PostCreateAccountPayload{
			Name:      swag.String("audited-account"),
			Endpoint:  swag.String("https://audited.documents.azure.com"),
			MasterKey: swag.String(base64.StdEncoding.EncodeToString([]byte("my-master-key"))),
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/cosmos/accounts", createPayload, nil)
		require.Equal(t, http.StatusCreated, res.Code)

		signPayload := types.PostSignPayload{
			Account:      "audited-account",
			Verb:         swag.String("GET"),
			ResourceType: swag.String("colls"),
			ResourceID:   swag.String("dbs/ToDoList/colls/Items"),
		}

		res = test.PerformRequest(t, s, "POST", "/api/v1/cosmos/sign", signPayload, nil)
		require.Equal(t, http.StatusOK, res.Code)

		res = test.PerformRequest(t, s, "GET", "/api/v1/cosmos/audit-logs", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var response types.GetAuditLogsResponse
		test.ParseResponseAndValidate(t, res, &response)
		require.GreaterOrEqual(t, response.Total, int64(2))

		eventTypes := make([]string, 0, len(response.Events))
		for _, e := range response.Events {
			eventTypes = append(eventTypes, *e.EventType)
		}
		require.Contains(t, eventTypes, audit.EventTypeAccountCreated)
		require.Contains(t, eventTypes, audit.EventTypeSignAuthorization)
	})
}

func TestGetAuditLogsFiltered(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		createPayload := types.PostCreateAccountPayload{
			Name:      swag.String("audited-account"),
			Endpoint:  swag.String("https://audited.documents.azure.com"),
			MasterKey: swag.String(base64.StdEncoding.EncodeToString([]byte("my-master-key"))),
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/cosmos/accounts", createPayload, nil)
		require.Equal(t, http.StatusCreated, res.Code)

		res = test.PerformRequest(t, s, "GET", "/api/v1/cosmos/audit-logs?event_type="+audit.EventTypeAccountCreated, nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var response types.GetAuditLogsResponse
		test.ParseResponseAndValidate(t, res, &response)
		require.Equal(t, int64(1), response.Total)
		require.Equal(t, audit.EventTypeAccountCreated, *response.Events[0].EventType)
	})
}

func TestGetAuditLogsInvalidParams(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/cosmos/audit-logs?limit=abc", nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Code)

		res = test.PerformRequest(t, s, "GET", "/api/v1/cosmos/audit-logs?start_time=not-a-time", nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Code)
	})
}
