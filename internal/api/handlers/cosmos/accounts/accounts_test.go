package accounts_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/kashguard/go-cosmos/internal/api/httperrors"
	"github.com/kashguard/go-cosmos/internal/test"
	"github.com/kashguard/go-cosmos/internal/types"
	"github.com/stretchr/testify/require"
)

func validCreatePayload(name string) types.PostCreateAccountPayload {
	return types.PostCreateAccountPayload{
		Name:      swag.String(name),
		Endpoint:  swag.String("https://" + name + ".documents.azure.com"),
		MasterKey: swag.String(base64.StdEncoding.EncodeToString([]byte("my-master-key"))),
	}
}

func createAccount(t *testing.T, s *api.Server, payload types.PostCreateAccountPayload) types.AccountResponse {
	t.Helper()

	res := test.PerformRequest(t, s, "POST", "/api/v1/cosmos/accounts", payload, nil)
	require.Equal(t, http.StatusCreated, res.Code)

	var created types.AccountResponse
	test.ParseResponseAndValidate(t, res, &created)

	return created
}

func TestPostCreateAccount(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		created := createAccount(t, s, validCreatePayload("prod-account"))

		require.NotEmpty(t, *created.AccountID)
		require.Equal(t, "prod-account", *created.Name)
	})
}

func TestPostCreateAccountDuplicateName(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		createAccount(t, s, validCreatePayload("prod-account"))

		res := test.PerformRequest(t, s, "POST", "/api/v1/cosmos/accounts", validCreatePayload("prod-account"), nil)
		test.RequireHTTPError(t, res, httperrors.ErrConflictAccountName)
	})
}

func TestPostCreateAccountInvalidMasterKey(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := validCreatePayload("prod-account")
		payload.MasterKey = swag.String("PW:XXX")

		res := test.PerformRequest(t, s, "POST", "/api/v1/cosmos/accounts", payload, nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestInvalidMasterKey)
	})
}

func TestGetAccount(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		created := createAccount(t, s, validCreatePayload("prod-account"))

		res := test.PerformRequest(t, s, "GET", "/api/v1/cosmos/accounts/"+*created.AccountID, nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var found types.AccountResponse
		test.ParseResponseAndValidate(t, res, &found)
		require.Equal(t, *created.AccountID, *found.AccountID)

		// master key 不出现在响应中
		require.NotContains(t, res.Body.String(), "masterKey")
	})
}

func TestGetAccountNotFound(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/cosmos/accounts/unknown", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundAccount)
	})
}

func TestGetListAccounts(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		createAccount(t, s, validCreatePayload("prod-account"))
		createAccount(t, s, validCreatePayload("staging-account"))

		res := test.PerformRequest(t, s, "GET", "/api/v1/cosmos/accounts", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var response types.ListAccountsResponse
		test.ParseResponseAndValidate(t, res, &response)
		require.Equal(t, int64(2), response.Total)

		// 名称前缀过滤
		res = test.PerformRequest(t, s, "GET", "/api/v1/cosmos/accounts?name=prod", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		test.ParseResponseAndValidate(t, res, &response)
		require.Equal(t, int64(1), response.Total)
		require.Equal(t, "prod-account", *response.Accounts[0].Name)
	})
}

func TestPutUpdateAccount(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		created := createAccount(t, s, validCreatePayload("prod-account"))

		payload := types.PutUpdateAccountPayload{
			Endpoint:     swag.String("https://other.documents.azure.com"),
			AllowedVerbs: []string{"GET", "POST"},
		}

		res := test.PerformRequest(t, s, "PUT", "/api/v1/cosmos/accounts/"+*created.AccountID, payload, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var updated types.AccountResponse
		test.ParseResponseAndValidate(t, res, &updated)
		require.Equal(t, "https://other.documents.azure.com", *updated.Endpoint)
		require.Equal(t, []string{"GET", "POST"}, updated.AllowedVerbs)
		require.Equal(t, "prod-account", *updated.Name)
	})
}

func TestPutUpdateAccountNotFound(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := types.PutUpdateAccountPayload{
			Endpoint: swag.String("https://other.documents.azure.com"),
		}

		res := test.PerformRequest(t, s, "PUT", "/api/v1/cosmos/accounts/unknown", payload, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundAccount)
	})
}

func TestDeleteAccount(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		created := createAccount(t, s, validCreatePayload("prod-account"))

		res := test.PerformRequest(t, s, "DELETE", "/api/v1/cosmos/accounts/"+*created.AccountID, nil, nil)
		require.Equal(t, http.StatusNoContent, res.Code)

		res = test.PerformRequest(t, s, "GET", "/api/v1/cosmos/accounts/"+*created.AccountID, nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundAccount)
	})
}
