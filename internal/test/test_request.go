package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/kashguard/go-cosmos/internal/api/httperrors"
	"github.com/stretchr/testify/require"
)

// PerformRequest runs the request against the server's router and returns the
// recorded response. A non-nil body is JSON encoded.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body interface{}, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	if body == nil {
		return PerformRequestWithRawBody(t, s, method, path, nil, headers)
	}

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	return PerformRequestWithRawBody(t, s, method, path, bytes.NewReader(payload), headers)
}

func PerformRequestWithRawBody(t *testing.T, s *api.Server, method string, path string, body io.Reader, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)

	if headers != nil {
		req.Header = headers
	}

	if body != nil && req.Header.Get(echoHeaderContentType) == "" {
		req.Header.Set(echoHeaderContentType, "application/json")
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

const echoHeaderContentType = "Content-Type"

// ParseResponseBody decodes the recorded JSON response into v.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	require.NoError(t, json.NewDecoder(res.Result().Body).Decode(v))
}

// ParseResponseAndValidate decodes the recorded JSON response into v and runs
// its validation.
func ParseResponseAndValidate(t *testing.T, res *httptest.ResponseRecorder, v runtime.Validatable) {
	t.Helper()

	ParseResponseBody(t, res, v)
	require.NoError(t, v.Validate(strfmt.Default))
}

// RequireHTTPError asserts the recorded response matches the given HTTPError.
func RequireHTTPError(t *testing.T, res *httptest.ResponseRecorder, httpError *httperrors.HTTPError) {
	t.Helper()

	require.Equal(t, int(*httpError.Code), res.Code)

	var response httperrors.HTTPError
	ParseResponseBody(t, res, &response)

	require.Equal(t, *httpError.Code, *response.Code)
	require.Equal(t, *httpError.Type, *response.Type)
	require.Equal(t, *httpError.Title, *response.Title)
}
