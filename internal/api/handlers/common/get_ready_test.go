package common_test

import (
	"net/http"
	"testing"

	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/kashguard/go-cosmos/internal/test"
	"github.com/stretchr/testify/require"
)

func TestGetHealthy(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)

		require.Equal(t, http.StatusOK, res.Code)
		require.Equal(t, "OK", res.Body.String())
	})
}

func TestGetReady(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/ready", nil, nil)

		require.Equal(t, http.StatusOK, res.Code)
		require.Equal(t, "Ready.", res.Body.String())
	})
}

func TestGetMetrics(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/metrics", nil, nil)

		require.Equal(t, http.StatusOK, res.Code)
		require.Contains(t, res.Body.String(), "go_goroutines")
	})
}
