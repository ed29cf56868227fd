package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/kashguard/go-cosmos/internal/cosmos/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportSignsRequest(t *testing.T) {
	fixed := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	clock := time2.NewMockClock(fixed)

	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{
		Transport: &auth.Transport{
			Key:   dummyMasterKey,
			Clock: clock,
		},
	}

	res, err := client.Get(server.URL + "/dbs/MyDatabase/colls/MyCollection")
	require.NoError(t, err)
	defer res.Body.Close()

	date := got.Get(auth.HeaderDate)
	assert.Equal(t, "Tue, 01 Jan 2030 00:00:00 GMT", date)
	assert.Equal(t, auth.DefaultAPIVersion, got.Get(auth.HeaderVersion))

	// 授权头与用同样输入直接签名的结果一致
	expected, err := auth.Authorization(http.MethodGet, "colls", "dbs/MyDatabase/colls/MyCollection", date, dummyMasterKey)
	require.NoError(t, err)
	assert.Equal(t, expected, got.Get(auth.HeaderAuthorization))
}

func TestTransportKeyProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get(auth.HeaderAuthorization))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{
		Transport: &auth.Transport{
			KeyFunc: func(_ *http.Request) (string, error) {
				return dummyMasterKey, nil
			},
		},
	}

	res, err := client.Get(server.URL + "/dbs/MyDatabase")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestTransportInvalidMasterKey(t *testing.T) {
	client := &http.Client{
		Transport: &auth.Transport{Key: "PW:XXX"},
	}

	//nolint:bodyclose // request never leaves the transport
	_, err := client.Get("http://localhost/dbs/MyDatabase")
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrInvalidMasterKey))
}
