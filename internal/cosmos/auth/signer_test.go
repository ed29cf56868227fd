package auth_test

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/kashguard/go-cosmos/internal/cosmos/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dummyMasterKey 与原始集成测试一致的测试密钥
var dummyMasterKey = base64.StdEncoding.EncodeToString([]byte("my-master-key"))

func TestAuthorization(t *testing.T) {
	date := auth.DateHeader(time.Now())
	assert.True(t, strings.HasSuffix(date, "GMT"))

	token, err := auth.Authorization("PUT", "colls", "dbs/MyDatabase/colls/MyCollection", date, dummyMasterKey)
	require.NoError(t, err)

	// 百分号编码后的令牌以 type%3D 开头
	assert.True(t, strings.HasPrefix(token, "type%3D"))

	decoded, err := url.QueryUnescape(token)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(decoded, "type="))
}

func TestAuthorizationInvalidMasterKey(t *testing.T) {
	date := auth.DateHeader(time.Now())

	token, err := auth.Authorization("PUT", "colls", "dbs/MyDatabase/colls/MyCollection", date, "PW:XXX")
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrInvalidMasterKey))
	assert.Empty(t, token)
}

func TestSignInvalidMasterKeyReturnsNoToken(t *testing.T) {
	token, err := auth.Sign(&auth.SigningRequest{
		Verb:         "GET",
		ResourceType: "docs",
		ResourceID:   "dbs/db/colls/coll/docs/doc",
		Date:         "Tue, 01 Jan 2030 00:00:00 GMT",
		MasterKey:    "not base64!",
	})
	require.Error(t, err)
	assert.Nil(t, token)
}

func TestSignDeterministic(t *testing.T) {
	req := &auth.SigningRequest{
		Verb:         "PUT",
		ResourceType: "colls",
		ResourceID:   "dbs/MyDatabase/colls/MyCollection",
		Date:         "Tue, 01 Jan 2030 00:00:00 GMT",
		MasterKey:    dummyMasterKey,
	}

	first, err := auth.Sign(req)
	require.NoError(t, err)
	second, err := auth.Sign(req)
	require.NoError(t, err)

	assert.Equal(t, first.Signature, second.Signature)
	assert.Equal(t, first.Encode(), second.Encode())
}

func TestSignVerbAndResourceTypeCaseInsensitive(t *testing.T) {
	date := "Tue, 01 Jan 2030 00:00:00 GMT"

	upper, err := auth.Sign(&auth.SigningRequest{
		Verb:         "PUT",
		ResourceType: "COLLS",
		ResourceID:   "dbs/MyDatabase/colls/MyCollection",
		Date:         date,
		MasterKey:    dummyMasterKey,
	})
	require.NoError(t, err)

	lower, err := auth.Sign(&auth.SigningRequest{
		Verb:         "put",
		ResourceType: "colls",
		ResourceID:   "dbs/MyDatabase/colls/MyCollection",
		Date:         date,
		MasterKey:    dummyMasterKey,
	})
	require.NoError(t, err)

	assert.Equal(t, upper.Signature, lower.Signature)

	// 资源 ID 区分大小写
	other, err := auth.Sign(&auth.SigningRequest{
		Verb:         "put",
		ResourceType: "colls",
		ResourceID:   "dbs/mydatabase/colls/mycollection",
		Date:         date,
		MasterKey:    dummyMasterKey,
	})
	require.NoError(t, err)
	assert.NotEqual(t, upper.Signature, other.Signature)
}

func TestSignedTokenRoundTrip(t *testing.T) {
	token, err := auth.Sign(&auth.SigningRequest{
		Verb:         "POST",
		ResourceType: "docs",
		ResourceID:   "dbs/MyDatabase/colls/MyCollection",
		Date:         "Tue, 01 Jan 2030 00:00:00 GMT",
		MasterKey:    dummyMasterKey,
	})
	require.NoError(t, err)

	decoded, err := url.QueryUnescape(token.Encode())
	require.NoError(t, err)

	// 解析 type/ver/sig 字段还原出内部生成的签名。
	// 不能用 url.ParseQuery：签名中的 '+' 会被当作空格解码。
	fields := strings.Split(decoded, "&")
	require.Len(t, fields, 3)
	assert.Equal(t, "type="+auth.TokenTypeMaster, fields[0])
	assert.Equal(t, "ver="+auth.TokenVersion, fields[1])
	assert.Equal(t, token.Signature, strings.TrimPrefix(fields[2], "sig="))

	// 签名本身是合法 base64
	_, err = base64.StdEncoding.DecodeString(token.Signature)
	require.NoError(t, err)
}

func TestDateHeader(t *testing.T) {
	fixed := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Tue, 01 Jan 2030 00:00:00 GMT", auth.DateHeader(fixed))
}
