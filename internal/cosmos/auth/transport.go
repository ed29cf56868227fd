package auth

import (
	"net/http"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
)

// DefaultAPIVersion 签名传输层默认使用的 Cosmos DB REST API 版本
const DefaultAPIVersion = "2018-12-31"

// KeyProvider 按请求解析 base64 master key
type KeyProvider func(req *http.Request) (string, error)

// Transport 是自动为出站 Cosmos DB 请求附加授权头的 http.RoundTripper。
// 资源类型和资源 ID 从请求 URL 推导，x-ms-date 由注入的时钟生成。
type Transport struct {
	// Base 底层 RoundTripper，nil 时使用 http.DefaultTransport
	Base http.RoundTripper
	// Key 固定的 base64 master key
	Key string
	// KeyFunc 可选的按请求密钥解析，优先于 Key
	KeyFunc KeyProvider
	// APIVersion x-ms-version 的值，空时使用 DefaultAPIVersion
	APIVersion string
	// Clock 可注入的时钟，nil 时使用 time2.DefaultClock
	Clock time2.Clock
}

// RoundTrip 实现 http.RoundTripper。
// 原始请求不被修改，授权头写入克隆后的请求。
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	key := t.Key
	if t.KeyFunc != nil {
		var err error
		if key, err = t.KeyFunc(req); err != nil {
			return nil, errors.Wrap(err, "failed to resolve master key for request")
		}
	}

	resourceType, resourceID := ResourceFromPath(req.URL.Path)
	date := DateHeader(t.now())

	authorization, err := Authorization(req.Method, resourceType, resourceID, date, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build authorization header")
	}

	out := req.Clone(req.Context())
	out.Header.Set(HeaderDate, date)
	out.Header.Set(HeaderAuthorization, authorization)
	out.Header.Set(HeaderVersion, t.apiVersion())

	return t.base().RoundTrip(out)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) apiVersion() string {
	if t.APIVersion != "" {
		return t.APIVersion
	}
	return DefaultAPIVersion
}

func (t *Transport) now() time.Time {
	if t.Clock != nil {
		return t.Clock.Now()
	}
	return time2.DefaultClock.Now()
}
