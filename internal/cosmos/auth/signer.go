package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidMasterKey 表示 master key 不是合法的 base64，属于配置/凭证错误而非瞬时错误
var ErrInvalidMasterKey = errors.New("master key is not valid base64")

// Sign 对单个出站请求计算 master key 授权令牌。
// 操作是纯函数：不做任何 I/O，不持有共享状态，可并发调用。
func Sign(req *SigningRequest) (*SignedToken, error) {
	// 先解码密钥，解码失败时不得继续任何签名运算
	key, err := base64.StdEncoding.DecodeString(req.MasterKey)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidMasterKey, err.Error())
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(canonicalPayload(req.Verb, req.ResourceType, req.ResourceID, req.Date)))

	return &SignedToken{
		TokenType:    TokenTypeMaster,
		TokenVersion: TokenVersion,
		Signature:    base64.StdEncoding.EncodeToString(mac.Sum(nil)),
	}, nil
}

// Authorization 计算百分号编码后的授权请求头值
func Authorization(verb, resourceType, resourceID, date, masterKey string) (string, error) {
	token, err := Sign(&SigningRequest{
		Verb:         verb,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Date:         date,
		MasterKey:    masterKey,
	})
	if err != nil {
		return "", err
	}

	return token.Encode(), nil
}

// DateHeader 将给定时间格式化为 GMT 时区的 HTTP-date，用作 x-ms-date 请求头
func DateHeader(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// canonicalPayload 构造被签名的规范字符串。
// 动词、资源类型和日期统一转为小写，资源 ID 保持原样，以换行分隔并以换行结尾。
func canonicalPayload(verb, resourceType, resourceID, date string) string {
	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n",
		strings.ToLower(verb),
		strings.ToLower(resourceType),
		resourceID,
		strings.ToLower(date),
		"")
}
