package auth

import (
	"fmt"
	"net/url"
)

const (
	// TokenTypeMaster master key 授权令牌类型
	TokenTypeMaster = "master"
	// TokenVersion 令牌版本
	TokenVersion = "1.0"
)

const (
	// HeaderDate Cosmos DB REST API 的日期请求头
	HeaderDate = "x-ms-date"
	// HeaderVersion Cosmos DB REST API 的版本请求头
	HeaderVersion = "x-ms-version"
	// HeaderAuthorization 授权请求头
	HeaderAuthorization = "Authorization"
)

// SigningRequest 单次签名操作的输入
type SigningRequest struct {
	Verb         string // HTTP 动词，大小写不敏感
	ResourceType string // 资源类型（如 "colls"），大小写不敏感
	ResourceID   string // 资源 ID（如 "dbs/MyDatabase/colls/MyCollection"），区分大小写
	Date         string // RFC1123 GMT 格式的日期字符串
	MasterKey    string // base64 编码的 master key
}

// SignedToken 签名结果
type SignedToken struct {
	TokenType    string
	TokenVersion string
	Signature    string // base64 编码的 HMAC-SHA256 摘要
}

// String 返回未编码的令牌字符串
func (t *SignedToken) String() string {
	return fmt.Sprintf("type=%s&ver=%s&sig=%s", t.TokenType, t.TokenVersion, t.Signature)
}

// Encode 返回百分号编码后的令牌，可直接用作 Authorization 请求头的值
func (t *SignedToken) Encode() string {
	return url.QueryEscape(t.String())
}
