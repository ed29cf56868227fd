package sign

// SignRequest 签名请求
//
//nolint:revive // SignRequest mirrors the API payload naming
type SignRequest struct {
	Account      string // 账户名或账户 ID，可选
	MasterKey    string // 显式的 base64 master key，可选，优先于账户查找
	Verb         string
	ResourceType string
	ResourceID   string
	Date         string // RFC1123 GMT 日期，空时使用当前时间
}

// SignResponse 签名响应
type SignResponse struct {
	Authorization string // 百分号编码后的授权令牌
	Date          string // x-ms-date 请求头的值
	AccountID     string // 使用账户签名时填充
}
