package account

import (
	"time"

	"github.com/kashguard/go-cosmos/internal/cosmos/policy"
)

// Account Cosmos 账户
type Account struct {
	AccountID       string
	Name            string
	Endpoint        string
	MasterKey       string // base64 编码的 master key
	DefaultDatabase string
	Policy          *policy.Policy
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateAccountRequest 创建账户请求
type CreateAccountRequest struct {
	Name            string
	Endpoint        string
	MasterKey       string
	DefaultDatabase string
	Policy          *policy.Policy
}

// UpdateAccountRequest 更新账户请求。
// nil 字段表示不修改
type UpdateAccountRequest struct {
	Endpoint        *string
	MasterKey       *string
	DefaultDatabase *string
	Policy          *policy.Policy
}

// Filter 账户列表过滤器
type Filter struct {
	Name   string
	Limit  int
	Offset int
}
