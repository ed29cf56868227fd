package storage

import (
	"time"
)

// Account Cosmos 账户记录
type Account struct {
	AccountID            string
	Name                 string
	Endpoint             string
	MasterKey            string // base64 编码的 master key
	DefaultDatabase      string
	AllowedVerbs         []string // 为空表示不限制
	AllowedResourceTypes []string // 为空表示不限制
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// AccountFilter 账户查询过滤器
type AccountFilter struct {
	Name   string // 名称过滤（前缀匹配）
	Limit  int    // 返回数量限制
	Offset int    // 偏移量
}

// AuditEvent 审计事件
type AuditEvent struct {
	Timestamp time.Time
	EventType string
	UserID    string
	AccountID string
	Operation string
	Result    string
	Details   map[string]interface{}
	IPAddress string
}

// AuditLogFilter 审计日志查询过滤器
type AuditLogFilter struct {
	StartTime *time.Time
	EndTime   *time.Time
	AccountID string
	UserID    string
	EventType string
	Operation string
	Result    string
	Limit     int
	Offset    int
}
