package audit

import "time"

// 审计事件类型
const (
	EventTypeSignAuthorization = "SignAuthorization"
	EventTypeAccountCreated    = "AccountCreated"
	EventTypeAccountUpdated    = "AccountUpdated"
	EventTypeAccountDeleted    = "AccountDeleted"
)

// 审计结果
const (
	ResultSuccess = "Success"
	ResultFailure = "Failure"
)

// AuditEvent 审计事件
//
//nolint:revive // AuditEvent is the standard naming for audit events
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
