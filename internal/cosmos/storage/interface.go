package storage

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound 请求的记录不存在
var ErrNotFound = errors.New("record not found")

// Store 定义账户与审计日志的存储接口。
// 所有存储后端实现（PostgreSQL、内存等）都必须实现此接口
type Store interface {
	// 账户操作
	SaveAccount(ctx context.Context, account *Account) error
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	GetAccountByName(ctx context.Context, name string) (*Account, error)
	UpdateAccount(ctx context.Context, accountID string, account *Account) error
	DeleteAccount(ctx context.Context, accountID string) error
	ListAccounts(ctx context.Context, filter *AccountFilter) ([]*Account, error)

	// 审计日志操作
	SaveAuditLog(ctx context.Context, event *AuditEvent) error
	QueryAuditLogs(ctx context.Context, filter *AuditLogFilter) ([]*AuditEvent, error)
}
