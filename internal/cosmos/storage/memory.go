package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// memoryStore 内存存储后端，用于测试和本地开发
type memoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	events   []*AuditEvent
}

// NewMemoryStore 创建新的内存存储后端
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewMemoryStore() Store {
	return &memoryStore{
		accounts: make(map[string]*Account),
	}
}

// SaveAccount 保存账户
func (s *memoryStore) SaveAccount(_ context.Context, account *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *account
	s.accounts[account.AccountID] = &copied

	return nil
}

// GetAccount 按 ID 获取账户
func (s *memoryStore) GetAccount(_ context.Context, accountID string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *account
	return &copied, nil
}

// GetAccountByName 按名称获取账户
func (s *memoryStore) GetAccountByName(_ context.Context, name string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Name == name {
			copied := *account
			return &copied, nil
		}
	}

	return nil, ErrNotFound
}

// UpdateAccount 更新账户
func (s *memoryStore) UpdateAccount(_ context.Context, accountID string, account *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[accountID]; !ok {
		return ErrNotFound
	}

	copied := *account
	copied.AccountID = accountID
	s.accounts[accountID] = &copied

	return nil
}

// DeleteAccount 删除账户
func (s *memoryStore) DeleteAccount(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[accountID]; !ok {
		return ErrNotFound
	}

	delete(s.accounts, accountID)

	return nil
}

// ListAccounts 列出账户
func (s *memoryStore) ListAccounts(_ context.Context, filter *AccountFilter) ([]*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		if filter != nil && filter.Name != "" && !strings.HasPrefix(account.Name, filter.Name) {
			continue
		}
		copied := *account
		accounts = append(accounts, &copied)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})

	if filter != nil {
		if filter.Offset > 0 {
			if filter.Offset >= len(accounts) {
				return []*Account{}, nil
			}
			accounts = accounts[filter.Offset:]
		}
		if filter.Limit > 0 && filter.Limit < len(accounts) {
			accounts = accounts[:filter.Limit]
		}
	}

	return accounts, nil
}

// SaveAuditLog 保存审计日志
func (s *memoryStore) SaveAuditLog(_ context.Context, event *AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *event
	s.events = append(s.events, &copied)

	return nil
}

// QueryAuditLogs 查询审计日志，按时间倒序返回
func (s *memoryStore) QueryAuditLogs(_ context.Context, filter *AuditLogFilter) ([]*AuditEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*AuditEvent, 0, len(s.events))
	for _, event := range s.events {
		if !matchAuditFilter(event, filter) {
			continue
		}
		copied := *event
		events = append(events, &copied)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	limit := defaultAuditLogLimit
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		offset = filter.Offset
	}

	if offset >= len(events) {
		return []*AuditEvent{}, nil
	}
	events = events[offset:]
	if limit < len(events) {
		events = events[:limit]
	}

	return events, nil
}

func matchAuditFilter(event *AuditEvent, filter *AuditLogFilter) bool {
	if filter == nil {
		return true
	}
	if filter.AccountID != "" && event.AccountID != filter.AccountID {
		return false
	}
	if filter.UserID != "" && event.UserID != filter.UserID {
		return false
	}
	if filter.EventType != "" && event.EventType != filter.EventType {
		return false
	}
	if filter.Operation != "" && event.Operation != filter.Operation {
		return false
	}
	if filter.Result != "" && event.Result != filter.Result {
		return false
	}
	if filter.StartTime != nil && event.Timestamp.Before(*filter.StartTime) {
		return false
	}
	if filter.EndTime != nil && event.Timestamp.After(*filter.EndTime) {
		return false
	}
	return true
}
