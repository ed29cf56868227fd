package account

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/kashguard/go-cosmos/internal/cosmos/audit"
	"github.com/kashguard/go-cosmos/internal/cosmos/auth"
	"github.com/kashguard/go-cosmos/internal/cosmos/policy"
	"github.com/kashguard/go-cosmos/internal/cosmos/storage"
	"github.com/pkg/errors"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountNameExists = errors.New("account name already exists")
	ErrMissingName       = errors.New("account name is required")
)

// Service 账户注册表服务接口
type Service interface {
	CreateAccount(ctx context.Context, req *CreateAccountRequest) (*Account, error)
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	GetAccountByName(ctx context.Context, name string) (*Account, error)
	ListAccounts(ctx context.Context, filter *Filter) ([]*Account, error)
	UpdateAccount(ctx context.Context, accountID string, req *UpdateAccountRequest) (*Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
}

// service 账户注册表服务实现
type service struct {
	store       storage.Store
	auditLogger audit.Logger
}

// NewService 创建新的账户注册表服务
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewService(store storage.Store, auditLogger audit.Logger) (Service, error) {
	return &service{
		store:       store,
		auditLogger: auditLogger,
	}, nil
}

// CreateAccount 创建账户。
// master key 必须是合法 base64，与签名操作保持同一错误路径
func (s *service) CreateAccount(ctx context.Context, req *CreateAccountRequest) (*Account, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}

	if err := validateMasterKey(req.MasterKey); err != nil {
		return nil, err
	}

	if _, err := s.store.GetAccountByName(ctx, req.Name); err == nil {
		return nil, ErrAccountNameExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, errors.Wrap(err, "failed to check account name")
	}

	now := time.Now()
	stored := &storage.Account{
		AccountID:       uuid.New().String(),
		Name:            req.Name,
		Endpoint:        req.Endpoint,
		MasterKey:       req.MasterKey,
		DefaultDatabase: req.DefaultDatabase,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Policy != nil {
		stored.AllowedVerbs = req.Policy.AllowedVerbs
		stored.AllowedResourceTypes = req.Policy.AllowedResourceTypes
	}

	if err := s.store.SaveAccount(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to save account")
	}

	// 记录审计日志
	_ = s.auditLogger.LogEvent(ctx, &audit.AuditEvent{
		EventType: audit.EventTypeAccountCreated,
		AccountID: stored.AccountID,
		Operation: "create_account",
		Result:    audit.ResultSuccess,
	})

	return fromStorage(stored), nil
}

// GetAccount 按 ID 获取账户
func (s *service) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	stored, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errors.Wrap(err, "failed to get account")
	}

	return fromStorage(stored), nil
}

// GetAccountByName 按名称获取账户
func (s *service) GetAccountByName(ctx context.Context, name string) (*Account, error) {
	stored, err := s.store.GetAccountByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errors.Wrap(err, "failed to get account by name")
	}

	return fromStorage(stored), nil
}

// ListAccounts 列出账户
func (s *service) ListAccounts(ctx context.Context, filter *Filter) ([]*Account, error) {
	storageFilter := &storage.AccountFilter{}
	if filter != nil {
		storageFilter.Name = filter.Name
		storageFilter.Limit = filter.Limit
		storageFilter.Offset = filter.Offset
	}

	stored, err := s.store.ListAccounts(ctx, storageFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*Account, 0, len(stored))
	for _, a := range stored {
		accounts = append(accounts, fromStorage(a))
	}

	return accounts, nil
}

// UpdateAccount 更新账户
func (s *service) UpdateAccount(ctx context.Context, accountID string, req *UpdateAccountRequest) (*Account, error) {
	stored, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errors.Wrap(err, "failed to get account")
	}

	if req.MasterKey != nil {
		if err := validateMasterKey(*req.MasterKey); err != nil {
			return nil, err
		}
		stored.MasterKey = *req.MasterKey
	}
	if req.Endpoint != nil {
		stored.Endpoint = *req.Endpoint
	}
	if req.DefaultDatabase != nil {
		stored.DefaultDatabase = *req.DefaultDatabase
	}
	if req.Policy != nil {
		stored.AllowedVerbs = req.Policy.AllowedVerbs
		stored.AllowedResourceTypes = req.Policy.AllowedResourceTypes
	}
	stored.UpdatedAt = time.Now()

	if err := s.store.UpdateAccount(ctx, accountID, stored); err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	_ = s.auditLogger.LogEvent(ctx, &audit.AuditEvent{
		EventType: audit.EventTypeAccountUpdated,
		AccountID: accountID,
		Operation: "update_account",
		Result:    audit.ResultSuccess,
	})

	return fromStorage(stored), nil
}

// DeleteAccount 删除账户
func (s *service) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.store.DeleteAccount(ctx, accountID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrAccountNotFound
		}
		return errors.Wrap(err, "failed to delete account")
	}

	_ = s.auditLogger.LogEvent(ctx, &audit.AuditEvent{
		EventType: audit.EventTypeAccountDeleted,
		AccountID: accountID,
		Operation: "delete_account",
		Result:    audit.ResultSuccess,
	})

	return nil
}

// validateMasterKey 校验 master key 是合法 base64。
// 不校验解码后的长度，与签名操作的错误路径保持一致
func validateMasterKey(masterKey string) error {
	if _, err := base64.StdEncoding.DecodeString(masterKey); err != nil {
		return errors.Wrap(auth.ErrInvalidMasterKey, err.Error())
	}
	return nil
}

func fromStorage(stored *storage.Account) *Account {
	a := &Account{
		AccountID:       stored.AccountID,
		Name:            stored.Name,
		Endpoint:        stored.Endpoint,
		MasterKey:       stored.MasterKey,
		DefaultDatabase: stored.DefaultDatabase,
		CreatedAt:       stored.CreatedAt,
		UpdatedAt:       stored.UpdatedAt,
	}
	if len(stored.AllowedVerbs) > 0 || len(stored.AllowedResourceTypes) > 0 {
		a.Policy = &policy.Policy{
			AllowedVerbs:         stored.AllowedVerbs,
			AllowedResourceTypes: stored.AllowedResourceTypes,
		}
	}
	return a
}
