package sign

import (
	"context"

	"github.com/dropbox/godropbox/time2"
	"github.com/kashguard/go-cosmos/internal/cosmos/account"
	"github.com/kashguard/go-cosmos/internal/cosmos/audit"
	"github.com/kashguard/go-cosmos/internal/cosmos/auth"
	"github.com/kashguard/go-cosmos/internal/cosmos/policy"
	"github.com/kashguard/go-cosmos/internal/metrics"
	"github.com/pkg/errors"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrMissingMasterKey = errors.New("either a master key or an account is required")
)

// Service 签名服务接口
type Service interface {
	Sign(ctx context.Context, req *SignRequest) (*SignResponse, error)
}

// service 签名服务实现
type service struct {
	accounts     account.Service
	policyEngine policy.Engine
	auditLogger  audit.Logger
	metrics      *metrics.Service
	clock        time2.Clock
}

// NewService 创建新的签名服务
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewService(
	accounts account.Service,
	policyEngine policy.Engine,
	auditLogger audit.Logger,
	metrics *metrics.Service,
	clock time2.Clock,
) (Service, error) {
	return &service{
		accounts:     accounts,
		policyEngine: policyEngine,
		auditLogger:  auditLogger,
		metrics:      metrics,
		clock:        clock,
	}, nil
}

// Sign 计算授权请求头和日期请求头。
// master key 可以显式提供，也可以通过账户注册表解析；
// 账户策略在签名前评估
func (s *service) Sign(ctx context.Context, req *SignRequest) (*SignResponse, error) {
	masterKey := req.MasterKey
	accountID := ""
	var accountPolicy *policy.Policy

	if masterKey == "" {
		if req.Account == "" {
			return nil, ErrMissingMasterKey
		}

		resolved, err := s.resolveAccount(ctx, req.Account)
		if err != nil {
			return nil, err
		}

		masterKey = resolved.MasterKey
		accountID = resolved.AccountID
		accountPolicy = resolved.Policy
	}

	// 评估账户策略
	if err := s.policyEngine.Evaluate(accountPolicy, req.Verb, req.ResourceType); err != nil {
		s.metrics.IncSignRequest("failure")
		_ = s.auditLogger.LogEvent(ctx, &audit.AuditEvent{
			EventType: audit.EventTypeSignAuthorization,
			AccountID: accountID,
			Operation: "sign",
			Result:    audit.ResultFailure,
		})
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = auth.DateHeader(s.clock.Now())
	}

	authorization, err := auth.Authorization(req.Verb, req.ResourceType, req.ResourceID, date, masterKey)
	if err != nil {
		// 凭证错误原样向上传播，不产生降级签名
		s.metrics.IncSignRequest("failure")
		_ = s.auditLogger.LogEvent(ctx, &audit.AuditEvent{
			EventType: audit.EventTypeSignAuthorization,
			AccountID: accountID,
			Operation: "sign",
			Result:    audit.ResultFailure,
		})
		return nil, err
	}

	s.metrics.IncSignRequest("success")
	_ = s.auditLogger.LogEvent(ctx, &audit.AuditEvent{
		EventType: audit.EventTypeSignAuthorization,
		AccountID: accountID,
		Operation: "sign",
		Result:    audit.ResultSuccess,
		Details: map[string]interface{}{
			"verb":          req.Verb,
			"resource_type": req.ResourceType,
			"resource_id":   req.ResourceID,
		},
	})

	return &SignResponse{
		Authorization: authorization,
		Date:          date,
		AccountID:     accountID,
	}, nil
}

// resolveAccount 先按名称查找账户，再按 ID 查找
func (s *service) resolveAccount(ctx context.Context, nameOrID string) (*account.Account, error) {
	resolved, err := s.accounts.GetAccountByName(ctx, nameOrID)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, account.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to resolve account")
	}

	resolved, err = s.accounts.GetAccount(ctx, nameOrID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errors.Wrap(err, "failed to resolve account")
	}

	return resolved, nil
}
