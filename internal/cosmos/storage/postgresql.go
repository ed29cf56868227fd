package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const defaultAuditLogLimit = 100

// postgresqlStore 实现 PostgreSQL 存储后端
type postgresqlStore struct {
	db *sqlx.DB
}

// NewPostgreSQLStore 创建新的 PostgreSQL 存储后端
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewPostgreSQLStore(db *sqlx.DB) Store {
	return &postgresqlStore{db: db}
}

// accountRow 映射 cosmos_accounts 表
type accountRow struct {
	AccountID            string         `db:"account_id"`
	Name                 string         `db:"name"`
	Endpoint             string         `db:"endpoint"`
	MasterKey            string         `db:"master_key"`
	DefaultDatabase      sql.NullString `db:"default_database"`
	AllowedVerbs         pq.StringArray `db:"allowed_verbs"`
	AllowedResourceTypes pq.StringArray `db:"allowed_resource_types"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

func (r *accountRow) toAccount() *Account {
	return &Account{
		AccountID:            r.AccountID,
		Name:                 r.Name,
		Endpoint:             r.Endpoint,
		MasterKey:            r.MasterKey,
		DefaultDatabase:      r.DefaultDatabase.String,
		AllowedVerbs:         r.AllowedVerbs,
		AllowedResourceTypes: r.AllowedResourceTypes,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

// auditLogRow 映射 cosmos_audit_logs 表
type auditLogRow struct {
	Timestamp time.Time      `db:"timestamp"`
	EventType string         `db:"event_type"`
	UserID    sql.NullString `db:"user_id"`
	AccountID sql.NullString `db:"account_id"`
	Operation string         `db:"operation"`
	Result    string         `db:"result"`
	Details   []byte         `db:"details"`
	IPAddress sql.NullString `db:"ip_address"`
}

// SaveAccount 保存账户
func (s *postgresqlStore) SaveAccount(ctx context.Context, account *Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cosmos_accounts
			(account_id, name, endpoint, master_key, default_database, allowed_verbs, allowed_resource_types, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		account.AccountID,
		account.Name,
		account.Endpoint,
		account.MasterKey,
		nullString(account.DefaultDatabase),
		pq.StringArray(account.AllowedVerbs),
		pq.StringArray(account.AllowedResourceTypes),
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert account")
	}

	return nil
}

// GetAccount 按 ID 获取账户
func (s *postgresqlStore) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	var row accountRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM cosmos_accounts WHERE account_id = $1`, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get account")
	}

	return row.toAccount(), nil
}

// GetAccountByName 按名称获取账户
func (s *postgresqlStore) GetAccountByName(ctx context.Context, name string) (*Account, error) {
	var row accountRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM cosmos_accounts WHERE name = $1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get account by name")
	}

	return row.toAccount(), nil
}

// UpdateAccount 更新账户
func (s *postgresqlStore) UpdateAccount(ctx context.Context, accountID string, account *Account) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE cosmos_accounts
		SET name = $2,
			endpoint = $3,
			master_key = $4,
			default_database = $5,
			allowed_verbs = $6,
			allowed_resource_types = $7,
			updated_at = $8
		WHERE account_id = $1`,
		accountID,
		account.Name,
		account.Endpoint,
		account.MasterKey,
		nullString(account.DefaultDatabase),
		pq.StringArray(account.AllowedVerbs),
		pq.StringArray(account.AllowedResourceTypes),
		account.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to update account")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteAccount 删除账户
func (s *postgresqlStore) DeleteAccount(ctx context.Context, accountID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cosmos_accounts WHERE account_id = $1`, accountID)
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListAccounts 列出账户
func (s *postgresqlStore) ListAccounts(ctx context.Context, filter *AccountFilter) ([]*Account, error) {
	query := `SELECT * FROM cosmos_accounts`
	args := []interface{}{}

	if filter != nil && filter.Name != "" {
		query += ` WHERE name LIKE $1`
		args = append(args, filter.Name+"%")
	}

	query += ` ORDER BY name`

	if filter != nil && filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if filter != nil && filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	var rows []accountRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, rows[i].toAccount())
	}

	return accounts, nil
}

// SaveAuditLog 保存审计日志
func (s *postgresqlStore) SaveAuditLog(ctx context.Context, event *AuditEvent) error {
	var details []byte
	if event.Details != nil {
		var err error
		if details, err = json.Marshal(event.Details); err != nil {
			return errors.Wrap(err, "failed to marshal audit details")
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cosmos_audit_logs
			(timestamp, event_type, user_id, account_id, operation, result, details, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.Timestamp,
		event.EventType,
		nullString(event.UserID),
		nullString(event.AccountID),
		event.Operation,
		event.Result,
		details,
		nullString(event.IPAddress),
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert audit log")
	}

	return nil
}

// QueryAuditLogs 查询审计日志
func (s *postgresqlStore) QueryAuditLogs(ctx context.Context, filter *AuditLogFilter) ([]*AuditEvent, error) {
	query := `SELECT timestamp, event_type, user_id, account_id, operation, result, details, ip_address FROM cosmos_audit_logs`
	args := []interface{}{}

	where := func(clause string, arg interface{}) {
		args = append(args, arg)
		if len(args) == 1 {
			query += ` WHERE `
		} else {
			query += ` AND `
		}
		query += clause + ` $` + strconv.Itoa(len(args))
	}

	if filter != nil {
		if filter.AccountID != "" {
			where(`account_id =`, filter.AccountID)
		}
		if filter.UserID != "" {
			where(`user_id =`, filter.UserID)
		}
		if filter.EventType != "" {
			where(`event_type =`, filter.EventType)
		}
		if filter.Operation != "" {
			where(`operation =`, filter.Operation)
		}
		if filter.Result != "" {
			where(`result =`, filter.Result)
		}
		if filter.StartTime != nil {
			where(`timestamp >=`, *filter.StartTime)
		}
		if filter.EndTime != nil {
			where(`timestamp <=`, *filter.EndTime)
		}
	}

	query += ` ORDER BY timestamp DESC`

	limit := defaultAuditLogLimit
	if filter != nil && filter.Limit > 0 {
		limit = filter.Limit
	}
	args = append(args, limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))

	if filter != nil && filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	var rows []auditLogRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to query audit logs")
	}

	events := make([]*AuditEvent, 0, len(rows))
	for i := range rows {
		event := &AuditEvent{
			Timestamp: rows[i].Timestamp,
			EventType: rows[i].EventType,
			UserID:    rows[i].UserID.String,
			AccountID: rows[i].AccountID.String,
			Operation: rows[i].Operation,
			Result:    rows[i].Result,
			IPAddress: rows[i].IPAddress.String,
		}
		if len(rows[i].Details) > 0 {
			if err := json.Unmarshal(rows[i].Details, &event.Details); err != nil {
				return nil, errors.Wrap(err, "failed to unmarshal audit details")
			}
		}
		events = append(events, event)
	}

	return events, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
