package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/kashguard/go-cosmos/internal/cosmos/audit"
	"github.com/kashguard/go-cosmos/internal/cosmos/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogger_LogEvent(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	logger := audit.NewLogger(store)

	event := &audit.AuditEvent{
		EventType: audit.EventTypeSignAuthorization,
		AccountID: "acc-1",
		Operation: "sign",
		Result:    audit.ResultSuccess,
		Timestamp: time.Now(),
	}

	err := logger.LogEvent(ctx, event)
	require.NoError(t, err)

	events, err := store.QueryAuditLogs(ctx, &storage.AuditLogFilter{AccountID: "acc-1"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, event.AccountID, events[0].AccountID)
	assert.Equal(t, event.Operation, events[0].Operation)
}

func TestAuditLogger_LogEventDefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	logger := audit.NewLogger(store)

	// 未设置时间戳时自动填充
	err := logger.LogEvent(ctx, &audit.AuditEvent{
		EventType: audit.EventTypeAccountCreated,
		AccountID: "acc-2",
		Operation: "create_account",
		Result:    audit.ResultSuccess,
	})
	require.NoError(t, err)

	events, err := store.QueryAuditLogs(ctx, &storage.AuditLogFilter{AccountID: "acc-2"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Timestamp.IsZero())
}
