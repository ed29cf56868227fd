package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/kashguard/go-cosmos/internal/cosmos/storage"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndGetAccount(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	account := &storage.Account{
		AccountID:       "acc-1",
		Name:            "primary",
		Endpoint:        "https://primary.documents.azure.com",
		MasterKey:       "bXkta2V5",
		DefaultDatabase: "MyDatabase",
		AllowedVerbs:    []string{"GET", "POST"},
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	require.NoError(t, store.SaveAccount(ctx, account))

	retrieved, err := store.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, account.Name, retrieved.Name)
	assert.Equal(t, account.MasterKey, retrieved.MasterKey)
	assert.Equal(t, account.AllowedVerbs, retrieved.AllowedVerbs)

	byName, err := store.GetAccountByName(ctx, "primary")
	require.NoError(t, err)
	assert.Equal(t, account.AccountID, byName.AccountID)

	_, err = store.GetAccount(ctx, "missing")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestMemoryStore_UpdateAndDeleteAccount(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	account := &storage.Account{AccountID: "acc-1", Name: "primary", Endpoint: "https://a", MasterKey: "bXkta2V5"}
	require.NoError(t, store.SaveAccount(ctx, account))

	account.Endpoint = "https://b"
	require.NoError(t, store.UpdateAccount(ctx, "acc-1", account))

	retrieved, err := store.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "https://b", retrieved.Endpoint)

	assert.True(t, errors.Is(store.UpdateAccount(ctx, "missing", account), storage.ErrNotFound))

	require.NoError(t, store.DeleteAccount(ctx, "acc-1"))
	assert.True(t, errors.Is(store.DeleteAccount(ctx, "acc-1"), storage.ErrNotFound))
}

func TestMemoryStore_ListAccounts(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	names := []string{"alpha", "beta", "alpine"}
	for i, name := range names {
		require.NoError(t, store.SaveAccount(ctx, &storage.Account{
			AccountID: name + "-id",
			Name:      name,
			Endpoint:  "https://example",
			MasterKey: "bXkta2V5",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	all, err := store.ListAccounts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// 按名称排序
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "alpine", all[1].Name)
	assert.Equal(t, "beta", all[2].Name)

	filtered, err := store.ListAccounts(ctx, &storage.AccountFilter{Name: "alp"})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	limited, err := store.ListAccounts(ctx, &storage.AccountFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "alpine", limited[0].Name)
}

func TestMemoryStore_AuditLogs(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	base := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.SaveAuditLog(ctx, &storage.AuditEvent{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			EventType: "SignAuthorization",
			AccountID: "acc-1",
			Operation: "sign",
			Result:    "Success",
		}))
	}
	require.NoError(t, store.SaveAuditLog(ctx, &storage.AuditEvent{
		Timestamp: base.Add(time.Hour),
		EventType: "AccountCreated",
		AccountID: "acc-2",
		Operation: "create_account",
		Result:    "Success",
	}))

	events, err := store.QueryAuditLogs(ctx, nil)
	require.NoError(t, err)
	require.Len(t, events, 4)
	// 按时间倒序
	assert.Equal(t, "AccountCreated", events[0].EventType)

	filtered, err := store.QueryAuditLogs(ctx, &storage.AuditLogFilter{AccountID: "acc-1"})
	require.NoError(t, err)
	assert.Len(t, filtered, 3)

	start := base.Add(30 * time.Minute)
	ranged, err := store.QueryAuditLogs(ctx, &storage.AuditLogFilter{StartTime: &start})
	require.NoError(t, err)
	assert.Len(t, ranged, 1)

	limited, err := store.QueryAuditLogs(ctx, &storage.AuditLogFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
