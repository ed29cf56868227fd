package auth_test

import (
	"testing"

	"github.com/kashguard/go-cosmos/internal/cosmos/auth"
	"github.com/stretchr/testify/assert"
)

func TestResourceFromPath(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		resourceType string
		resourceID   string
	}{
		{
			name:         "specific collection",
			path:         "/dbs/MyDatabase/colls/MyCollection",
			resourceType: "colls",
			resourceID:   "dbs/MyDatabase/colls/MyCollection",
		},
		{
			name:         "specific document",
			path:         "/dbs/MyDatabase/colls/MyCollection/docs/MyDoc",
			resourceType: "docs",
			resourceID:   "dbs/MyDatabase/colls/MyCollection/docs/MyDoc",
		},
		{
			name:         "collection feed",
			path:         "/dbs/MyDatabase/colls",
			resourceType: "colls",
			resourceID:   "dbs/MyDatabase",
		},
		{
			name:         "database feed",
			path:         "/dbs",
			resourceType: "dbs",
			resourceID:   "",
		},
		{
			name:         "specific database",
			path:         "dbs/MyDatabase",
			resourceType: "dbs",
			resourceID:   "dbs/MyDatabase",
		},
		{
			name:         "trailing slash",
			path:         "/dbs/MyDatabase/colls/",
			resourceType: "colls",
			resourceID:   "dbs/MyDatabase",
		},
		{
			name:         "empty path",
			path:         "/",
			resourceType: "",
			resourceID:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resourceType, resourceID := auth.ResourceFromPath(tt.path)
			assert.Equal(t, tt.resourceType, resourceType)
			assert.Equal(t, tt.resourceID, resourceID)
		})
	}
}
