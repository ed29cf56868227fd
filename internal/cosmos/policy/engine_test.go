package policy_test

import (
	"testing"

	"github.com/kashguard/go-cosmos/internal/cosmos/policy"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_EvaluateEmptyPolicy(t *testing.T) {
	engine := policy.NewEngine()

	// 空策略不限制任何操作
	require.NoError(t, engine.Evaluate(nil, "PUT", "colls"))
	require.NoError(t, engine.Evaluate(&policy.Policy{}, "DELETE", "dbs"))
}

func TestEngine_EvaluateVerbs(t *testing.T) {
	engine := policy.NewEngine()
	p := &policy.Policy{AllowedVerbs: []string{"GET", "POST"}}

	require.NoError(t, engine.Evaluate(p, "GET", "docs"))
	// 大小写不敏感
	require.NoError(t, engine.Evaluate(p, "post", "docs"))

	err := engine.Evaluate(p, "DELETE", "docs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, policy.ErrVerbNotAllowed))
}

func TestEngine_EvaluateResourceTypes(t *testing.T) {
	engine := policy.NewEngine()
	p := &policy.Policy{AllowedResourceTypes: []string{"docs"}}

	require.NoError(t, engine.Evaluate(p, "PUT", "docs"))
	require.NoError(t, engine.Evaluate(p, "PUT", "DOCS"))

	err := engine.Evaluate(p, "PUT", "colls")
	require.Error(t, err)
	assert.True(t, errors.Is(err, policy.ErrResourceTypeNotAllowed))
}
