package accounts

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/kashguard/go-cosmos/internal/cosmos/account"
	"github.com/kashguard/go-cosmos/internal/cosmos/policy"
	"github.com/kashguard/go-cosmos/internal/types"
)

// toAccountResponse 转换账户为响应格式。
// master key 永远不会出现在响应中
func toAccountResponse(a *account.Account) *types.AccountResponse {
	response := &types.AccountResponse{
		AccountID:       swag.String(a.AccountID),
		Name:            swag.String(a.Name),
		Endpoint:        swag.String(a.Endpoint),
		DefaultDatabase: a.DefaultDatabase,
		CreatedAt:       strfmt.DateTime(a.CreatedAt),
		UpdatedAt:       strfmt.DateTime(a.UpdatedAt),
	}

	if a.Policy != nil {
		response.AllowedVerbs = a.Policy.AllowedVerbs
		response.AllowedResourceTypes = a.Policy.AllowedResourceTypes
	}

	return response
}

// policyFromLists 从请求中的列表构建策略，两个列表都为空时返回 nil
func policyFromLists(allowedVerbs, allowedResourceTypes []string) *policy.Policy {
	if len(allowedVerbs) == 0 && len(allowedResourceTypes) == 0 {
		return nil
	}

	return &policy.Policy{
		AllowedVerbs:         allowedVerbs,
		AllowedResourceTypes: allowedResourceTypes,
	}
}
