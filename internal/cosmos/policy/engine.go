package policy

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrVerbNotAllowed         = errors.New("verb is not allowed by account policy")
	ErrResourceTypeNotAllowed = errors.New("resource type is not allowed by account policy")
)

// Engine 策略引擎接口
type Engine interface {
	Evaluate(policy *Policy, verb, resourceType string) error
}

// engine 策略引擎实现
type engine struct{}

// NewEngine 创建新的策略引擎
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewEngine() Engine {
	return &engine{}
}

// Evaluate 评估签名请求是否被账户策略允许。
// 与规范字符串一致，动词和资源类型的比较不区分大小写
func (e *engine) Evaluate(policy *Policy, verb, resourceType string) error {
	if policy.IsEmpty() {
		return nil
	}

	if len(policy.AllowedVerbs) > 0 && !containsFold(policy.AllowedVerbs, verb) {
		return ErrVerbNotAllowed
	}

	if len(policy.AllowedResourceTypes) > 0 && !containsFold(policy.AllowedResourceTypes, resourceType) {
		return ErrResourceTypeNotAllowed
	}

	return nil
}

func containsFold(values []string, value string) bool {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
