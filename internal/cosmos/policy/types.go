package policy

// Policy 账户签名策略。
// 允许列表为空时表示不限制
type Policy struct {
	AllowedVerbs         []string
	AllowedResourceTypes []string
}

// IsEmpty 判断策略是否没有任何限制
func (p *Policy) IsEmpty() bool {
	return p == nil || (len(p.AllowedVerbs) == 0 && len(p.AllowedResourceTypes) == 0)
}
