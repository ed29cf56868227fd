package auth

import "strings"

// ResourceFromPath 从请求路径推导资源类型和资源 ID。
//
// Cosmos DB REST API 的路径交替由资源类型和资源名组成：
// 偶数段（如 dbs/MyDatabase/colls/MyCollection）寻址具体资源，
// 资源类型取倒数第二段，资源 ID 为完整路径；
// 奇数段（如 dbs/MyDatabase/colls）寻址 feed，
// 资源类型取最后一段，资源 ID 为去掉最后一段的路径。
func ResourceFromPath(path string) (resourceType, resourceID string) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "", ""
	}

	parts := strings.Split(trimmed, "/")
	if len(parts)%2 == 0 {
		return parts[len(parts)-2], trimmed
	}

	return parts[len(parts)-1], strings.Join(parts[:len(parts)-1], "/")
}
