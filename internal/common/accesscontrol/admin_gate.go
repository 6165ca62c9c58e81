package accesscontrol

import "strings"

// AdminGate: 설정 기반의 관리자 권한 게이트
// 목록이 비어있으면 관리자가 없는 것으로 취급한다. (전원 허용이 아님)
type AdminGate struct {
	ids map[string]struct{}
}

// NewAdminGate: 새로운 AdminGate 인스턴스를 생성합니다.
func NewAdminGate(userIDs []string) *AdminGate {
	ids := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		ids[id] = struct{}{}
	}
	return &AdminGate{ids: ids}
}

// IsAdmin: 사용자가 관리자인지 확인합니다.
func (g *AdminGate) IsAdmin(userID string) bool {
	if g == nil || len(g.ids) == 0 {
		return false
	}
	_, ok := g.ids[strings.TrimSpace(userID)]
	return ok
}

// Size: 등록된 관리자 수를 반환합니다.
func (g *AdminGate) Size() int {
	if g == nil {
		return 0
	}
	return len(g.ids)
}
