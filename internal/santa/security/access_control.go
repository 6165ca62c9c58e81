package security

import (
	"github.com/park285/secret-santa-bot-go/internal/common/accesscontrol"
	"github.com/park285/secret-santa-bot-go/internal/common/ptr"
	santaconfig "github.com/park285/secret-santa-bot-go/internal/santa/config"
	santamessages "github.com/park285/secret-santa-bot-go/internal/santa/messages"
)

// AccessControl: 시크릿 산타 봇의 사용자/채팅방 접근과 관리자 권한을 설정 기반으로 제어합니다.
type AccessControl struct {
	control *accesscontrol.AccessControl
	admins  *accesscontrol.AdminGate
}

// NewAccessControl: 새로운 AccessControl 인스턴스를 생성합니다.
func NewAccessControl(cfg santaconfig.AccessConfig) *AccessControl {
	return &AccessControl{
		control: accesscontrol.New(cfg),
		admins:  accesscontrol.NewAdminGate(cfg.AdminUserIDs),
	}
}

// IsAdmin: 사용자가 게임 관리자(시작/종료/초기화 권한 보유자)인지 확인합니다.
// 관리자 목록이 비어있으면 항상 false를 반환합니다.
func (a *AccessControl) IsAdmin(userID string) bool {
	if a == nil {
		return false
	}
	return a.admins.IsAdmin(userID)
}

// GetDenialReason: 접근 거부 사유에 따른 오류 메시지 키를 반환합니다.
// 접근이 허용된 경우 nil을 반환합니다.
func (a *AccessControl) GetDenialReason(userID string, chatID string) *string {
	msg, ok := accesscontrol.DenialReasonMessage(
		a.control.DenialReason(userID, chatID),
		accesscontrol.DenialReasonMessages{
			UserBlocked:  santamessages.ErrorUserBlocked,
			ChatBlocked:  santamessages.ErrorChatBlocked,
			AccessDenied: santamessages.ErrorAccessDenied,
		},
	)
	if !ok {
		return nil
	}
	return ptr.String(msg)
}
