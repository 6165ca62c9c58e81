package mq

import (
	"github.com/park285/secret-santa-bot-go/internal/common/ptr"
	santamessages "github.com/park285/secret-santa-bot-go/internal/santa/messages"
)

// CommandKind: 명령어의 종류를 나타내는 열거형
type CommandKind int

// CommandKind 상수 목록.
const (
	// CommandStart: 게임 시작 명령어 (통화/예산 지정)
	CommandStart CommandKind = iota
	// CommandJoin: 게임 참가
	CommandJoin
	// CommandStop: 게임 종료 및 산타 매칭
	CommandStop
	// CommandReset: 게임 기록 삭제
	CommandReset
	// CommandStatus: 현재 모집 현황 보기
	CommandStatus
	// CommandHelp: 도움말 보기
	CommandHelp
	// CommandUnknown: 알 수 없는 명령어
	CommandUnknown
)

// Command: 사용자 입력을 파싱하여 정제된 명령어 정보를 담는 구조체
type Command struct {
	Kind            CommandKind
	Currency        string
	Amount          string
	GameID          string
	HasInvalidInput bool
}

// RequiresLock: 이 명령어를 실행할 때 채팅방 단위 처리 락이 필요한지 여부를 반환합니다.
// 단순 조회나 도움말 등은 락이 필요 없습니다.
func (c Command) RequiresLock() bool {
	switch c.Kind {
	case CommandStatus, CommandHelp, CommandUnknown:
		return false
	default:
		return true
	}
}

// WaitingMessageKey: 명령어가 처리되는 동안 사용자에게 보여줄 '처리 중...' 메시지 키를 반환합니다.
// 매칭과 개인 메시지 발송이 걸리는 종료 명령 외에는 즉시 처리되므로 nil을 반환합니다.
func (c Command) WaitingMessageKey() *string {
	if c.Kind == CommandStop {
		return ptr.String(santamessages.StopWaiting)
	}
	return nil
}
