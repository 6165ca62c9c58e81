package messages

// 메시지 키 상수.
const (
	// StartSuccess: 게임 시작 안내 관련 메시지 키
	StartSuccess = "start.success"
	StartUsage   = "start.usage"

	// JoinSuccess: 게임 참가 안내 관련 메시지 키
	JoinSuccess = "join.success"
	JoinAlready = "join.already"

	// StopSuccess: 게임 종료 및 매칭 결과 안내 관련 메시지 키
	StopWaiting    = "stop.waiting"
	StopSuccess    = "stop.success"
	StopNonePaired = "stop.none_paired"
	StopOddCount   = "stop.odd_count"
	StopAssignDM   = "stop.assign_dm"
	StopDMPartial  = "stop.dm_partial"

	// ResetSuccess: 게임 초기화 안내 관련 메시지 키
	ResetSuccess = "reset.success"

	// StatusOpen: 진행 상황 안내 관련 메시지 키
	StatusOpen = "status.open"

	// HelpMessage: 도움말 출력 메시지 키
	HelpMessage = "help.message"

	// LockRequestInProgress: 같은 채팅방의 명령 처리 중 알림 메시지 키
	LockRequestInProgress = "lock.request_in_progress"

	// ErrorGameNotFound: 각종 에러 상황에 대한 메시지 키
	ErrorGameNotFound    = "error.game_not_found"
	ErrorGameAlreadyOpen = "error.game_already_open"
	ErrorNoParticipants  = "error.no_participants"
	ErrorUnauthorized    = "error.unauthorized"
	ErrorUnknownCommand  = "error.unknown_command"
	ErrorInternal        = "error.internal"
	ErrorAccessDenied    = "error.access_denied"
	ErrorUserBlocked     = "error.user_blocked"
	ErrorChatBlocked     = "error.chat_blocked"

	// UserAnonymous: 사용자 이름이 없을 때 대체할 텍스트 키
	UserAnonymous = "user.anonymous"
)
