package mq

import (
	"errors"

	cerrors "github.com/park285/secret-santa-bot-go/internal/common/errors"
	"github.com/park285/secret-santa-bot-go/internal/common/messageprovider"
	santaerrors "github.com/park285/secret-santa-bot-go/internal/santa/errors"
	santamessages "github.com/park285/secret-santa-bot-go/internal/santa/messages"
)

// ErrorMapping: 에러 메시지 키와 포맷팅 파라미터를 포함하는 매핑 구조체
type ErrorMapping struct {
	Key    string
	Params []messageprovider.Param
}

// GetErrorMapping: 발생한 에러를 분석하여 사용자에게 보여줄 적절한 메시지 매핑을 반환한다.
func GetErrorMapping(err error) ErrorMapping {
	var (
		unauthorized   santaerrors.UnauthorizedError
		gameNotFound   santaerrors.GameNotFoundError
		gameOpen       santaerrors.GameAlreadyOpenError
		alreadyJoined  santaerrors.AlreadyJoinedError
		noParticipants santaerrors.NoParticipantsError
		invalidCommand santaerrors.InvalidCommandError
		accessDenied   cerrors.AccessDeniedError
		userBlocked    cerrors.UserBlockedError
		chatBlocked    cerrors.ChatBlockedError
	)

	switch {
	case errors.As(err, &unauthorized):
		return ErrorMapping{Key: santamessages.ErrorUnauthorized}
	case errors.As(err, &gameNotFound):
		return ErrorMapping{Key: santamessages.ErrorGameNotFound}
	case errors.As(err, &gameOpen):
		return ErrorMapping{Key: santamessages.ErrorGameAlreadyOpen}
	case errors.As(err, &alreadyJoined):
		return ErrorMapping{Key: santamessages.JoinAlready}
	case errors.As(err, &noParticipants):
		return ErrorMapping{Key: santamessages.ErrorNoParticipants}
	case errors.As(err, &invalidCommand):
		return ErrorMapping{Key: santamessages.StartUsage}
	case errors.As(err, &accessDenied):
		return ErrorMapping{Key: santamessages.ErrorAccessDenied}
	case errors.As(err, &userBlocked):
		return ErrorMapping{Key: santamessages.ErrorUserBlocked}
	case errors.As(err, &chatBlocked):
		return ErrorMapping{Key: santamessages.ErrorChatBlocked}
	default:
		return ErrorMapping{Key: santamessages.ErrorInternal}
	}
}
