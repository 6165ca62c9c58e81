package mq

import (
	"context"
	"errors"
	"log/slog"
	"time"

	cerrors "github.com/park285/secret-santa-bot-go/internal/common/errors"
	"github.com/park285/secret-santa-bot-go/internal/common/messageprovider"
	"github.com/park285/secret-santa-bot-go/internal/common/mqmsg"
	santaconfig "github.com/park285/secret-santa-bot-go/internal/santa/config"
	santaerrors "github.com/park285/secret-santa-bot-go/internal/santa/errors"
	santamessages "github.com/park285/secret-santa-bot-go/internal/santa/messages"
	santaredis "github.com/park285/secret-santa-bot-go/internal/santa/redis"
	santasecurity "github.com/park285/secret-santa-bot-go/internal/santa/security"
)

// GameMessageService 는 타입이다.
type GameMessageService struct {
	commandHandler        *GameCommandHandler
	messageSender         *MessageSender
	msgProvider           *messageprovider.Provider
	accessControl         *santasecurity.AccessControl
	commandParser         *CommandParser
	processingLockService *santaredis.ProcessingLockService
	logger                *slog.Logger
}

// NewGameMessageService 는 동작을 수행한다.
func NewGameMessageService(
	commandHandler *GameCommandHandler,
	messageSender *MessageSender,
	msgProvider *messageprovider.Provider,
	accessControl *santasecurity.AccessControl,
	commandParser *CommandParser,
	processingLockService *santaredis.ProcessingLockService,
	logger *slog.Logger,
) *GameMessageService {
	return &GameMessageService{
		commandHandler:        commandHandler,
		messageSender:         messageSender,
		msgProvider:           msgProvider,
		accessControl:         accessControl,
		commandParser:         commandParser,
		processingLockService: processingLockService,
		logger:                logger,
	}
}

// HandleMessage 는 동작을 수행한다.
func (s *GameMessageService) HandleMessage(ctx context.Context, message mqmsg.InboundMessage) {
	if !s.isAccessAllowed(message) {
		return
	}

	cmd := s.commandParser.Parse(message.Content)
	if cmd == nil {
		s.logger.Debug("message_ignored", "content", message.Content)
		return
	}

	s.dispatchCommand(ctx, message, *cmd)
}

// dispatchCommand: 락이 필요한 명령은 채팅방 단위로 직렬화한다.
// 같은 방에서 이미 처리 중인 명령이 있으면 즉시 안내 메시지로 응답한다.
func (s *GameMessageService) dispatchCommand(ctx context.Context, message mqmsg.InboundMessage, command Command) {
	if !command.RequiresLock() {
		s.executeCommand(ctx, message, command)
		return
	}

	chatID := message.ChatID
	if err := s.processingLockService.StartProcessing(ctx, chatID); err != nil {
		var lockErr cerrors.LockError
		if errors.As(err, &lockErr) {
			s.logger.Debug("command_rejected_busy", "chat_id", chatID, "user_id", message.UserID)
			_ = s.messageSender.SendLockError(ctx, message)
			return
		}
		s.handleFailure(ctx, message, err)
		return
	}
	defer func() {
		_ = s.processingLockService.FinishProcessing(ctx, chatID)
	}()

	s.executeCommand(ctx, message, command)
}

func (s *GameMessageService) executeCommand(ctx context.Context, message mqmsg.InboundMessage, command Command) {
	_ = s.messageSender.SendWaiting(ctx, message, command)

	timeoutCtx, cancel := context.WithTimeout(ctx, time.Duration(santaconfig.CommandTimeoutSeconds)*time.Second)
	defer cancel()

	response, err := s.commandHandler.ProcessCommand(timeoutCtx, message, command)
	if err != nil {
		s.handleFailure(ctx, message, err)
		return
	}

	_ = s.messageSender.SendFinal(ctx, message, response)
}

func (s *GameMessageService) handleFailure(ctx context.Context, message mqmsg.InboundMessage, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		_ = s.messageSender.SendError(ctx, message, ErrorMapping{Key: santamessages.ErrorInternal})
		return
	}

	var lockErr cerrors.LockError
	if errors.As(err, &lockErr) {
		_ = s.messageSender.SendLockError(ctx, message)
		return
	}

	if santaerrors.IsExpectedUserBehavior(err) {
		s.logger.Debug("command_rejected", "chat_id", message.ChatID, "user_id", message.UserID, "error", err)
	} else {
		s.logger.Warn("command_failed", "chat_id", message.ChatID, "user_id", message.UserID, "error", err)
	}

	mapping := GetErrorMapping(err)
	_ = s.messageSender.SendError(ctx, message, mapping)
}

func (s *GameMessageService) isAccessAllowed(message mqmsg.InboundMessage) bool {
	reason := s.accessControl.GetDenialReason(message.UserID, message.ChatID)
	if reason == nil {
		return true
	}
	s.logger.Debug("access_denied", "user_id", message.UserID, "chat_id", message.ChatID, "reason", *reason)
	return false
}
