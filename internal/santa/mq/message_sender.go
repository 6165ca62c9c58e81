package mq

import (
	"context"
	"fmt"

	"github.com/park285/secret-santa-bot-go/internal/common/messageprovider"
	commonmq "github.com/park285/secret-santa-bot-go/internal/common/mq"
	"github.com/park285/secret-santa-bot-go/internal/common/mqmsg"
	santaconfig "github.com/park285/secret-santa-bot-go/internal/santa/config"
	santamessages "github.com/park285/secret-santa-bot-go/internal/santa/messages"
)

// MessageSender 는 타입이다.
type MessageSender struct {
	base *commonmq.BaseMessageSender
}

// NewMessageSender 는 동작을 수행한다.
func NewMessageSender(msgProvider *messageprovider.Provider, publish func(ctx context.Context, msg mqmsg.OutboundMessage) error) *MessageSender {
	return &MessageSender{
		base: commonmq.NewBaseMessageSender(msgProvider, publish, commonmq.MessageSenderConfig{
			MessageMaxLength: santaconfig.KakaoMessageMaxLength,
			LockErrorKey:     santamessages.LockRequestInProgress,
		}),
	}
}

// SendFinal 는 동작을 수행한다.
func (s *MessageSender) SendFinal(ctx context.Context, message mqmsg.InboundMessage, text string) error {
	if err := s.base.SendFinal(ctx, message.ChatID, text, message.ThreadID); err != nil {
		return fmt.Errorf("send final failed: %w", err)
	}
	return nil
}

// SendWaiting 는 동작을 수행한다.
func (s *MessageSender) SendWaiting(ctx context.Context, message mqmsg.InboundMessage, command Command) error {
	if err := s.base.SendWaiting(ctx, message.ChatID, message.ThreadID, command); err != nil {
		return fmt.Errorf("send waiting failed: %w", err)
	}
	return nil
}

// SendError 는 동작을 수행한다.
func (s *MessageSender) SendError(ctx context.Context, message mqmsg.InboundMessage, mapping ErrorMapping) error {
	return s.base.SendError(ctx, message.ChatID, message.ThreadID, mapping.Key, mapping.Params...)
}

// SendLockError 는 동작을 수행한다.
func (s *MessageSender) SendLockError(ctx context.Context, message mqmsg.InboundMessage) error {
	return s.base.SendLockError(ctx, message.ChatID, message.ThreadID, nil)
}
