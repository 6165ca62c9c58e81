package mq

import (
	"context"
	"fmt"

	"github.com/park285/secret-santa-bot-go/internal/common/messageprovider"
	"github.com/park285/secret-santa-bot-go/internal/common/mqmsg"
	santamessages "github.com/park285/secret-santa-bot-go/internal/santa/messages"
	"github.com/park285/secret-santa-bot-go/internal/santa/model"
)

// DirectMessageSender: 매칭 결과를 각 산타에게 개인 메시지로 전달한다.
// service.AssignmentNotifier 구현체.
type DirectMessageSender struct {
	msgProvider *messageprovider.Provider
	publish     func(ctx context.Context, msg mqmsg.OutboundMessage) error
}

// NewDirectMessageSender 는 동작을 수행한다.
func NewDirectMessageSender(msgProvider *messageprovider.Provider, publish func(ctx context.Context, msg mqmsg.OutboundMessage) error) *DirectMessageSender {
	return &DirectMessageSender{
		msgProvider: msgProvider,
		publish:     publish,
	}
}

// NotifyAssignment 는 동작을 수행한다.
func (s *DirectMessageSender) NotifyAssignment(
	ctx context.Context,
	game model.Game,
	santa model.Participant,
	receiver model.Participant,
) error {
	text := s.msgProvider.Get(
		santamessages.StopAssignDM,
		messageprovider.P("receiver", receiver.DisplayName()),
		messageprovider.P("budget", game.Budget()),
	)
	if err := s.publish(ctx, mqmsg.NewDirect(santa.UserID, text)); err != nil {
		return fmt.Errorf("send assignment dm failed: %w", err)
	}
	return nil
}
