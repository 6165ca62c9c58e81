package service

import (
	"context"

	"github.com/park285/secret-santa-bot-go/internal/santa/model"
)

// AssignmentNotifier: 매칭 결과를 각 참가자에게 개인 메시지로 전달한다.
// 구현체는 mq 패키지의 DirectMessageSender가 담당한다.
type AssignmentNotifier interface {
	NotifyAssignment(ctx context.Context, game model.Game, santa model.Participant, receiver model.Participant) error
}

// AssignmentNotifierFunc 는 함수형 어댑터다.
type AssignmentNotifierFunc func(ctx context.Context, game model.Game, santa model.Participant, receiver model.Participant) error

// NotifyAssignment 는 동작을 수행한다.
func (f AssignmentNotifierFunc) NotifyAssignment(ctx context.Context, game model.Game, santa model.Participant, receiver model.Participant) error {
	return f(ctx, game, santa, receiver)
}
