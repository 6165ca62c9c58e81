package mq

import (
	"errors"
	"fmt"
	"testing"

	cerrors "github.com/park285/secret-santa-bot-go/internal/common/errors"
	santaerrors "github.com/park285/secret-santa-bot-go/internal/santa/errors"
	santamessages "github.com/park285/secret-santa-bot-go/internal/santa/messages"
)

func TestGetErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unauthorized", err: santaerrors.UnauthorizedError{UserID: "u1"}, want: santamessages.ErrorUnauthorized},
		{name: "game not found", err: santaerrors.GameNotFoundError{ChatID: "room1"}, want: santamessages.ErrorGameNotFound},
		{name: "game already open", err: santaerrors.GameAlreadyOpenError{ChatID: "room1", GameID: "g1"}, want: santamessages.ErrorGameAlreadyOpen},
		{name: "already joined", err: santaerrors.AlreadyJoinedError{GameID: "g1", UserID: "u1"}, want: santamessages.JoinAlready},
		{name: "no participants", err: santaerrors.NoParticipantsError{GameID: "g1"}, want: santamessages.ErrorNoParticipants},
		{name: "invalid command", err: santaerrors.InvalidCommandError{Message: "bad budget"}, want: santamessages.StartUsage},
		{name: "access denied", err: cerrors.AccessDeniedError{Reason: "not allowed"}, want: santamessages.ErrorAccessDenied},
		{name: "user blocked", err: cerrors.UserBlockedError{UserID: "u1"}, want: santamessages.ErrorUserBlocked},
		{name: "chat blocked", err: cerrors.ChatBlockedError{ChatID: "room1"}, want: santamessages.ErrorChatBlocked},
		{name: "unknown error", err: errors.New("boom"), want: santamessages.ErrorInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetErrorMapping(tt.err)
			if got.Key != tt.want {
				t.Errorf("expected key %s, got %s", tt.want, got.Key)
			}
		})
	}
}

func TestGetErrorMapping_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("handle command failed: %w", santaerrors.GameNotFoundError{ChatID: "room1"})

	got := GetErrorMapping(wrapped)
	if got.Key != santamessages.ErrorGameNotFound {
		t.Errorf("expected %s for wrapped error, got %s", santamessages.ErrorGameNotFound, got.Key)
	}
}
