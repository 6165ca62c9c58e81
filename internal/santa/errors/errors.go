package errors

import (
	"errors"
	"fmt"
)

// UnauthorizedError 는 타입이다.
type UnauthorizedError struct {
	UserID string
}

func (e UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: user=%s", e.UserID)
}

// GameNotFoundError 는 타입이다.
type GameNotFoundError struct {
	ChatID string
	GameID string
}

func (e GameNotFoundError) Error() string {
	if e.GameID != "" {
		return fmt.Sprintf("game not found: game=%s", e.GameID)
	}
	return fmt.Sprintf("game not found: chat=%s", e.ChatID)
}

// GameAlreadyOpenError 는 타입이다.
type GameAlreadyOpenError struct {
	ChatID string
	GameID string
}

func (e GameAlreadyOpenError) Error() string {
	return fmt.Sprintf("game already open: chat=%s game=%s", e.ChatID, e.GameID)
}

// AlreadyJoinedError 는 타입이다.
type AlreadyJoinedError struct {
	GameID string
	UserID string
}

func (e AlreadyJoinedError) Error() string {
	return fmt.Sprintf("already joined: game=%s user=%s", e.GameID, e.UserID)
}

// NoParticipantsError 는 타입이다.
type NoParticipantsError struct {
	GameID string
}

func (e NoParticipantsError) Error() string {
	return fmt.Sprintf("no participants to pair: game=%s", e.GameID)
}

// OddParticipantCountError 는 경고 성격의 타입이다.
// 짝이 맞지 않아 한 명이 배정되지 않은 채로 매칭이 완료되었음을 알린다.
type OddParticipantCountError struct {
	GameID string
	Count  int
}

func (e OddParticipantCountError) Error() string {
	return fmt.Sprintf("odd participant count: game=%s count=%d", e.GameID, e.Count)
}

// InvalidCommandError 는 타입이다.
type InvalidCommandError struct {
	Message string
}

func (e InvalidCommandError) Error() string { return e.Message }

// IsExpectedUserBehavior 는 동작을 수행한다.
func IsExpectedUserBehavior(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.As(err, new(GameNotFoundError)):
		return true
	case errors.As(err, new(GameAlreadyOpenError)):
		return true
	case errors.As(err, new(AlreadyJoinedError)):
		return true
	case errors.As(err, new(NoParticipantsError)):
		return true
	case errors.As(err, new(InvalidCommandError)):
		return true
	default:
		return false
	}
}
