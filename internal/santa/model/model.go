package model

import (
	"strings"
	"time"
)

// GameStatus: 게임 진행 상태 타입
type GameStatus string

const (
	// GameStatusOpen: 참가자를 모집 중인 상태
	GameStatusOpen GameStatus = "OPEN"
	// GameStatusClosed: 매칭이 완료되어 종료된 상태
	GameStatusClosed GameStatus = "CLOSED"
)

// ParseGameStatus: 문자열을 GameStatus로 변환한다.
func ParseGameStatus(input string) GameStatus {
	switch GameStatus(strings.ToUpper(strings.TrimSpace(input))) {
	case GameStatusClosed:
		return GameStatusClosed
	default:
		return GameStatusOpen
	}
}

// Game: 한 채팅방의 시크릿 산타 게임 한 판
type Game struct {
	ID        string     `json:"id"`
	ChatID    string     `json:"chatId"`
	Currency  string     `json:"currency"`
	Amount    string     `json:"amount"`
	Status    GameStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// IsOpen: 참가 신청을 받을 수 있는 상태인지 확인한다.
func (g Game) IsOpen() bool { return g.Status == GameStatusOpen }

// Budget: 선물 예산을 "금액 통화" 형태로 표시한다.
func (g Game) Budget() string {
	return strings.TrimSpace(g.Amount + " " + g.Currency)
}

// Participant: 게임에 참가한 사용자
type Participant struct {
	ID           uint64    `json:"id"`
	GameID       string    `json:"gameId"`
	UserID       string    `json:"userId"`
	Username     string    `json:"username"`
	AssignedToID *string   `json:"assignedToId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAssigned: 선물 상대가 배정되었는지 확인한다.
func (p Participant) IsAssigned() bool {
	return p.AssignedToID != nil && *p.AssignedToID != ""
}

// AssignTo: 선물 상대를 배정한 사본을 반환한다. (Immutable)
func (p Participant) AssignTo(userID string) Participant {
	next := p
	next.AssignedToID = &userID
	return next
}

// DisplayName: 알림에 표기할 이름을 반환한다. 닉네임이 없으면 사용자 ID를 사용한다.
func (p Participant) DisplayName() string {
	name := strings.TrimSpace(p.Username)
	if name != "" {
		return name
	}
	return p.UserID
}
