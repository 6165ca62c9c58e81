package httpapi

import (
	"time"

	"github.com/park285/secret-santa-bot-go/internal/santa/model"
)

// GameStatusResponse: 게임 현황 조회 응답 DTO
type GameStatusResponse struct {
	GameID           string    `json:"gameId"`
	ChatID           string    `json:"chatId"`
	Currency         string    `json:"currency"`
	Amount           string    `json:"amount"`
	Status           string    `json:"status"`
	ParticipantCount int       `json:"participantCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toGameStatusResponse(game model.Game, count int) GameStatusResponse {
	return GameStatusResponse{
		GameID:           game.ID,
		ChatID:           game.ChatID,
		Currency:         game.Currency,
		Amount:           game.Amount,
		Status:           string(game.Status),
		ParticipantCount: count,
		CreatedAt:        game.CreatedAt,
	}
}

// ParticipantResponse: 참가자 조회 응답 DTO
type ParticipantResponse struct {
	UserID       string  `json:"userId"`
	Username     string  `json:"username"`
	AssignedToID *string `json:"assignedToId,omitempty"`
}

// GameDetailResponse: 관리자용 게임 상세 응답 DTO
type GameDetailResponse struct {
	Game         GameStatusResponse    `json:"game"`
	Participants []ParticipantResponse `json:"participants"`
}

// AdminResetRequest: 관리자 게임 초기화 요청 DTO
type AdminResetRequest struct {
	ChatID      string `json:"chatId"`
	GameID      string `json:"gameId"`
	AdminUserID string `json:"adminUserId"`
}

// AdminResetResponse: 관리자 게임 초기화 응답 DTO
type AdminResetResponse struct {
	GameID  string `json:"gameId"`
	Message string `json:"message"`
}
