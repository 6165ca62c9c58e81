package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	santaerrors "github.com/park285/secret-santa-bot-go/internal/santa/errors"
	"github.com/park285/secret-santa-bot-go/internal/santa/model"
)

func participantToModel(entity SantaParticipant) model.Participant {
	return model.Participant{
		ID:           entity.ID,
		GameID:       entity.GameID,
		UserID:       entity.UserID,
		Username:     entity.Username,
		AssignedToID: entity.AssignedToID,
		CreatedAt:    entity.CreatedAt,
	}
}

// AddParticipant: 참가자를 게임에 추가한다.
// (game_id, user_id) 유니크 인덱스로 이미 참가한 사용자는 AlreadyJoinedError를 받는다.
func (r *Repository) AddParticipant(ctx context.Context, p model.Participant) (model.Participant, error) {
	if r == nil || r.db == nil {
		return model.Participant{}, fmt.Errorf("db is nil")
	}

	p.GameID = strings.TrimSpace(p.GameID)
	p.UserID = strings.TrimSpace(p.UserID)
	if p.GameID == "" || p.UserID == "" {
		return model.Participant{}, fmt.Errorf("game id or user id is empty")
	}

	entity := SantaParticipant{
		GameID:   p.GameID,
		UserID:   p.UserID,
		Username: strings.TrimSpace(p.Username),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "game_id"},
			{Name: "user_id"},
		},
		DoNothing: true,
	}).Create(&entity)
	if result.Error != nil {
		return model.Participant{}, fmt.Errorf("add participant failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.Participant{}, santaerrors.AlreadyJoinedError{GameID: p.GameID, UserID: p.UserID}
	}

	return participantToModel(entity), nil
}

// IsUserInGame: 사용자가 게임에 이미 참가했는지 확인한다.
func (r *Repository) IsUserInGame(ctx context.Context, gameID string, userID string) (bool, error) {
	if r == nil || r.db == nil {
		return false, fmt.Errorf("db is nil")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&SantaParticipant{}).
		Where("game_id = ? AND user_id = ?", strings.TrimSpace(gameID), strings.TrimSpace(userID)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("is user in game failed: %w", err)
	}
	return count > 0, nil
}

// ListParticipants: 게임의 전체 참가자를 참가 순서대로 조회한다.
func (r *Repository) ListParticipants(ctx context.Context, gameID string) ([]model.Participant, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	var entities []SantaParticipant
	err := r.db.WithContext(ctx).
		Where("game_id = ?", strings.TrimSpace(gameID)).
		Order("id ASC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("list participants failed: %w", err)
	}

	participants := make([]model.Participant, 0, len(entities))
	for _, entity := range entities {
		participants = append(participants, participantToModel(entity))
	}
	return participants, nil
}

// ListUnassignedParticipants: 아직 선물 상대가 배정되지 않은 참가자를 조회한다.
func (r *Repository) ListUnassignedParticipants(ctx context.Context, gameID string) ([]model.Participant, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}

	var entities []SantaParticipant
	err := r.db.WithContext(ctx).
		Where("game_id = ? AND (assigned_to_id IS NULL OR assigned_to_id = '')", strings.TrimSpace(gameID)).
		Order("id ASC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("list unassigned participants failed: %w", err)
	}

	participants := make([]model.Participant, 0, len(entities))
	for _, entity := range entities {
		participants = append(participants, participantToModel(entity))
	}
	return participants, nil
}

// CountParticipants: 게임의 참가자 수를 조회한다.
func (r *Repository) CountParticipants(ctx context.Context, gameID string) (int, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("db is nil")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&SantaParticipant{}).
		Where("game_id = ?", strings.TrimSpace(gameID)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count participants failed: %w", err)
	}
	return int(count), nil
}

// SaveParticipants: 매칭 결과(배정 정보)를 한 트랜잭션으로 저장한다.
// 일부 행의 갱신이 실패하면 전체가 롤백되어 절반만 배정된 상태를 남기지 않는다.
func (r *Repository) SaveParticipants(ctx context.Context, participants []model.Participant) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if len(participants) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveParticipantsTx(tx, participants)
	})
}

func saveParticipantsTx(tx *gorm.DB, participants []model.Participant) error {
	for _, p := range participants {
		result := tx.Model(&SantaParticipant{}).
			Where("id = ?", p.ID).
			Updates(map[string]any{
				"assigned_to_id": p.AssignedToID,
				"username":       p.Username,
			})
		if result.Error != nil {
			return fmt.Errorf("save participant id=%d failed: %w", p.ID, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("save participant id=%d failed: row not found", p.ID)
		}
	}
	return nil
}
