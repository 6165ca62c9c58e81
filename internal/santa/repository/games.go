package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	santaerrors "github.com/park285/secret-santa-bot-go/internal/santa/errors"
	"github.com/park285/secret-santa-bot-go/internal/santa/model"
)

func gameToModel(entity SantaGame) model.Game {
	return model.Game{
		ID:        entity.ID,
		ChatID:    entity.ChatID,
		Currency:  entity.Currency,
		Amount:    entity.Amount,
		Status:    model.ParseGameStatus(entity.Status),
		CreatedAt: entity.CreatedAt,
	}
}

// CreateGame: 새 게임을 생성한다.
// 같은 채팅방에 열린 게임이 이미 있으면 GameAlreadyOpenError를 반환한다.
// 중복 검사와 생성은 한 트랜잭션 안에서 수행된다.
func (r *Repository) CreateGame(ctx context.Context, game model.Game) (model.Game, error) {
	if r == nil || r.db == nil {
		return model.Game{}, fmt.Errorf("db is nil")
	}

	game.ChatID = strings.TrimSpace(game.ChatID)
	if game.ChatID == "" {
		return model.Game{}, fmt.Errorf("chat id is empty")
	}
	if game.ID == "" {
		game.ID = GenerateGameID(game.ChatID)
	}
	if game.Status == "" {
		game.Status = model.GameStatusOpen
	}

	entity := SantaGame{
		ID:       game.ID,
		ChatID:   game.ChatID,
		Currency: game.Currency,
		Amount:   game.Amount,
		Status:   string(game.Status),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing SantaGame
		findErr := tx.
			Where("chat_id = ? AND status = ?", game.ChatID, string(model.GameStatusOpen)).
			First(&existing).Error
		if findErr == nil {
			return santaerrors.GameAlreadyOpenError{ChatID: game.ChatID, GameID: existing.ID}
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lookup open game failed: %w", findErr)
		}
		if createErr := tx.Create(&entity).Error; createErr != nil {
			return fmt.Errorf("create game failed: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return model.Game{}, err
	}

	return gameToModel(entity), nil
}

// GetGameByChat: 채팅방의 열린 게임을 조회한다. 없으면 GameNotFoundError를 반환한다.
func (r *Repository) GetGameByChat(ctx context.Context, chatID string) (model.Game, error) {
	if r == nil || r.db == nil {
		return model.Game{}, fmt.Errorf("db is nil")
	}

	chatID = strings.TrimSpace(chatID)

	var entity SantaGame
	err := r.db.WithContext(ctx).
		Where("chat_id = ? AND status = ?", chatID, string(model.GameStatusOpen)).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Game{}, santaerrors.GameNotFoundError{ChatID: chatID}
		}
		return model.Game{}, fmt.Errorf("get game by chat failed: %w", err)
	}
	return gameToModel(entity), nil
}

// GetLatestGameByChat: 채팅방의 가장 최근 게임을 상태와 무관하게 조회한다.
// 배정 내역은 매칭이 끝나 닫힌 게임에만 존재하므로 열린 게임만 찾는
// GetGameByChat으로는 조회할 수 없다. 없으면 GameNotFoundError를 반환한다.
func (r *Repository) GetLatestGameByChat(ctx context.Context, chatID string) (model.Game, error) {
	if r == nil || r.db == nil {
		return model.Game{}, fmt.Errorf("db is nil")
	}

	chatID = strings.TrimSpace(chatID)

	var entity SantaGame
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Game{}, santaerrors.GameNotFoundError{ChatID: chatID}
		}
		return model.Game{}, fmt.Errorf("get latest game by chat failed: %w", err)
	}
	return gameToModel(entity), nil
}

// GetGame: 게임 ID로 게임을 조회한다. 없으면 GameNotFoundError를 반환한다.
func (r *Repository) GetGame(ctx context.Context, gameID string) (model.Game, error) {
	if r == nil || r.db == nil {
		return model.Game{}, fmt.Errorf("db is nil")
	}

	var entity SantaGame
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(gameID)).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Game{}, santaerrors.GameNotFoundError{GameID: gameID}
		}
		return model.Game{}, fmt.Errorf("get game failed: %w", err)
	}
	return gameToModel(entity), nil
}

// CloseGame: 게임을 종료 상태로 변경한다.
func (r *Repository) CloseGame(ctx context.Context, gameID string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	return closeGameTx(r.db.WithContext(ctx), gameID)
}

// CloseGameWithAssignments: 매칭 결과 저장과 게임 종료를 한 트랜잭션으로 수행한다.
// 배정만 커밋되고 게임이 열린 채 남는 중간 상태를 만들지 않는다.
func (r *Repository) CloseGameWithAssignments(ctx context.Context, gameID string, participants []model.Participant) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveParticipantsTx(tx, participants); err != nil {
			return err
		}
		return closeGameTx(tx, gameID)
	})
}

func closeGameTx(tx *gorm.DB, gameID string) error {
	result := tx.
		Model(&SantaGame{}).
		Where("id = ?", strings.TrimSpace(gameID)).
		Update("status", string(model.GameStatusClosed))
	if result.Error != nil {
		return fmt.Errorf("close game failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return santaerrors.GameNotFoundError{GameID: gameID}
	}
	return nil
}

// DeleteGame: 게임과 참가자 기록을 삭제한다.
// 배정 참조(assigned_to_id)를 먼저 비워 참가자 간 상호 참조를 끊은 뒤
// 참가자와 게임 행을 지운다. 전체가 한 트랜잭션으로 수행된다.
func (r *Repository) DeleteGame(ctx context.Context, gameID string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}

	gameID = strings.TrimSpace(gameID)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entity SantaGame
		if err := tx.Where("id = ?", gameID).First(&entity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return santaerrors.GameNotFoundError{GameID: gameID}
			}
			return fmt.Errorf("lookup game failed: %w", err)
		}

		if err := tx.Model(&SantaParticipant{}).
			Where("game_id = ?", gameID).
			Update("assigned_to_id", nil).Error; err != nil {
			return fmt.Errorf("clear assignments failed: %w", err)
		}
		if err := tx.Where("game_id = ?", gameID).
			Delete(&SantaParticipant{}).Error; err != nil {
			return fmt.Errorf("delete participants failed: %w", err)
		}
		if err := tx.Delete(&SantaGame{}, "id = ?", gameID).Error; err != nil {
			return fmt.Errorf("delete game failed: %w", err)
		}
		return nil
	})
}
