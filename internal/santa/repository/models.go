package repository

import "time"

// SantaGame: 채팅방별 시크릿 산타 게임 기록
// 부분 유니크 제약(열린 게임 1개)은 CreateGame 트랜잭션에서 보장한다.
type SantaGame struct {
	ID        string    `gorm:"column:id;primaryKey"`
	ChatID    string    `gorm:"column:chat_id;not null;index"`
	Currency  string    `gorm:"column:currency;not null"`
	Amount    string    `gorm:"column:amount;not null"`
	Status    string    `gorm:"column:status;not null;default:'OPEN';index"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (SantaGame) TableName() string { return "santa_games" }

// SantaParticipant: 게임 참가자 기록
// 복합 유니크 인덱스: idx_santa_participants_game_user (game_id, user_id)
// 복합 유니크 인덱스: idx_santa_participants_game_assigned (game_id, assigned_to_id)
// 두 번째 인덱스는 한 사용자가 두 명 이상의 산타에게 배정되는 것을 막는다.
type SantaParticipant struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	GameID       string    `gorm:"column:game_id;not null;uniqueIndex:idx_santa_participants_game_user,priority:1;uniqueIndex:idx_santa_participants_game_assigned,priority:1"`
	UserID       string    `gorm:"column:user_id;not null;uniqueIndex:idx_santa_participants_game_user,priority:2"`
	Username     string    `gorm:"column:username;not null;default:''"`
	AssignedToID *string   `gorm:"column:assigned_to_id;uniqueIndex:idx_santa_participants_game_assigned,priority:2"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (SantaParticipant) TableName() string { return "santa_participants" }
