package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Repository: DB 접근을 위한 GORM 기반 리포지토리
// 메서드들은 도메인별 파일로 분리됨:
//   - games.go: 게임 생성/조회/삭제
//   - participants.go: 참가자 관리와 매칭 결과 저장
type Repository struct {
	db *gorm.DB
}

// New: 새로운 Repository 인스턴스를 생성한다.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AutoMigrate: 자동으로 DB 테이블 스키마를 마이그레이션한다.
func (r *Repository) AutoMigrate(ctx context.Context) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if err := r.db.WithContext(ctx).AutoMigrate(
		&SantaGame{},
		&SantaParticipant{},
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

// GenerateGameID: 새 게임 ID를 생성한다.
func GenerateGameID(chatID string) string {
	chatID = strings.TrimSpace(chatID)

	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return chatID + ":" + fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return chatID + ":" + hex.EncodeToString(b[:])
}
