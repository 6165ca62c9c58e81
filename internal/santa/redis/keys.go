// Package redis 는 Secret Santa 봇의 Redis/Valkey 키 생성 함수들을 정의합니다.
package redis

import (
	"github.com/park285/secret-santa-bot-go/internal/common/valkeyx"
	santaconfig "github.com/park285/secret-santa-bot-go/internal/santa/config"
)

// GameLockKey: 게임 단위 매칭 락 키를 생성합니다.
// 형식: santa:lock:{gameID}
func GameLockKey(gameID string) string {
	return valkeyx.BuildKey(santaconfig.RedisKeyLockPrefix, gameID)
}

// processingKey: 메시지 처리 중 상태 저장용 키를 생성합니다.
// 형식: santa:processing:{chatID}
func processingKey(chatID string) string {
	return valkeyx.BuildKey(santaconfig.RedisKeyProcessing, chatID)
}
