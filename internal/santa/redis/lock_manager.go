package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	cerrors "github.com/park285/secret-santa-bot-go/internal/common/errors"
	"github.com/park285/secret-santa-bot-go/internal/common/lockutil"
	"github.com/park285/secret-santa-bot-go/internal/common/valkeyx"
	santaconfig "github.com/park285/secret-santa-bot-go/internal/santa/config"
)

// GameLockManager: 매칭/초기화 같은 게임 단위 작업의 동시 실행을 막는 락 관리자
// 토큰 값으로 소유권을 구분하며, Context 스코프 기반의 재진입을 지원합니다.
type GameLockManager struct {
	client           valkey.Client
	logger           *slog.Logger
	redisCallTimeout time.Duration
}

// NewGameLockManager: 새로운 GameLockManager 인스턴스를 생성합니다.
func NewGameLockManager(client valkey.Client, logger *slog.Logger) *GameLockManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameLockManager{
		client:           client,
		logger:           logger,
		redisCallTimeout: 5 * time.Second,
	}
}

// WithGameLock: 게임 락을 잡은 상태에서 fn을 실행합니다.
// 같은 Context가 이미 잡은 락은 재진입으로 처리하고,
// 다른 작업이 락을 잡고 있으면 LockError를 반환합니다.
func (m *GameLockManager) WithGameLock(ctx context.Context, gameID string, fn func(ctx context.Context) error) error {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return fmt.Errorf("game id is empty")
	}

	scope, ok := lockutil.ScopeFromContext(ctx)
	if !ok {
		scope = lockutil.NewScope()
		ctx = lockutil.WithScope(ctx, scope)
	}

	key := GameLockKey(gameID)
	if scope.IncrementIfHeld(key) {
		defer scope.Decrement(key)
		return fn(ctx)
	}

	token, err := lockutil.NewToken()
	if err != nil {
		return fmt.Errorf("generate lock token failed: %w", err)
	}

	acquired, err := m.acquire(ctx, key, token, lockutil.TTLDurationFromSeconds(santaconfig.RedisLockTTLSeconds))
	if err != nil {
		return err
	}
	if !acquired {
		return cerrors.LockError{SessionID: gameID, Description: "game lock held"}
	}

	scope.Set(key, lockutil.HeldLock{Token: token, Count: 1})
	defer func() {
		held, shouldRelease := scope.ReleaseIfLast(key)
		if !shouldRelease {
			return
		}
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.redisCallTimeout)
		defer cancel()
		if releaseErr := m.release(releaseCtx, key, held.Token); releaseErr != nil {
			m.logger.Warn("game_lock_release_failed", "game_id", gameID, "error", releaseErr)
		}
	}()

	return fn(ctx)
}

func (m *GameLockManager) acquire(ctx context.Context, key string, token string, ttl time.Duration) (bool, error) {
	cmd := m.client.B().Set().Key(key).Value(token).Nx().Ex(ttl).Build()
	if err := m.client.Do(ctx, cmd).Error(); err != nil {
		if valkeyx.IsNil(err) {
			return false, nil
		}
		return false, valkeyx.WrapRedisError("game_lock_acquire", err)
	}
	return true, nil
}

// release: 토큰이 일치할 때만 락을 삭제한다.
// GET 과 DEL 사이의 경합은 TTL 만료가 수습한다.
func (m *GameLockManager) release(ctx context.Context, key string, token string) error {
	value, err := m.client.Do(ctx, m.client.B().Get().Key(key).Build()).ToString()
	if err != nil {
		if valkeyx.IsNil(err) {
			return nil
		}
		return valkeyx.WrapRedisError("game_lock_read", err)
	}
	if value != token {
		return nil
	}
	if err := m.client.Do(ctx, m.client.B().Del().Key(key).Build()).Error(); err != nil {
		return valkeyx.WrapRedisError("game_lock_release", err)
	}
	return nil
}
