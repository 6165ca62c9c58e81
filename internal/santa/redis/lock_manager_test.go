package redis

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	cerrors "github.com/park285/secret-santa-bot-go/internal/common/errors"
	"github.com/park285/secret-santa-bot-go/internal/common/lockutil"
	"github.com/park285/secret-santa-bot-go/internal/common/testhelper"
	santaconfig "github.com/park285/secret-santa-bot-go/internal/santa/config"
)

func newTestGameLockManager(t *testing.T) *GameLockManager {
	t.Helper()
	client := testhelper.NewTestValkeyClient(t)
	t.Cleanup(client.Close)
	t.Cleanup(func() {
		testhelper.CleanupTestKeys(t, client, santaconfig.RedisKeyPrefix+":")
	})
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewGameLockManager(client, logger)
}

func TestWithGameLock_ExecutesAndReleases(t *testing.T) {
	lm := newTestGameLockManager(t)
	ctx := context.Background()
	gameID := testhelper.UniqueTestPrefix(t) + "game1"

	executed := false
	err := lm.WithGameLock(ctx, gameID, func(ctx context.Context) error {
		executed = true
		return nil
	})
	if err != nil {
		t.Fatalf("WithGameLock failed: %v", err)
	}
	if !executed {
		t.Fatal("callback was not executed")
	}

	// 락이 해제되어 다시 잡을 수 있어야 한다.
	err = lm.WithGameLock(ctx, gameID, func(ctx context.Context) error { return nil })
	if err != nil {
		t.Fatalf("WithGameLock should succeed after release, got: %v", err)
	}
}

func TestWithGameLock_RejectsConcurrentHolder(t *testing.T) {
	lm := newTestGameLockManager(t)
	ctx := context.Background()
	gameID := testhelper.UniqueTestPrefix(t) + "game2"

	var inner error
	err := lm.WithGameLock(ctx, gameID, func(_ context.Context) error {
		// 다른 워커를 흉내내기 위해 락 스코프가 없는 새 Context를 사용한다.
		inner = lm.WithGameLock(context.Background(), gameID, func(ctx context.Context) error {
			t.Error("competing callback must not run")
			return nil
		})
		return nil
	})
	if err != nil {
		t.Fatalf("outer WithGameLock failed: %v", err)
	}

	var lockErr cerrors.LockError
	if !errors.As(inner, &lockErr) {
		t.Fatalf("expected LockError, got %v", inner)
	}
	if lockErr.SessionID != gameID {
		t.Errorf("expected session id %s, got %s", gameID, lockErr.SessionID)
	}
}

func TestWithGameLock_Reentrant(t *testing.T) {
	lm := newTestGameLockManager(t)
	ctx := context.Background()
	gameID := testhelper.UniqueTestPrefix(t) + "game4"

	nested := false
	err := lm.WithGameLock(ctx, gameID, func(ctx context.Context) error {
		scope, ok := lockutil.ScopeFromContext(ctx)
		if !ok || !scope.IsHeld(GameLockKey(gameID)) {
			t.Fatal("lock scope should hold the game lock inside the callback")
		}
		return lm.WithGameLock(ctx, gameID, func(ctx context.Context) error {
			nested = true
			return nil
		})
	})
	if err != nil {
		t.Fatalf("reentrant WithGameLock failed: %v", err)
	}
	if !nested {
		t.Fatal("nested callback was not executed")
	}

	// 재진입 해제 후 락이 완전히 풀려 있어야 한다.
	if err := lm.WithGameLock(context.Background(), gameID, func(ctx context.Context) error { return nil }); err != nil {
		t.Fatalf("WithGameLock should succeed after reentrant release, got: %v", err)
	}
}

func TestWithGameLock_ReleasesAfterCallbackError(t *testing.T) {
	lm := newTestGameLockManager(t)
	ctx := context.Background()
	gameID := testhelper.UniqueTestPrefix(t) + "game3"

	wantErr := errors.New("boom")
	err := lm.WithGameLock(ctx, gameID, func(ctx context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected callback error, got %v", err)
	}

	err = lm.WithGameLock(ctx, gameID, func(ctx context.Context) error { return nil })
	if err != nil {
		t.Fatalf("WithGameLock should succeed after error release, got: %v", err)
	}
}
