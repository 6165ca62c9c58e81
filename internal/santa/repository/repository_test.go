package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	santaerrors "github.com/park285/secret-santa-bot-go/internal/santa/errors"
	"github.com/park285/secret-santa-bot-go/internal/santa/model"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repo := New(db)
	if err := repo.AutoMigrate(context.Background()); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return repo
}

func TestCreateGame_RejectsSecondOpenGame(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.CreateGame(ctx, model.Game{ChatID: "room1", Currency: "USD", Amount: "100"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID == "" || first.Status != model.GameStatusOpen {
		t.Fatalf("unexpected game: %+v", first)
	}

	_, err = repo.CreateGame(ctx, model.Game{ChatID: "room1", Currency: "KRW", Amount: "50000"})
	var alreadyOpen santaerrors.GameAlreadyOpenError
	if !errors.As(err, &alreadyOpen) {
		t.Fatalf("expected GameAlreadyOpenError, got %v", err)
	}
	if alreadyOpen.GameID != first.ID {
		t.Errorf("expected conflicting game id %s, got %s", first.ID, alreadyOpen.GameID)
	}

	// 다른 채팅방에는 동시에 게임을 열 수 있다.
	if _, err := repo.CreateGame(ctx, model.Game{ChatID: "room2", Currency: "KRW", Amount: "50000"}); err != nil {
		t.Fatalf("create in other chat failed: %v", err)
	}
}

func TestCreateGame_AllowsNewGameAfterClose(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	game, err := repo.CreateGame(ctx, model.Game{ChatID: "room1", Currency: "USD", Amount: "100"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.CloseGame(ctx, game.ID); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if _, err := repo.CreateGame(ctx, model.Game{ChatID: "room1", Currency: "EUR", Amount: "30"}); err != nil {
		t.Fatalf("expected new game after close, got %v", err)
	}
}

func TestGetGameByChat_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetGameByChat(context.Background(), "empty-room")
	var notFound santaerrors.GameNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected GameNotFoundError, got %v", err)
	}
}

func TestGetGameByChat_IgnoresClosedGames(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	game, err := repo.CreateGame(ctx, model.Game{ChatID: "room1", Currency: "USD", Amount: "100"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.CloseGame(ctx, game.ID); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	_, err = repo.GetGameByChat(ctx, "room1")
	var notFound santaerrors.GameNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected GameNotFoundError for closed game, got %v", err)
	}

	// ID 조회는 종료된 게임도 반환한다.
	got, err := repo.GetGame(ctx, game.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got.Status != model.GameStatusClosed {
		t.Errorf("expected CLOSED, got %s", got.Status)
	}
}

func TestGetLatestGameByChat_SeesClosedGame(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	game, err := repo.CreateGame(ctx, model.Game{ChatID: "room1", Currency: "USD", Amount: "100"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	a, _ := repo.AddParticipant(ctx, model.Participant{GameID: game.ID, UserID: "u1", Username: "Kim"})
	b, _ := repo.AddParticipant(ctx, model.Participant{GameID: game.ID, UserID: "u2", Username: "Lee"})
	if err := repo.CloseGameWithAssignments(ctx, game.ID, []model.Participant{a.AssignTo(b.UserID), b.AssignTo(a.UserID)}); err != nil {
		t.Fatalf("close with assignments failed: %v", err)
	}

	// 열린 게임만 찾는 조회는 종료 후 실패한다.
	_, err = repo.GetGameByChat(ctx, "room1")
	var notFound santaerrors.GameNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected GameNotFoundError from open-game lookup, got %v", err)
	}

	// 배정 내역이 남은 종료된 게임은 최근 게임 조회로 확인할 수 있어야 한다.
	latest, err := repo.GetLatestGameByChat(ctx, "room1")
	if err != nil {
		t.Fatalf("latest lookup failed: %v", err)
	}
	if latest.ID != game.ID || latest.Status != model.GameStatusClosed {
		t.Fatalf("unexpected latest game: %+v", latest)
	}

	all, err := repo.ListParticipants(ctx, latest.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, p := range all {
		if !p.IsAssigned() {
			t.Errorf("participant %s has no assignment", p.UserID)
		}
	}
}

func TestGetLatestGameByChat_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetLatestGameByChat(context.Background(), "empty-room")
	var notFound santaerrors.GameNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected GameNotFoundError, got %v", err)
	}
}

func TestCloseGameWithAssignments_RollsBackOnUnknownGame(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	game, err := repo.CreateGame(ctx, model.Game{ChatID: "room1", Currency: "USD", Amount: "100"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	a, _ := repo.AddParticipant(ctx, model.Participant{GameID: game.ID, UserID: "u1", Username: "Kim"})
	b, _ := repo.AddParticipant(ctx, model.Participant{GameID: game.ID, UserID: "u2", Username: "Lee"})

	err = repo.CloseGameWithAssignments(ctx, "missing:deadbeef",
		[]model.Participant{a.AssignTo(b.UserID), b.AssignTo(a.UserID)})
	var notFound santaerrors.GameNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected GameNotFoundError, got %v", err)
	}

	// 종료가 실패하면 같은 트랜잭션의 배정 저장도 롤백되어야 한다.
	unassigned, err := repo.ListUnassignedParticipants(ctx, game.ID)
	if err != nil {
		t.Fatalf("list unassigned failed: %v", err)
	}
	if len(unassigned) != 2 {
		t.Fatalf("expected assignments rolled back, got %d unassigned", len(unassigned))
	}

	got, err := repo.GetGame(ctx, game.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != model.GameStatusOpen {
		t.Errorf("expected game to stay OPEN, got %s", got.Status)
	}
}

func TestCloseGame_UnknownID(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.CloseGame(context.Background(), "missing:deadbeef")
	var notFound santaerrors.GameNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected GameNotFoundError, got %v", err)
	}
}

func TestAddParticipant_Idempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	game, err := repo.CreateGame(ctx, model.Game{ChatID: "room1", Currency: "USD", Amount: "100"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := repo.AddParticipant(ctx, model.Participant{GameID: game.ID, UserID: "u1", Username: "Kim"}); err != nil {
		t.Fatalf("first join failed: %v", err)
	}

	_, err = repo.AddParticipant(ctx, model.Participant{GameID: game.ID, UserID: "u1", Username: "Kim"})
	var already santaerrors.AlreadyJoinedError
	if !errors.As(err, &already) {
		t.Fatalf("expected AlreadyJoinedError, got %v", err)
	}

	count, err := repo.CountParticipants(ctx, game.ID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 participant, got %d", count)
	}
}

func TestSaveParticipants_PersistsAssignments(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	game, err := repo.CreateGame(ctx, model.Game{ChatID: "room1", Currency: "USD", Amount: "100"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	a, _ := repo.AddParticipant(ctx, model.Participant{GameID: game.ID, UserID: "u1", Username: "Kim"})
	b, _ := repo.AddParticipant(ctx, model.Participant{GameID: game.ID, UserID: "u2", Username: "Lee"})

	if err := repo.SaveParticipants(ctx, []model.Participant{a.AssignTo(b.UserID), b.AssignTo(a.UserID)}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	unassigned, err := repo.ListUnassignedParticipants(ctx, game.ID)
	if err != nil {
		t.Fatalf("list unassigned failed: %v", err)
	}
	if len(unassigned) != 0 {
		t.Fatalf("expected no unassigned participants, got %d", len(unassigned))
	}

	all, err := repo.ListParticipants(ctx, game.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, p := range all {
		if !p.IsAssigned() {
			t.Errorf("participant %s has no assignment", p.UserID)
		}
	}
}

func TestDeleteGame_RemovesGameAndParticipants(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	game, err := repo.CreateGame(ctx, model.Game{ChatID: "room1", Currency: "USD", Amount: "100"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	a, _ := repo.AddParticipant(ctx, model.Participant{GameID: game.ID, UserID: "u1", Username: "Kim"})
	b, _ := repo.AddParticipant(ctx, model.Participant{GameID: game.ID, UserID: "u2", Username: "Lee"})
	if err := repo.SaveParticipants(ctx, []model.Participant{a.AssignTo(b.UserID), b.AssignTo(a.UserID)}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := repo.DeleteGame(ctx, game.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	_, err = repo.GetGame(ctx, game.ID)
	var notFound santaerrors.GameNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected GameNotFoundError after delete, got %v", err)
	}

	count, err := repo.CountParticipants(ctx, game.ID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 participants after delete, got %d", count)
	}
}

func TestDeleteGame_UnknownID(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.DeleteGame(context.Background(), "missing:deadbeef")
	var notFound santaerrors.GameNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected GameNotFoundError, got %v", err)
	}
}

func TestGenerateGameID_ScopedToChat(t *testing.T) {
	id1 := GenerateGameID("room1")
	id2 := GenerateGameID("room1")

	if !strings.HasPrefix(id1, "room1:") {
		t.Errorf("expected chat prefix, got %s", id1)
	}
	if id1 == id2 {
		t.Errorf("expected unique ids, got %s twice", id1)
	}
}
