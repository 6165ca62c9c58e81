package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	santaconfig "github.com/park285/secret-santa-bot-go/internal/santa/config"
	santaerrors "github.com/park285/secret-santa-bot-go/internal/santa/errors"
	"github.com/park285/secret-santa-bot-go/internal/santa/model"
	santaredis "github.com/park285/secret-santa-bot-go/internal/santa/redis"
	"github.com/park285/secret-santa-bot-go/internal/santa/repository"
	santasecurity "github.com/park285/secret-santa-bot-go/internal/santa/security"
)

// GameService 는 타입이다.
type GameService struct {
	repo     *repository.Repository
	access   *santasecurity.AccessControl
	locks    *santaredis.GameLockManager
	notifier AssignmentNotifier
	logger   *slog.Logger
}

// NewGameService 는 동작을 수행한다.
func NewGameService(
	repo *repository.Repository,
	access *santasecurity.AccessControl,
	locks *santaredis.GameLockManager,
	notifier AssignmentNotifier,
	logger *slog.Logger,
) *GameService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameService{
		repo:     repo,
		access:   access,
		locks:    locks,
		notifier: notifier,
		logger:   logger,
	}
}

var amountPattern = regexp.MustCompile(`^\d+(?:[.,]\d+)?$`)

func isValidBudget(currency string, amount string) bool {
	if currency == "" || len(currency) > santaconfig.ValidationMaxCurrencyLength {
		return false
	}
	return amountPattern.MatchString(amount)
}

// StartGame 는 동작을 수행한다.
// 관리자만 호출할 수 있으며, 채팅방에 열린 게임이 이미 있으면 실패한다.
func (s *GameService) StartGame(
	ctx context.Context,
	chatID string,
	userID string,
	currency string,
	amount string,
) (model.Game, error) {
	if !s.access.IsAdmin(userID) {
		return model.Game{}, santaerrors.UnauthorizedError{UserID: userID}
	}

	currency = strings.TrimSpace(currency)
	amount = strings.TrimSpace(amount)
	if !isValidBudget(currency, amount) {
		return model.Game{}, santaerrors.InvalidCommandError{Message: "invalid budget format"}
	}

	game, err := s.repo.CreateGame(ctx, model.Game{
		ChatID:   chatID,
		Currency: currency,
		Amount:   amount,
	})
	if err != nil {
		return model.Game{}, err
	}

	s.logger.Info("game_started",
		"game_id", game.ID,
		"chat_id", chatID,
		"budget", game.Budget(),
	)
	return game, nil
}

// JoinGame 는 동작을 수행한다.
// 열린 게임이 없으면 GameNotFoundError, 이미 참가했으면 AlreadyJoinedError를 반환한다.
func (s *GameService) JoinGame(
	ctx context.Context,
	chatID string,
	userID string,
	username string,
) (model.Game, model.Participant, error) {
	game, err := s.repo.GetGameByChat(ctx, chatID)
	if err != nil {
		return model.Game{}, model.Participant{}, err
	}

	participant, err := s.repo.AddParticipant(ctx, model.Participant{
		GameID:   game.ID,
		UserID:   userID,
		Username: username,
	})
	if err != nil {
		return model.Game{}, model.Participant{}, err
	}

	s.logger.Info("player_joined",
		"game_id", game.ID,
		"chat_id", chatID,
		"user_id", userID,
	)
	return game, participant, nil
}

// StopResult 는 타입이다.
type StopResult struct {
	Game       model.Game
	Assigned   []model.Participant
	Unpaired   *model.Participant
	DMFailures int
}

// OddCount: 짝이 없어 배정받지 못한 참가자가 남았는지 확인한다.
func (r StopResult) OddCount() bool { return r.Unpaired != nil }

// StopGame 는 동작을 수행한다.
// gameID가 비어있으면 채팅방의 열린 게임을 대상으로 한다.
// 참가자를 무작위로 매칭하고 결과를 저장한 뒤 각 참가자에게 개인 메시지를 보낸다.
// 개인 메시지 전송은 저장이 커밋된 후에만 수행되며 일부 실패해도 결과는 유지된다.
func (s *GameService) StopGame(ctx context.Context, chatID string, userID string, gameID string) (StopResult, error) {
	if !s.access.IsAdmin(userID) {
		return StopResult{}, santaerrors.UnauthorizedError{UserID: userID}
	}

	var game model.Game
	var err error
	if strings.TrimSpace(gameID) != "" {
		game, err = s.repo.GetGame(ctx, gameID)
	} else {
		game, err = s.repo.GetGameByChat(ctx, chatID)
	}
	if err != nil {
		return StopResult{}, err
	}

	var result StopResult
	err = s.locks.WithGameLock(ctx, game.ID, func(ctx context.Context) error {
		unassigned, listErr := s.repo.ListUnassignedParticipants(ctx, game.ID)
		if listErr != nil {
			return listErr
		}
		if len(unassigned) == 0 {
			return santaerrors.NoParticipantsError{GameID: game.ID}
		}

		pairing := PairParticipants(unassigned)
		if saveErr := s.repo.CloseGameWithAssignments(ctx, game.ID, pairing.Assigned); saveErr != nil {
			return saveErr
		}

		result = StopResult{
			Game:     game,
			Assigned: pairing.Assigned,
			Unpaired: pairing.Unpaired,
		}
		return nil
	})
	if err != nil {
		return StopResult{}, err
	}

	if result.OddCount() {
		s.logger.Warn("odd_participant_count",
			"chat_id", chatID,
			"error", santaerrors.OddParticipantCountError{GameID: game.ID, Count: len(result.Assigned) + 1},
		)
	}

	result.DMFailures = s.notifyAssignments(ctx, game, result.Assigned)

	s.logger.Info("game_stopped",
		"game_id", game.ID,
		"chat_id", chatID,
		"assigned", len(result.Assigned),
		"odd_count", result.OddCount(),
		"dm_failures", result.DMFailures,
	)
	return result, nil
}

// notifyAssignments: 배정 결과를 참가자별 개인 메시지로 전달한다.
// 수신자 한 명의 실패가 다른 참가자에게 영향을 주지 않도록 에러를 삼키고 집계만 한다.
func (s *GameService) notifyAssignments(ctx context.Context, game model.Game, assigned []model.Participant) int {
	if s.notifier == nil || len(assigned) == 0 {
		return 0
	}

	byUserID := make(map[string]model.Participant, len(assigned))
	for _, p := range assigned {
		byUserID[p.UserID] = p
	}

	var failures atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(santaconfig.NotifyConcurrency)

	for _, p := range assigned {
		if !p.IsAssigned() {
			continue
		}
		receiver, ok := byUserID[*p.AssignedToID]
		if !ok {
			s.logger.Warn("assignment_receiver_missing",
				"game_id", game.ID,
				"user_id", p.UserID,
			)
			failures.Add(1)
			continue
		}

		santa := p
		g.Go(func() error {
			if err := s.notifier.NotifyAssignment(gctx, game, santa, receiver); err != nil {
				s.logger.Warn("assignment_dm_failed",
					"game_id", game.ID,
					"user_id", santa.UserID,
					"error", err,
				)
				failures.Add(1)
			}
			return nil
		})
	}

	_ = g.Wait()
	return int(failures.Load())
}

// ResetGame 는 동작을 수행한다.
// gameID가 비어있으면 채팅방의 열린 게임을 대상으로 한다.
// 참가자 배정 참조를 먼저 끊은 뒤 게임을 삭제한다.
func (s *GameService) ResetGame(ctx context.Context, chatID string, userID string, gameID string) (model.Game, error) {
	if !s.access.IsAdmin(userID) {
		return model.Game{}, santaerrors.UnauthorizedError{UserID: userID}
	}

	var game model.Game
	var err error
	if strings.TrimSpace(gameID) != "" {
		game, err = s.repo.GetGame(ctx, gameID)
	} else {
		game, err = s.repo.GetGameByChat(ctx, chatID)
	}
	if err != nil {
		return model.Game{}, err
	}

	err = s.locks.WithGameLock(ctx, game.ID, func(ctx context.Context) error {
		return s.repo.DeleteGame(ctx, game.ID)
	})
	if err != nil {
		return model.Game{}, err
	}

	s.logger.Info("game_reset",
		"game_id", game.ID,
		"chat_id", chatID,
	)
	return game, nil
}

// Status 는 동작을 수행한다.
func (s *GameService) Status(ctx context.Context, chatID string) (model.Game, int, error) {
	game, err := s.repo.GetGameByChat(ctx, chatID)
	if err != nil {
		return model.Game{}, 0, err
	}

	count, err := s.repo.CountParticipants(ctx, game.ID)
	if err != nil {
		return model.Game{}, 0, err
	}
	return game, count, nil
}
