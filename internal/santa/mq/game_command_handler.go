package mq

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/park285/secret-santa-bot-go/internal/common/messageprovider"
	"github.com/park285/secret-santa-bot-go/internal/common/mqmsg"
	santamessages "github.com/park285/secret-santa-bot-go/internal/santa/messages"
	santasvc "github.com/park285/secret-santa-bot-go/internal/santa/service"
)

// GameCommandHandler 는 타입이다.
type GameCommandHandler struct {
	gameService *santasvc.GameService
	msgProvider *messageprovider.Provider
	logger      *slog.Logger
}

// NewGameCommandHandler 는 동작을 수행한다.
func NewGameCommandHandler(
	gameService *santasvc.GameService,
	msgProvider *messageprovider.Provider,
	logger *slog.Logger,
) *GameCommandHandler {
	return &GameCommandHandler{
		gameService: gameService,
		msgProvider: msgProvider,
		logger:      logger,
	}
}

// ProcessCommand 는 동작을 수행한다.
func (h *GameCommandHandler) ProcessCommand(ctx context.Context, message mqmsg.InboundMessage, command Command) (string, error) {
	switch command.Kind {
	case CommandStart:
		return h.handleStart(ctx, message, command)
	case CommandJoin:
		return h.handleJoin(ctx, message)
	case CommandStop:
		return h.handleStop(ctx, message, command)
	case CommandReset:
		return h.handleReset(ctx, message, command)
	case CommandStatus:
		return h.handleStatus(ctx, message)
	case CommandHelp:
		return h.msgProvider.Get(santamessages.HelpMessage), nil
	case CommandUnknown:
		return h.msgProvider.Get(santamessages.ErrorUnknownCommand), nil
	default:
		return h.msgProvider.Get(santamessages.ErrorUnknownCommand), nil
	}
}

func (h *GameCommandHandler) handleStart(ctx context.Context, message mqmsg.InboundMessage, command Command) (string, error) {
	if command.HasInvalidInput {
		return h.msgProvider.Get(santamessages.StartUsage), nil
	}

	game, err := h.gameService.StartGame(ctx, message.ChatID, message.UserID, command.Currency, command.Amount)
	if err != nil {
		return "", fmt.Errorf("start game failed: %w", err)
	}

	return h.msgProvider.Get(
		santamessages.StartSuccess,
		messageprovider.P("budget", game.Budget()),
	), nil
}

func (h *GameCommandHandler) handleJoin(ctx context.Context, message mqmsg.InboundMessage) (string, error) {
	username := h.senderName(message)

	_, participant, err := h.gameService.JoinGame(ctx, message.ChatID, message.UserID, username)
	if err != nil {
		return "", fmt.Errorf("join game failed: %w", err)
	}

	return h.msgProvider.Get(
		santamessages.JoinSuccess,
		messageprovider.P("name", participant.DisplayName()),
	), nil
}

func (h *GameCommandHandler) handleStop(ctx context.Context, message mqmsg.InboundMessage, command Command) (string, error) {
	result, err := h.gameService.StopGame(ctx, message.ChatID, message.UserID, command.GameID)
	if err != nil {
		return "", fmt.Errorf("stop game failed: %w", err)
	}

	lines := make([]string, 0, 3)
	if result.OddCount() {
		lines = append(lines, h.msgProvider.Get(
			santamessages.StopOddCount,
			messageprovider.P("name", result.Unpaired.DisplayName()),
		))
	}
	if len(result.Assigned) == 0 {
		lines = append(lines, h.msgProvider.Get(santamessages.StopNonePaired))
	} else {
		lines = append(lines, h.msgProvider.Get(
			santamessages.StopSuccess,
			messageprovider.P("count", len(result.Assigned)),
		))
	}
	if result.DMFailures > 0 {
		lines = append(lines, h.msgProvider.Get(
			santamessages.StopDMPartial,
			messageprovider.P("failures", result.DMFailures),
		))
	}
	return strings.Join(lines, "\n\n"), nil
}

func (h *GameCommandHandler) handleReset(ctx context.Context, message mqmsg.InboundMessage, command Command) (string, error) {
	game, err := h.gameService.ResetGame(ctx, message.ChatID, message.UserID, command.GameID)
	if err != nil {
		return "", fmt.Errorf("reset game failed: %w", err)
	}

	h.logger.Debug("handleReset_complete", "game_id", game.ID, "chat_id", message.ChatID)
	return h.msgProvider.Get(santamessages.ResetSuccess), nil
}

func (h *GameCommandHandler) handleStatus(ctx context.Context, message mqmsg.InboundMessage) (string, error) {
	game, count, err := h.gameService.Status(ctx, message.ChatID)
	if err != nil {
		return "", fmt.Errorf("get game status failed: %w", err)
	}

	return h.msgProvider.Get(
		santamessages.StatusOpen,
		messageprovider.P("budget", game.Budget()),
		messageprovider.P("count", count),
	), nil
}

func (h *GameCommandHandler) senderName(message mqmsg.InboundMessage) string {
	if message.Sender != nil && strings.TrimSpace(*message.Sender) != "" {
		return strings.TrimSpace(*message.Sender)
	}
	return h.msgProvider.Get(santamessages.UserAnonymous)
}
