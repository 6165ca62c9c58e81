package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/park285/secret-santa-bot-go/internal/common/cache"
	"github.com/park285/secret-santa-bot-go/internal/common/health"
	commonhttputil "github.com/park285/secret-santa-bot-go/internal/common/httputil"
	santaerrors "github.com/park285/secret-santa-bot-go/internal/santa/errors"
	santasvc "github.com/park285/secret-santa-bot-go/internal/santa/service"
)

const (
	apiErrorGameNotFound   = "GAME_NOT_FOUND"
	apiErrorInvalidRequest = "INVALID_REQUEST"
	apiErrorUnauthorized   = "UNAUTHORIZED"
	apiErrorInternalError  = "INTERNAL_ERROR"
)

const (
	statusCacheTTL        = 5 * time.Second
	statusCacheMaxEntries = 512
)

// Register 는 동작을 수행한다.
func Register(mux *http.ServeMux, gameService *santasvc.GameService, logger *slog.Logger) {
	statusCache := cache.NewTTLLRUCache(statusCacheMaxEntries, statusCacheTTL)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		_ = commonhttputil.WriteJSON(w, http.StatusOK, health.Get())
	})

	mux.HandleFunc("GET /api/game/status/{chatId}", func(w http.ResponseWriter, r *http.Request) {
		handleGetStatus(w, r, gameService, statusCache, logger)
	})
}

func handleGetStatus(
	w http.ResponseWriter,
	r *http.Request,
	gameService *santasvc.GameService,
	statusCache *cache.TTLLRUCache,
	logger *slog.Logger,
) {
	chatID := strings.TrimSpace(r.PathValue("chatId"))
	if chatID == "" {
		_ = commonhttputil.WriteErrorJSON(w, http.StatusBadRequest, apiErrorInvalidRequest, "Chat ID required")
		return
	}

	if cached, ok := statusCache.Get(chatID); ok {
		if resp, ok := cached.(GameStatusResponse); ok {
			_ = commonhttputil.WriteJSON(w, http.StatusOK, resp)
			return
		}
	}

	game, count, err := gameService.Status(r.Context(), chatID)
	if err != nil {
		respondGameError(w, err, "get_status_failed", logger)
		return
	}

	resp := toGameStatusResponse(game, count)
	statusCache.Set(chatID, resp)
	_ = commonhttputil.WriteJSON(w, http.StatusOK, resp)
}

func respondGameError(w http.ResponseWriter, err error, logKey string, logger *slog.Logger) {
	var (
		notFound     santaerrors.GameNotFoundError
		unauthorized santaerrors.UnauthorizedError
	)

	switch {
	case errors.As(err, &notFound):
		_ = commonhttputil.WriteErrorJSON(w, http.StatusNotFound, apiErrorGameNotFound, err.Error())
	case errors.As(err, &unauthorized):
		_ = commonhttputil.WriteErrorJSON(w, http.StatusForbidden, apiErrorUnauthorized, err.Error())
	default:
		logger.Warn(logKey, "err", err)
		_ = commonhttputil.WriteErrorJSON(w, http.StatusInternalServerError, apiErrorInternalError, "internal error")
	}
}
