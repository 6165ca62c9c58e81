package httpapi

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	commonhttputil "github.com/park285/secret-santa-bot-go/internal/common/httputil"
	"github.com/park285/secret-santa-bot-go/internal/santa/repository"
	santasvc "github.com/park285/secret-santa-bot-go/internal/santa/service"
)

const adminMaxBodyBytes = 1 << 20

// AdminDeps: Admin API 핸들러 의존성
type AdminDeps struct {
	GameService *santasvc.GameService
	Repo        *repository.Repository
	// APIKey 가 설정되면 X-API-Key 헤더 검사를 수행한다.
	APIKey string
	Logger *slog.Logger
}

// RegisterAdminRoutes: Admin API 라우트 등록
// 운영 엔드포인트로, API 키 검사 후 채팅 명령과 동일한 관리자 검증을 거친다.
func RegisterAdminRoutes(mux *http.ServeMux, deps AdminDeps) {
	mux.HandleFunc("POST /admin/game/reset", requireAPIKey(deps, func(w http.ResponseWriter, r *http.Request) {
		handleAdminReset(w, r, deps)
	}))
	mux.HandleFunc("GET /admin/game/{chatId}", requireAPIKey(deps, func(w http.ResponseWriter, r *http.Request) {
		handleAdminGameDetail(w, r, deps)
	}))
}

func requireAPIKey(deps AdminDeps, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.APIKey != "" {
			given := r.Header.Get(commonhttputil.HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(given), []byte(deps.APIKey)) != 1 {
				deps.Logger.Warn("admin_api_key_rejected", "path", r.URL.Path)
				_ = commonhttputil.WriteErrorJSON(w, http.StatusUnauthorized, apiErrorUnauthorized, "invalid api key")
				return
			}
		}
		next(w, r)
	}
}

func handleAdminReset(w http.ResponseWriter, r *http.Request, deps AdminDeps) {
	var req AdminResetRequest
	if err := commonhttputil.ReadJSON(r, &req, adminMaxBodyBytes); err != nil {
		_ = commonhttputil.WriteErrorJSON(w, http.StatusBadRequest, apiErrorInvalidRequest, err.Error())
		return
	}

	req.ChatID = strings.TrimSpace(req.ChatID)
	req.GameID = strings.TrimSpace(req.GameID)
	req.AdminUserID = strings.TrimSpace(req.AdminUserID)
	if req.AdminUserID == "" || (req.ChatID == "" && req.GameID == "") {
		_ = commonhttputil.WriteErrorJSON(w, http.StatusBadRequest, apiErrorInvalidRequest, "missing required fields")
		return
	}

	game, err := deps.GameService.ResetGame(r.Context(), req.ChatID, req.AdminUserID, req.GameID)
	if err != nil {
		respondGameError(w, err, "admin_reset_failed", deps.Logger)
		return
	}

	_ = commonhttputil.WriteJSON(w, http.StatusOK, AdminResetResponse{
		GameID:  game.ID,
		Message: "game reset",
	})
}

func handleAdminGameDetail(w http.ResponseWriter, r *http.Request, deps AdminDeps) {
	chatID := strings.TrimSpace(r.PathValue("chatId"))
	if chatID == "" {
		_ = commonhttputil.WriteErrorJSON(w, http.StatusBadRequest, apiErrorInvalidRequest, "Chat ID required")
		return
	}

	// 배정 내역은 닫힌 게임에 남으므로 상태와 무관하게 최근 게임을 조회한다.
	game, err := deps.Repo.GetLatestGameByChat(r.Context(), chatID)
	if err != nil {
		respondGameError(w, err, "admin_game_detail_failed", deps.Logger)
		return
	}

	participants, err := deps.Repo.ListParticipants(r.Context(), game.ID)
	if err != nil {
		respondGameError(w, err, "admin_game_detail_failed", deps.Logger)
		return
	}

	resp := GameDetailResponse{
		Game:         toGameStatusResponse(game, len(participants)),
		Participants: make([]ParticipantResponse, 0, len(participants)),
	}
	for _, p := range participants {
		resp.Participants = append(resp.Participants, ParticipantResponse{
			UserID:       p.UserID,
			Username:     p.Username,
			AssignedToID: p.AssignedToID,
		})
	}

	_ = commonhttputil.WriteJSON(w, http.StatusOK, resp)
}
