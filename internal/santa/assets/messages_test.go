package assets

import (
	"strings"
	"testing"

	"github.com/park285/secret-santa-bot-go/internal/common/messageprovider"
	"github.com/park285/secret-santa-bot-go/internal/common/textutil"
	santaconfig "github.com/park285/secret-santa-bot-go/internal/santa/config"
	santamessages "github.com/park285/secret-santa-bot-go/internal/santa/messages"
)

func TestGameMessagesYAML_Parses(t *testing.T) {
	provider, err := messageprovider.NewFromYAML(GameMessagesYAML)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	keys := []string{
		santamessages.StartSuccess,
		santamessages.StartUsage,
		santamessages.JoinSuccess,
		santamessages.JoinAlready,
		santamessages.StopWaiting,
		santamessages.StopSuccess,
		santamessages.StopNonePaired,
		santamessages.StopOddCount,
		santamessages.StopAssignDM,
		santamessages.StopDMPartial,
		santamessages.ResetSuccess,
		santamessages.StatusOpen,
		santamessages.HelpMessage,
		santamessages.LockRequestInProgress,
		santamessages.ErrorGameNotFound,
		santamessages.ErrorGameAlreadyOpen,
		santamessages.ErrorNoParticipants,
		santamessages.ErrorUnauthorized,
		santamessages.ErrorUnknownCommand,
		santamessages.ErrorInternal,
		santamessages.ErrorAccessDenied,
		santamessages.ErrorUserBlocked,
		santamessages.ErrorChatBlocked,
		santamessages.UserAnonymous,
	}
	for _, key := range keys {
		if got := provider.Get(key); got == key {
			t.Errorf("expected %s to exist", key)
		}
	}
}

func TestAssignDM_SubstitutesParams(t *testing.T) {
	provider, err := messageprovider.NewFromYAML(GameMessagesYAML)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	msg := provider.Get(santamessages.StopAssignDM,
		messageprovider.P("receiver", "Kim"),
		messageprovider.P("budget", "30000 KRW"),
	)
	if !strings.Contains(msg, "Kim") || !strings.Contains(msg, "30000 KRW") {
		t.Errorf("expected substituted params, got %q", msg)
	}
	if strings.Contains(msg, "{receiver}") || strings.Contains(msg, "{budget}") {
		t.Errorf("expected no leftover placeholders, got %q", msg)
	}
}

func TestHelpMessage_NotChunked(t *testing.T) {
	provider, err := messageprovider.NewFromYAML(GameMessagesYAML)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	help := provider.Get(santamessages.HelpMessage)
	chunks := textutil.ChunkByLines(help, santaconfig.KakaoMessageMaxLength)
	if len(chunks) != 1 {
		t.Fatalf("expected help.message to be 1 chunk, got %d", len(chunks))
	}
}
