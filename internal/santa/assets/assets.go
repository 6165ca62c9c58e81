package assets

import _ "embed" // 에셋 임베드용

// GameMessagesYAML: 시크릿 산타 게임 메시지 YAML입니다.
//
//go:embed messages/game-messages.yml
var GameMessagesYAML string
