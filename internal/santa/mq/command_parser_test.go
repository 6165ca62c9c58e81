package mq

import (
	"testing"
)

func TestCommandParser_Parse(t *testing.T) {
	parser := NewCommandParser("/산타")

	tests := []struct {
		name    string
		input   string
		want    *Command
		wantNil bool
	}{
		{name: "empty", input: "", wantNil: true},
		{name: "plain chat", input: "안녕하세요", wantNil: true},
		{name: "other prefix", input: "/스무고개 시작", wantNil: true},

		{name: "help bare", input: "/산타", want: &Command{Kind: CommandHelp}},
		{name: "help korean", input: "/산타 도움", want: &Command{Kind: CommandHelp}},
		{name: "help english", input: "/산타 help", want: &Command{Kind: CommandHelp}},

		{name: "start", input: "/산타 시작 USD 100", want: &Command{Kind: CommandStart, Currency: "USD", Amount: "100"}},
		{name: "start english", input: "/산타 start KRW 50000", want: &Command{Kind: CommandStart, Currency: "KRW", Amount: "50000"}},
		{name: "start missing amount", input: "/산타 시작 USD", want: &Command{Kind: CommandStart, HasInvalidInput: true}},
		{name: "start missing all", input: "/산타 시작", want: &Command{Kind: CommandStart, HasInvalidInput: true}},

		{name: "join korean", input: "/산타 참여", want: &Command{Kind: CommandJoin}},
		{name: "join alt korean", input: "/산타 참가", want: &Command{Kind: CommandJoin}},
		{name: "join english", input: "/산타 join", want: &Command{Kind: CommandJoin}},

		{name: "stop korean", input: "/산타 종료", want: &Command{Kind: CommandStop}},
		{name: "stop alt korean", input: "/산타 마감", want: &Command{Kind: CommandStop}},
		{name: "stop english", input: "/산타 stop", want: &Command{Kind: CommandStop}},
		{name: "stop with id", input: "/산타 종료 room1:abcd", want: &Command{Kind: CommandStop, GameID: "room1:abcd"}},

		{name: "reset", input: "/산타 초기화", want: &Command{Kind: CommandReset}},
		{name: "reset with id", input: "/산타 리셋 room1:abcd", want: &Command{Kind: CommandReset, GameID: "room1:abcd"}},
		{name: "reset english", input: "/산타 reset", want: &Command{Kind: CommandReset}},

		{name: "status korean", input: "/산타 현황", want: &Command{Kind: CommandStatus}},
		{name: "status english", input: "/산타 status", want: &Command{Kind: CommandStatus}},

		{name: "unknown subcommand", input: "/산타 뭐지", want: &Command{Kind: CommandUnknown}},
		{name: "start with trailing garbage", input: "/산타 시작 USD 100 extra", want: &Command{Kind: CommandUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.input)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %+v, got nil", tt.want)
			}
			if *got != *tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCommandParser_CustomPrefix(t *testing.T) {
	parser := NewCommandParser("/santa")

	if cmd := parser.Parse("/santa join"); cmd == nil || cmd.Kind != CommandJoin {
		t.Fatalf("expected join with custom prefix, got %+v", cmd)
	}
	if cmd := parser.Parse("/산타 참여"); cmd != nil {
		t.Fatalf("expected default prefix to be ignored, got %+v", cmd)
	}
}

func TestCommand_RequiresLock(t *testing.T) {
	locked := []CommandKind{CommandStart, CommandJoin, CommandStop, CommandReset}
	for _, kind := range locked {
		if !(Command{Kind: kind}).RequiresLock() {
			t.Errorf("expected %v to require lock", kind)
		}
	}

	unlocked := []CommandKind{CommandStatus, CommandHelp, CommandUnknown}
	for _, kind := range unlocked {
		if (Command{Kind: kind}).RequiresLock() {
			t.Errorf("expected %v to not require lock", kind)
		}
	}
}
