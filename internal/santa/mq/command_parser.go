package mq

import (
	"regexp"
	"strings"
)

// CommandParser 는 타입이다.
type CommandParser struct {
	prefix        string
	escapedPrefix string

	helpRe   *regexp.Regexp
	startRe  *regexp.Regexp
	joinRe   *regexp.Regexp
	stopRe   *regexp.Regexp
	resetRe  *regexp.Regexp
	statusRe *regexp.Regexp
}

// NewCommandParser 는 동작을 수행한다.
func NewCommandParser(prefix string) *CommandParser {
	p := strings.TrimSpace(prefix)
	if p == "" {
		p = "/산타"
	}
	escapedPrefix := regexp.QuoteMeta(p)
	parser := &CommandParser{
		prefix:        p,
		escapedPrefix: escapedPrefix,
	}

	parser.helpRe = regexp.MustCompile("^" + escapedPrefix + `\s*(?:도움|help)?$`)
	parser.startRe = regexp.MustCompile("^" + escapedPrefix + `\s*(?:시작|start)(?:\s+(\S+))?(?:\s+(\S+))?$`)
	parser.joinRe = regexp.MustCompile("^" + escapedPrefix + `\s*(?:참여|참가|join)$`)
	parser.stopRe = regexp.MustCompile("^" + escapedPrefix + `\s*(?:종료|마감|stop)(?:\s+(\S+))?$`)
	parser.resetRe = regexp.MustCompile("^" + escapedPrefix + `\s*(?:초기화|리셋|reset)(?:\s+(\S+))?$`)
	parser.statusRe = regexp.MustCompile("^" + escapedPrefix + `\s*(?:현황|status)$`)

	return parser
}

// Parse 는 동작을 수행한다.
func (p *CommandParser) Parse(message string) *Command {
	text := strings.TrimSpace(message)
	if text == "" {
		return nil
	}
	if !strings.HasPrefix(text, p.prefix) {
		return nil
	}

	if cmd := p.parseHelp(text); cmd != nil {
		return cmd
	}
	if cmd := p.parseStart(text); cmd != nil {
		return cmd
	}
	if cmd := p.parseJoin(text); cmd != nil {
		return cmd
	}
	if cmd := p.parseStop(text); cmd != nil {
		return cmd
	}
	if cmd := p.parseReset(text); cmd != nil {
		return cmd
	}
	if cmd := p.parseStatus(text); cmd != nil {
		return cmd
	}

	return &Command{Kind: CommandUnknown}
}

func (p *CommandParser) parseHelp(text string) *Command {
	if p.helpRe.MatchString(text) {
		return &Command{Kind: CommandHelp}
	}
	return nil
}

func (p *CommandParser) parseStart(text string) *Command {
	m := p.startRe.FindStringSubmatch(text)
	if len(m) == 0 {
		return nil
	}

	currency := ""
	amount := ""
	if len(m) >= 2 {
		currency = strings.TrimSpace(m[1])
	}
	if len(m) >= 3 {
		amount = strings.TrimSpace(m[2])
	}

	if currency == "" || amount == "" {
		return &Command{Kind: CommandStart, HasInvalidInput: true}
	}
	return &Command{Kind: CommandStart, Currency: currency, Amount: amount}
}

func (p *CommandParser) parseJoin(text string) *Command {
	if p.joinRe.MatchString(text) {
		return &Command{Kind: CommandJoin}
	}
	return nil
}

func (p *CommandParser) parseStop(text string) *Command {
	m := p.stopRe.FindStringSubmatch(text)
	if len(m) == 0 {
		return nil
	}

	gameID := ""
	if len(m) >= 2 {
		gameID = strings.TrimSpace(m[1])
	}
	return &Command{Kind: CommandStop, GameID: gameID}
}

func (p *CommandParser) parseReset(text string) *Command {
	m := p.resetRe.FindStringSubmatch(text)
	if len(m) == 0 {
		return nil
	}

	gameID := ""
	if len(m) >= 2 {
		gameID = strings.TrimSpace(m[1])
	}
	return &Command{Kind: CommandReset, GameID: gameID}
}

func (p *CommandParser) parseStatus(text string) *Command {
	if p.statusRe.MatchString(text) {
		return &Command{Kind: CommandStatus}
	}
	return nil
}
