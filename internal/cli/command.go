package cli

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/clozequiz/internal/session"
)

type commandKind int

const (
	commandNext commandKind = iota
	commandNote
	commandDraft
	commandReport
	commandQuit
)

type command struct {
	kind        commandKind
	hint        string
	explanation string
	issueType   session.IssueType
	description string
}

const commandHelp = "[enter] next, :note <hint> | <explanation>, :draft <hint> | <explanation>, :report <WRONG|MULTI|OTHER> <description>, :quit"

// parseCommand reads a line typed after the answers were revealed.
func parseCommand(line string) (command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return command{kind: commandNext}, nil
	}

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	switch name {
	case ":note":
		return parseNote(commandNote, rest), nil
	case ":draft":
		return parseNote(commandDraft, rest), nil
	case ":report":
		return parseReport(rest)
	case ":quit", ":q":
		return command{kind: commandQuit}, nil
	}
	return command{}, fmt.Errorf("unknown command %q, use %s", line, commandHelp)
}

// parseNote splits "<hint> | <explanation>". A draft is saved only when the
// session moves on to the next card.
func parseNote(kind commandKind, args string) command {
	hint, explanation, _ := strings.Cut(args, "|")
	return command{
		kind:        kind,
		hint:        strings.TrimSpace(hint),
		explanation: strings.TrimSpace(explanation),
	}
}

func parseReport(args string) (command, error) {
	typeName, description, _ := strings.Cut(args, " ")
	if typeName == "" {
		return command{}, fmt.Errorf("missing issue type, use :report <WRONG|MULTI|OTHER> <description>")
	}
	issueType, err := session.ParseIssueType(strings.ToUpper(typeName))
	if err != nil {
		return command{}, err
	}
	return command{
		kind:        commandReport,
		issueType:   issueType,
		description: strings.TrimSpace(description),
	}, nil
}
