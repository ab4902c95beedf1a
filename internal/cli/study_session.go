package cli

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/clozequiz/internal/cloze"
	"github.com/at-ishikawa/clozequiz/internal/review"
	"github.com/at-ishikawa/clozequiz/internal/session"
)

// step handles one state of the controller: it reads answers while a card is
// presented and a command while it is revealed.
func (cli *StudyCLI) step(controller *session.Controller) error {
	switch controller.State().Phase {
	case session.PhasePresenting:
		return cli.present(controller)
	case session.PhaseRevealing:
		return cli.reveal(controller)
	default:
		return errEnd
	}
}

func (cli *StudyCLI) present(controller *session.Controller) error {
	card, _ := controller.Current()
	position, total := controller.Progress()

	fmt.Fprintln(cli.stdoutWriter)
	heading := fmt.Sprintf("[%d/%d] %s → %s", position, total, card.FromLanguage, card.ToLanguage)
	if card.Repetition {
		heading += " (again)"
	}
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, heading)
	fmt.Fprintf(cli.stdoutWriter, "  %s\n", card.FromText)
	fmt.Fprintf(cli.stdoutWriter, "  %s\n", RenderBlanks(card.ToTokens))
	if card.Hint != "" {
		fmt.Fprintf(cli.stdoutWriter, "  Hint: %s\n", cli.italic.Sprint(card.Hint))
	}

	blanks := session.Blanks(card)
	answers := make([]string, 0, len(blanks))
	for i, blank := range blanks {
		line, err := cli.readLine(fmt.Sprintf("  %s> ", blankLabel(blank)))
		if err != nil {
			return err
		}
		if i == 0 && strings.HasPrefix(line, ":") {
			return cli.presentingCommand(controller, line)
		}
		answers = append(answers, line)
	}

	result, err := controller.Submit(answers)
	if err != nil {
		return fmt.Errorf("controller.Submit() > %w", err)
	}
	cli.printResult(card, result)
	return nil
}

// presentingCommand runs a command typed instead of the first answer. Only
// reports and quitting are allowed before the answers are graded.
func (cli *StudyCLI) presentingCommand(controller *session.Controller, line string) error {
	cmd, err := parseCommand(line)
	if err != nil {
		fmt.Fprintln(cli.stdoutWriter, err)
		return nil
	}
	switch cmd.kind {
	case commandReport:
		if err := controller.ReportIssue(cmd.issueType, cmd.description); err != nil {
			return fmt.Errorf("controller.ReportIssue() > %w", err)
		}
		fmt.Fprintln(cli.stdoutWriter, "Reported. The card will not be shown again.")
		return nil
	case commandQuit:
		return errEnd
	default:
		fmt.Fprintln(cli.stdoutWriter, "Answer the card first, or use :report or :quit.")
		return nil
	}
}

func (cli *StudyCLI) reveal(controller *session.Controller) error {
	line, err := cli.readLine("> ")
	if err != nil {
		return err
	}
	cmd, err := parseCommand(line)
	if err != nil {
		fmt.Fprintln(cli.stdoutWriter, err)
		return nil
	}

	switch cmd.kind {
	case commandNext:
		if err := controller.Next(); err != nil {
			return fmt.Errorf("controller.Next() > %w", err)
		}
	case commandNote:
		if err := controller.EditNote(cmd.hint, cmd.explanation); err != nil {
			return fmt.Errorf("controller.EditNote() > %w", err)
		}
		fmt.Fprintln(cli.stdoutWriter, "Note saved.")
	case commandDraft:
		if err := controller.StageNote(cmd.hint, cmd.explanation); err != nil {
			return fmt.Errorf("controller.StageNote() > %w", err)
		}
		fmt.Fprintln(cli.stdoutWriter, "Note will be saved on the next card.")
	case commandReport:
		if err := controller.ReportIssue(cmd.issueType, cmd.description); err != nil {
			return fmt.Errorf("controller.ReportIssue() > %w", err)
		}
		fmt.Fprintln(cli.stdoutWriter, "Reported. The card will not be shown again.")
	case commandQuit:
		return errEnd
	}
	return nil
}

func (cli *StudyCLI) printResult(card session.Card, result session.Result) {
	for i, expected := range result.Expected {
		given := result.Given[i]
		if cloze.IsCorrect(expected, given) {
			_, _ = cli.correct.Fprintf(cli.stdoutWriter, "  ✓ %s\n", given)
			continue
		}
		if given == "" {
			given = "(blank)"
		}
		_, _ = cli.wrong.Fprintf(cli.stdoutWriter, "  ✗ %s (answer: %s)\n", given, expected)
	}
	fmt.Fprintf(cli.stdoutWriter, "  %s\n", cli.bold.Sprint(review.Reveal(card.ToTokens)))
	if card.Explanation != "" {
		fmt.Fprintf(cli.stdoutWriter, "  Note: %s\n", card.Explanation)
	}
	if !result.AllCorrect {
		fmt.Fprintln(cli.stdoutWriter, "  This card will come back at the end.")
	}
}

// RenderBlanks joins tokens, showing each blank as [N:hint], or [N] when it
// has no hint.
func RenderBlanks(tokens []string) string {
	var sb strings.Builder
	for _, token := range tokens {
		if cloze.IsCloze(token) {
			sb.WriteString("[" + blankLabel(token) + "]")
			continue
		}
		sb.WriteString(token)
	}
	return sb.String()
}

func blankLabel(token string) string {
	t, err := cloze.Parse(token)
	if err != nil {
		return "?"
	}
	if t.Hint == "" {
		return fmt.Sprintf("%d", t.BlankIndex)
	}
	return fmt.Sprintf("%d:%s", t.BlankIndex, t.Hint)
}
