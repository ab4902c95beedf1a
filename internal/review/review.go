// Package review renders the answers of a finished session.
package review

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/at-ishikawa/clozequiz/internal/cloze"
	"github.com/at-ishikawa/clozequiz/internal/session"
)

// Row is one answered card as shown in the review.
type Row struct {
	Number     int
	Sentence   string
	Expected   string
	Given      string
	Correct    bool
	Repetition bool
}

// Result returns the mark shown in the result column.
func (r Row) Result() string {
	mark := "wrong"
	if r.Correct {
		mark = "ok"
	}
	if r.Repetition {
		mark += " (again)"
	}
	return mark
}

// Rows converts answers in the order they were given.
func Rows(history []session.Answer) []Row {
	rows := make([]Row, 0, len(history))
	for i, answer := range history {
		rows = append(rows, Row{
			Number:     i + 1,
			Sentence:   Reveal(answer.ToTokens),
			Expected:   strings.Join(answer.Expected, ", "),
			Given:      strings.Join(answer.Given, ", "),
			Correct:    answer.Correct,
			Repetition: answer.Repetition,
		})
	}
	return rows
}

// Reveal joins tokens into the target sentence with every blank filled in.
func Reveal(tokens []string) string {
	var sb strings.Builder
	for _, token := range tokens {
		if answer, err := cloze.AnswerOf(token); err == nil {
			sb.WriteString(answer)
			continue
		}
		sb.WriteString(token)
	}
	return sb.String()
}

// Score returns the number of correct first attempts and of first attempts.
func Score(history []session.Answer) (correct, total int) {
	for _, answer := range history {
		if answer.Repetition {
			continue
		}
		total++
		if answer.Correct {
			correct++
		}
	}
	return correct, total
}

var headers = [...]string{"#", "Sentence", "Expected", "Given", "Result"}

func cells(r Row) [len(headers)]string {
	return [len(headers)]string{strconv.Itoa(r.Number), r.Sentence, r.Expected, r.Given, r.Result()}
}

// sentenceColumn is shrunk first when the table is too wide.
const sentenceColumn = 1

// Table renders rows as a plain-text table aligned by display width, so
// wide characters line up. A positive maxWidth truncates the sentence column
// by the overflow, down to the width of its header.
func Table(rows []Row, maxWidth int) string {
	var widths [len(headers)]int
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i, c := range cells(r) {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	if maxWidth > 0 {
		lineWidth := 3 * (len(headers) - 1)
		for _, w := range widths {
			lineWidth += w
		}
		if over := lineWidth - maxWidth; over > 0 {
			widths[sentenceColumn] = max(widths[sentenceColumn]-over, runewidth.StringWidth(headers[sentenceColumn]))
		}
	}

	var sb strings.Builder
	writeLine := func(values [len(headers)]string) {
		for i, v := range values {
			if i > 0 {
				sb.WriteString(" | ")
			}
			v = runewidth.Truncate(v, widths[i], "...")
			if i == len(values)-1 {
				sb.WriteString(v)
				continue
			}
			sb.WriteString(runewidth.FillRight(v, widths[i]))
		}
		sb.WriteString("\n")
	}

	writeLine(headers)
	var rule [len(headers)]string
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	writeLine(rule)
	for _, r := range rows {
		writeLine(cells(r))
	}
	return sb.String()
}

// Markdown renders the review as a Markdown document with a title, a score
// line and a table.
func Markdown(title string, history []session.Answer) string {
	correct, total := Score(history)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "Score: %d / %d\n\n", correct, total)
	sb.WriteString("| " + strings.Join(headers[:], " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, r := range Rows(history) {
		values := cells(r)
		for i, v := range values {
			values[i] = escapeCell(v)
		}
		sb.WriteString("| " + strings.Join(values[:], " | ") + " |\n")
	}
	return sb.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
