package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/at-ishikawa/clozequiz/internal/review"
	"github.com/at-ishikawa/clozequiz/internal/session"
)

var errEnd = errors.New("end")

// StudyCLI runs a cloze session on a terminal.
type StudyCLI struct {
	loader       *session.Loader
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	reviewPath   string
	width        int

	bold    *color.Color
	italic  *color.Color
	correct *color.Color
	wrong   *color.Color
}

// StudyOption configures a StudyCLI.
type StudyOption func(*StudyCLI)

// WithReviewPath writes the review to a Markdown file and a PDF next to it.
func WithReviewPath(path string) StudyOption {
	return func(cli *StudyCLI) {
		cli.reviewPath = path
	}
}

// WithWidth sets the width of the review table. Zero disables truncation.
func WithWidth(width int) StudyOption {
	return func(cli *StudyCLI) {
		cli.width = width
	}
}

// NewStudyCLI creates a study CLI reading from stdin and writing to stdout.
func NewStudyCLI(loader *session.Loader, stdin io.Reader, stdout io.Writer, opts ...StudyOption) *StudyCLI {
	cli := &StudyCLI{
		loader:       loader,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		width:        TerminalWidth(stdout),
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		correct:      color.New(color.FgGreen),
		wrong:        color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// TerminalWidth returns the width of w when it is a terminal, or 0.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// Run draws cards for pair and quizzes until every card is done, the input
// ends or ctx is canceled. The review is printed in every case.
func (cli *StudyCLI) Run(ctx context.Context, pair session.LanguagePair) error {
	controller, err := cli.loader.Load(ctx, pair)
	if err != nil {
		return fmt.Errorf("loader.Load() > %w", err)
	}
	if controller.State().Phase == session.PhaseFinished && len(controller.Skipped()) == 0 {
		fmt.Fprintln(cli.stdoutWriter, "No cards to study for this selection.")
		return nil
	}
	fmt.Fprintln(cli.stdoutWriter, cli.italic.Sprint(commandHelp))

	for {
		if ctx.Err() != nil {
			break
		}
		err := cli.step(controller)
		if errors.Is(err, errEnd) {
			break
		}
		if err != nil {
			return err
		}
	}
	return cli.printReview(controller)
}

func (cli *StudyCLI) readLine(prompt string) (string, error) {
	fmt.Fprint(cli.stdoutWriter, prompt)
	line, err := cli.stdinReader.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(cli.stdoutWriter)
			return "", errEnd
		}
		return "", fmt.Errorf("stdinReader.ReadString() > %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (cli *StudyCLI) printReview(controller *session.Controller) error {
	history := controller.History()
	for _, skipped := range controller.Skipped() {
		fmt.Fprintf(cli.stdoutWriter, "Skipped card %d-%d: %v\n", skipped.Card.FromID, skipped.Card.ToID, skipped.Err)
	}
	if len(history) == 0 {
		return nil
	}

	correct, total := review.Score(history)
	fmt.Fprintln(cli.stdoutWriter)
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, "Review")
	fmt.Fprint(cli.stdoutWriter, review.Table(review.Rows(history), cli.width))
	fmt.Fprintf(cli.stdoutWriter, "Score: %d / %d\n", correct, total)

	if cli.reviewPath == "" {
		return nil
	}
	pdfPath, err := review.Export(cli.reviewPath, "Review", history)
	if err != nil {
		return fmt.Errorf("review.Export() > %w", err)
	}
	fmt.Fprintf(cli.stdoutWriter, "Review written to %s and %s\n", cli.reviewPath, pdfPath)
	return nil
}
