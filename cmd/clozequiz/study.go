package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/clozequiz/internal/backend"
	"github.com/at-ishikawa/clozequiz/internal/bootstrap"
	"github.com/at-ishikawa/clozequiz/internal/cli"
	"github.com/at-ishikawa/clozequiz/internal/session"
)

// languageCode is an ISO 639-3 code given on the command line.
type languageCode string

var _ pflag.Value = (*languageCode)(nil)

func (c *languageCode) Set(val string) error {
	code, err := parseLanguageCode(val)
	if err != nil {
		return err
	}
	*c = languageCode(code)
	return nil
}

func (c *languageCode) String() string {
	return string(*c)
}

func (c *languageCode) Type() string {
	return "code"
}

func parseLanguageCode(val string) (string, error) {
	code := strings.ToLower(strings.TrimSpace(val))
	if len(code) != 3 {
		return "", fmt.Errorf("not an ISO 639-3 code: %q", val)
	}
	return code, nil
}

func newStudyCommand() *cobra.Command {
	var (
		to         languageCode
		from       []string
		reviewPath string
	)
	command := &cobra.Command{
		Use:   "study",
		Short: "Study cloze cards for a language pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pair, err := newLanguagePair(to, from)
			if err != nil {
				return err
			}

			client := backend.NewClient(cfg.Backend)
			dispatcher := backend.NewDispatcher(context.WithoutCancel(cmd.Context()), client, cfg.Backend.QueueSize,
				backend.WithOnError(func(effect session.Effect, err error) {
					fmt.Fprintf(cmd.ErrOrStderr(), "Could not save %s: %v\n", effect.Kind(), err)
				}),
			)

			app := bootstrap.New()
			app.AddShutdownHook(func(ctx context.Context) error {
				return client.Close()
			})
			app.AddShutdownHook(func(ctx context.Context) error {
				dispatcher.Close()
				return nil
			})

			var opts []cli.StudyOption
			if reviewPath != "" {
				opts = append(opts, cli.WithReviewPath(reviewPath))
			}
			studyCLI := cli.NewStudyCLI(
				session.NewLoader(client, dispatcher),
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
				opts...,
			)
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				return studyCLI.Run(ctx, pair)
			})
		},
	}

	command.Flags().Var(&to, "to", "ISO 639-3 code of the language to answer in")
	command.Flags().StringSliceVar(&from, "from", nil, "ISO 639-3 codes of the languages to translate from")
	command.Flags().StringVar(&reviewPath, "review", "", "write the review to this Markdown file and a PDF next to it")
	_ = command.MarkFlagRequired("to")
	_ = command.MarkFlagRequired("from")

	return command
}

func newLanguagePair(to languageCode, from []string) (session.LanguagePair, error) {
	pair := session.LanguagePair{To: string(to)}
	for _, val := range from {
		code, err := parseLanguageCode(val)
		if err != nil {
			return session.LanguagePair{}, fmt.Errorf("--from: %w", err)
		}
		pair.From = append(pair.From, code)
	}
	return pair, nil
}
