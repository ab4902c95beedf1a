package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/clozequiz/internal/corpus"
)

func newCorpusCommand() *cobra.Command {
	corpusCommand := &cobra.Command{
		Use:   "corpus",
		Short: "Manage the sentence corpus cards are drawn from",
	}

	corpusCommand.AddCommand(newCorpusImportCommand())
	corpusCommand.AddCommand(newCorpusLanguagesCommand())

	return corpusCommand
}

func newCorpusImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <cards.jsonl>",
		Short: "Import cards from a JSON Lines file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open(%s) > %w", args[0], err)
			}
			defer func() {
				_ = file.Close()
			}()
			records, err := corpus.ReadCardFile(file)
			if err != nil {
				return fmt.Errorf("corpus.ReadCardFile(%s) > %w", args[0], err)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			importer := corpus.NewImporter(corpus.NewDBCorpusRepository(db), cfg.Corpus.BatchSize, slog.Default())
			result, err := importer.Import(cmd.Context(), records)
			if err != nil {
				return fmt.Errorf("importer.Import() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cards, skipped %d\n", result.Imported, result.Skipped)
			return nil
		},
	}
}

func newCorpusLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages <languages.yml>",
		Short: "Register languages from a YAML map of ISO 639-3 codes to names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open(%s) > %w", args[0], err)
			}
			defer func() {
				_ = file.Close()
			}()
			languages, err := corpus.ReadLanguageFile(file)
			if err != nil {
				return fmt.Errorf("corpus.ReadLanguageFile(%s) > %w", args[0], err)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := corpus.NewDBCorpusRepository(db).UpsertLanguages(cmd.Context(), languages); err != nil {
				return fmt.Errorf("UpsertLanguages() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %d languages\n", len(languages))
			return nil
		},
	}
}
