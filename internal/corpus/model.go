// Package corpus holds the sentence pairs cards are drawn from.
package corpus

import (
	"github.com/at-ishikawa/clozequiz/internal/database"
)

// Language is an ISO 639-3 language.
type Language struct {
	ID       int64  `db:"id" json:"-"`
	ISO693_3 string `db:"iso693_3" json:"iso693_3"`
	Name     string `db:"name" json:"name"`
}

// CardRecord is one line of a card file: a sentence pair with the target
// sentence already tokenized and blanked.
type CardRecord struct {
	FromLang     string   `json:"from_lang"`
	ToLang       string   `json:"to_lang"`
	FromID       int64    `json:"from_id"`
	ToID         int64    `json:"to_id"`
	FromText     string   `json:"from_txt"`
	OriginalText string   `json:"original_txt"`
	Tokens       []string `json:"resulting_tokens"`
}

// DrawnCard is a card joined with its languages and the account's note.
type DrawnCard struct {
	FromLanguage     string              `db:"from_language" json:"from_language"`
	ToLanguage       string              `db:"to_language" json:"to_language"`
	FromLanguageCode string              `db:"from_language_code" json:"from_language_code"`
	ToLanguageCode   string              `db:"to_language_code" json:"to_language_code"`
	FromID           int64               `db:"from_id" json:"from_id"`
	ToID             int64               `db:"to_id" json:"to_id"`
	FromText         string              `db:"from_text" json:"from_text"`
	ToTokens         database.StringList `db:"to_tokens" json:"to_tokens"`
	ToText           string              `db:"to_text" json:"to_text"`
	Hint             string              `db:"hint" json:"hint"`
	Explanation      string              `db:"explanation" json:"explanation"`
}

// DrawQuery selects cards for an account and language pair.
type DrawQuery struct {
	AccountID   int64
	TargetLang  string
	SourceLangs []string
	Limit       int
}
