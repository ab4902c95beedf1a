// Package session runs a cloze quiz session: it grades cards, re-queues missed
// ones and tracks notes and issue reports for the cards being studied.
package session

import (
	"github.com/at-ishikawa/clozequiz/internal/cloze"
)

// LanguagePair is the selection a session is drawn for.
type LanguagePair struct {
	From []string
	To   string
}

// CardKey identifies the sentence pair behind a card.
type CardKey struct {
	FromID int64
	ToID   int64
}

// Card is one cloze exercise. Cards are values: editing a note or re-queueing
// a card produces a new Card.
type Card struct {
	FromID           int64
	ToID             int64
	FromLanguage     string
	ToLanguage       string
	FromLanguageCode string
	ToLanguageCode   string
	FromText         string
	ToText           string
	ToTokens         []string
	Repetition       bool
	Hint             string
	Explanation      string
}

// Key returns the identity of the card's sentence pair.
func (c Card) Key() CardKey {
	return CardKey{FromID: c.FromID, ToID: c.ToID}
}

// WithNote returns a copy of the card carrying the given note.
func (c Card) WithNote(hint, explanation string) Card {
	c.Hint = hint
	c.Explanation = explanation
	return c
}

// AsRepetition returns a copy of the card marked as a repetition.
func (c Card) AsRepetition() Card {
	c.Repetition = true
	return c
}

// Answer is the record of one graded card kept for the end-of-session review.
type Answer struct {
	FromID     int64
	ToID       int64
	FromText   string
	ToTokens   []string
	Expected   []string
	Given      []string
	Correct    bool
	Repetition bool
}

// Result is the outcome of grading one card.
type Result struct {
	Expected   []string
	Given      []string
	AllCorrect bool
}

// Blanks returns the cloze tokens of the card in sentence order.
func Blanks(card Card) []string {
	var blanks []string
	for _, token := range card.ToTokens {
		if cloze.IsCloze(token) {
			blanks = append(blanks, token)
		}
	}
	return blanks
}

// Grade compares submitted answers with the card's blanks.
// Given is aligned to the blanks: a missing answer counts as an empty string
// and answers beyond the last blank are ignored.
func Grade(card Card, submitted []string) Result {
	blanks := Blanks(card)
	result := Result{
		Expected:   make([]string, len(blanks)),
		Given:      make([]string, len(blanks)),
		AllCorrect: true,
	}
	for i, blank := range blanks {
		// Blanks only returns parseable tokens.
		expected, _ := cloze.AnswerOf(blank)
		var given string
		if i < len(submitted) {
			given = submitted[i]
		}
		result.Expected[i] = expected
		result.Given[i] = given
		if !cloze.IsCorrect(expected, given) {
			result.AllCorrect = false
		}
	}
	return result
}

// Validate returns a *cloze.MalformedClozeError for the first token that
// presents itself as a blank but cannot be parsed.
func Validate(card Card) error {
	for _, token := range card.ToTokens {
		if !cloze.ClaimsCloze(token) {
			continue
		}
		if _, err := cloze.Parse(token); err != nil {
			return err
		}
	}
	return nil
}
