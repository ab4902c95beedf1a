// Package apiv1 defines the quiz service messages and its connect bindings.
package apiv1

// AccountHeader carries the account a request acts for. Requests without it
// act for the anonymous account.
const AccountHeader = "X-Account-Id"

// AnonymousAccountID is used when no account is given.
const AnonymousAccountID int64 = 1

type Language struct {
	ISO693_3 string `json:"iso693_3"`
	Name     string `json:"name"`
}

type ListLanguagesRequest struct{}

type ListLanguagesResponse struct {
	Languages []Language `json:"languages"`
}

type DrawCardsRequest struct {
	TargetLang  string   `json:"target_lang" validate:"required,len=3"`
	SourceLangs []string `json:"source_langs" validate:"required,min=1,max=10,dive,len=3"`
}

// Card is a drawn sentence pair.
type Card struct {
	FromID           int64    `json:"from_id"`
	ToID             int64    `json:"to_id"`
	FromLanguage     string   `json:"from_language"`
	ToLanguage       string   `json:"to_language"`
	FromLanguageCode string   `json:"from_language_code"`
	ToLanguageCode   string   `json:"to_language_code"`
	FromText         string   `json:"from_text"`
	ToText           string   `json:"to_text"`
	ToTokens         []string `json:"to_tokens"`
	Hint             string   `json:"hint"`
	Explanation      string   `json:"explanation"`
}

type DrawCardsResponse struct {
	Cards []Card `json:"cards"`
}

type RegisterAnswerRequest struct {
	FromID          int64    `json:"from_id" validate:"required"`
	ToID            int64    `json:"to_id" validate:"required"`
	ExpectedAnswers []string `json:"expected_answers" validate:"max=100"`
	GivenAnswers    []string `json:"given_answers" validate:"max=100"`
	Correct         bool     `json:"correct"`
	Repetition      bool     `json:"repetition"`
}

type RegisterAnswerResponse struct{}

type ReportIssueRequest struct {
	FromID      int64  `json:"from_id" validate:"required"`
	ToID        int64  `json:"to_id" validate:"required"`
	IssueType   string `json:"issue_type" validate:"oneof=WRONG MULTI OTHER"`
	Description string `json:"description" validate:"max=2000"`
}

type ReportIssueResponse struct{}

type TakeNoteRequest struct {
	FromID      int64  `json:"from_id" validate:"required"`
	ToID        int64  `json:"to_id" validate:"required"`
	Hint        string `json:"hint" validate:"max=1000"`
	Explanation string `json:"explanation" validate:"max=4000"`
}

type TakeNoteResponse struct{}
