// Package cloze parses cloze tokens and grades answers given for them.
package cloze

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// tokenPattern matches {{c<N>:<hint>:<answer>}} over the whole token. The
// hint ends at the first colon, so the answer may contain colons.
var tokenPattern = regexp.MustCompile(`^\{\{c([0-9]+):([^{}:]*):([^{}]+)\}\}$`)

// claimPrefix is how every blank begins. A token starting with it that does not
// match tokenPattern is corrupt rather than literal text.
const claimPrefix = "{{c"

// Token is the parsed form of a cloze token.
type Token struct {
	BlankIndex int
	Hint       string
	Answer     string
}

// MalformedClozeError is returned when a token is expected to be a blank but
// does not have the {{c<N>:<hint>:<answer>}} shape.
type MalformedClozeError struct {
	Token string
}

func (e *MalformedClozeError) Error() string {
	return fmt.Sprintf("malformed cloze token %q", e.Token)
}

// IsCloze reports whether token is a well-formed cloze token.
func IsCloze(token string) bool {
	return tokenPattern.MatchString(token)
}

// ClaimsCloze reports whether token presents itself as a blank, well-formed or not.
func ClaimsCloze(token string) bool {
	return strings.HasPrefix(token, claimPrefix)
}

// Parse splits a cloze token into its parts.
func Parse(token string) (Token, error) {
	m := tokenPattern.FindStringSubmatch(token)
	if m == nil {
		return Token{}, &MalformedClozeError{Token: token}
	}
	index, err := strconv.Atoi(m[1])
	if err != nil {
		return Token{}, &MalformedClozeError{Token: token}
	}
	return Token{
		BlankIndex: index,
		Hint:       m[2],
		Answer:     m[3],
	}, nil
}

// AnswerOf returns the expected answer of a cloze token.
func AnswerOf(token string) (string, error) {
	t, err := Parse(token)
	if err != nil {
		return "", err
	}
	return t.Answer, nil
}

// HintOf returns the hint of a cloze token, which may be empty.
func HintOf(token string) (string, error) {
	t, err := Parse(token)
	if err != nil {
		return "", err
	}
	return t.Hint, nil
}

// BlankIndex returns the blank number encoded in a cloze token.
func BlankIndex(token string) (int, error) {
	t, err := Parse(token)
	if err != nil {
		return 0, err
	}
	return t.BlankIndex, nil
}
