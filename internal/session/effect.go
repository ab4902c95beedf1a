package session

import (
	"fmt"
)

//go:generate mockgen -source=effect.go -destination=../mocks/session/mock_effect.go -package=mock_session

// IssueType classifies a reported card.
type IssueType string

const (
	IssueTypeWrong IssueType = "WRONG"
	IssueTypeMulti IssueType = "MULTI"
	IssueTypeOther IssueType = "OTHER"
)

// ParseIssueType validates an issue type name.
func ParseIssueType(s string) (IssueType, error) {
	switch t := IssueType(s); t {
	case IssueTypeWrong, IssueTypeMulti, IssueTypeOther:
		return t, nil
	}
	return "", fmt.Errorf("unknown issue type %q, must be one of %s, %s, %s", s, IssueTypeWrong, IssueTypeMulti, IssueTypeOther)
}

// EffectKind names a request for the backend.
type EffectKind string

const (
	EffectRegisterAnswer EffectKind = "register_answer"
	EffectReportIssue    EffectKind = "report_issue"
	EffectTakeNote       EffectKind = "take_note"
)

// Effect is a backend request emitted by the Controller.
type Effect interface {
	Kind() EffectKind
}

// RegisterAnswer logs a graded card.
type RegisterAnswer struct {
	FromID          int64    `json:"from_id"`
	ToID            int64    `json:"to_id"`
	ExpectedAnswers []string `json:"expected_answers"`
	GivenAnswers    []string `json:"given_answers"`
	Correct         bool     `json:"correct"`
	Repetition      bool     `json:"repetition"`
}

// ReportIssue flags a card as defective.
type ReportIssue struct {
	FromID      int64     `json:"from_id"`
	ToID        int64     `json:"to_id"`
	IssueType   IssueType `json:"issue_type"`
	Description string    `json:"description"`
}

// TakeNote stores the learner's note for a sentence pair.
type TakeNote struct {
	FromID      int64  `json:"from_id"`
	ToID        int64  `json:"to_id"`
	Hint        string `json:"hint"`
	Explanation string `json:"explanation"`
}

func (RegisterAnswer) Kind() EffectKind { return EffectRegisterAnswer }
func (ReportIssue) Kind() EffectKind    { return EffectReportIssue }
func (TakeNote) Kind() EffectKind       { return EffectTakeNote }

// EffectSink receives effects once the transition that produced them has
// committed. Emit must not block on delivery.
type EffectSink interface {
	Emit(effect Effect)
}

// EffectQueue is an EffectSink that keeps effects in memory until drained.
type EffectQueue struct {
	effects []Effect
}

// Emit appends an effect to the queue.
func (q *EffectQueue) Emit(effect Effect) {
	q.effects = append(q.effects, effect)
}

// Drain returns the queued effects and empties the queue.
func (q *EffectQueue) Drain() []Effect {
	effects := q.effects
	q.effects = nil
	return effects
}

// Len returns the number of queued effects.
func (q *EffectQueue) Len() int {
	return len(q.effects)
}
