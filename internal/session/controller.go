package session

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrInvalidTransition is returned when an operation is not allowed in the
// controller's current state.
var ErrInvalidTransition = errors.New("invalid transition")

// Phase is the step of the quiz flow the controller is in.
type Phase string

const (
	// PhasePresenting waits for answers to the current card.
	PhasePresenting Phase = "presenting"
	// PhaseRevealing shows the graded answers of the current card.
	PhaseRevealing Phase = "revealing"
	// PhaseFinished means every card has been shown.
	PhaseFinished Phase = "finished"
)

// State is the serializable state of a Controller.
// CardIndex is meaningless once Phase is PhaseFinished.
type State struct {
	Phase     Phase `json:"phase"`
	CardIndex int   `json:"card_index"`
}

func (s State) String() string {
	if s.Phase == PhaseFinished {
		return string(s.Phase)
	}
	return fmt.Sprintf("%s(%d)", s.Phase, s.CardIndex)
}

// SkippedCard is a card left out of the session because it could not be parsed.
type SkippedCard struct {
	Card Card
	Err  error
}

type noteDraft struct {
	hint        string
	explanation string
}

// Controller drives one session through presenting, revealing and finished.
// It is not safe for concurrent use.
type Controller struct {
	session *Session
	state   State
	sink    EffectSink
	logger  *slog.Logger

	lastResult *Result
	draft      *noteDraft
	skipped    []SkippedCard
	pending    []Effect
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for skipped cards.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController starts a session over cards. Effects are handed to sink,
// which may be nil when nobody listens.
func NewController(cards []Card, sink EffectSink, opts ...Option) *Controller {
	c := &Controller{
		session: NewSession(cards),
		sink:    sink,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.present(0)
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Current returns the card being presented or revealed.
func (c *Controller) Current() (Card, bool) {
	if c.state.Phase == PhaseFinished {
		return Card{}, false
	}
	return c.session.At(c.state.CardIndex), true
}

// LastResult returns the grading shown while revealing.
func (c *Controller) LastResult() (Result, bool) {
	if c.state.Phase != PhaseRevealing || c.lastResult == nil {
		return Result{}, false
	}
	return *c.lastResult, true
}

// Progress returns the 1-based position of the current card and the length
// of the card list, repetitions included.
func (c *Controller) Progress() (position, total int) {
	total = c.session.Len()
	if c.state.Phase == PhaseFinished {
		return total, total
	}
	return c.state.CardIndex + 1, total
}

// Cards returns the current card list.
func (c *Controller) Cards() []Card {
	return c.session.Cards()
}

// History returns the answers given so far, in order.
func (c *Controller) History() []Answer {
	return c.session.History()
}

// Skipped returns the cards that were left out because they are malformed.
func (c *Controller) Skipped() []SkippedCard {
	return append([]SkippedCard(nil), c.skipped...)
}

// Submit grades answers for the presented card. A wrong answer queues a
// repetition copy of the card at the end of the list.
func (c *Controller) Submit(answers []string) (Result, error) {
	if err := c.require("submit", PhasePresenting); err != nil {
		return Result{}, err
	}

	i := c.state.CardIndex
	card := c.session.At(i)
	result := Grade(card, answers)

	c.session.Record(Answer{
		FromID:     card.FromID,
		ToID:       card.ToID,
		FromText:   card.FromText,
		ToTokens:   card.ToTokens,
		Expected:   result.Expected,
		Given:      result.Given,
		Correct:    result.AllCorrect,
		Repetition: card.Repetition,
	})
	c.queue(RegisterAnswer{
		FromID:          card.FromID,
		ToID:            card.ToID,
		ExpectedAnswers: result.Expected,
		GivenAnswers:    result.Given,
		Correct:         result.AllCorrect,
		Repetition:      card.Repetition,
	})
	if !result.AllCorrect {
		c.session.Append(card.AsRepetition())
	}

	c.lastResult = &result
	c.state = State{Phase: PhaseRevealing, CardIndex: i}
	c.flush()
	return result, nil
}

// Next leaves the revealed card, sending a staged note that differs from the
// card's stored one.
func (c *Controller) Next() error {
	if err := c.require("next", PhaseRevealing); err != nil {
		return err
	}
	if c.draft != nil {
		c.commitNote(c.draft.hint, c.draft.explanation)
	}
	c.present(c.state.CardIndex + 1)
	c.flush()
	return nil
}

// ReportIssue reports the current card as defective. A repetition copy queued
// at the end of the list is removed so the card is not shown again.
func (c *Controller) ReportIssue(issueType IssueType, description string) error {
	if err := c.require("report issue", PhasePresenting, PhaseRevealing); err != nil {
		return err
	}

	i := c.state.CardIndex
	card := c.session.At(i)
	c.queue(ReportIssue{
		FromID:      card.FromID,
		ToID:        card.ToID,
		IssueType:   issueType,
		Description: description,
	})
	// The presented original stays in the list. Only a repetition copy goes.
	if last := c.session.LastIndexOf(card.Key()); last > i || (last == i && card.Repetition) {
		c.session.SpliceLast()
	}
	c.present(i + 1)
	c.flush()
	return nil
}

// EditNote stores a note for the revealed card and for its queued repetition
// copy, if any. Saving an unchanged note emits nothing.
func (c *Controller) EditNote(hint, explanation string) error {
	if err := c.require("edit note", PhaseRevealing); err != nil {
		return err
	}
	c.commitNote(hint, explanation)
	c.flush()
	return nil
}

// StageNote keeps a note draft for the revealed card. The draft is sent by
// Next when it differs from the stored note.
func (c *Controller) StageNote(hint, explanation string) error {
	if err := c.require("stage note", PhaseRevealing); err != nil {
		return err
	}
	c.draft = &noteDraft{hint: hint, explanation: explanation}
	return nil
}

func (c *Controller) commitNote(hint, explanation string) {
	c.draft = nil

	i := c.state.CardIndex
	card := c.session.At(i)
	if card.Hint == hint && card.Explanation == explanation {
		return
	}

	c.queue(TakeNote{
		FromID:      card.FromID,
		ToID:        card.ToID,
		Hint:        hint,
		Explanation: explanation,
	})
	c.session.Replace(i, card.WithNote(hint, explanation))
	if last := c.session.LastIndexOf(card.Key()); last > i {
		repeated := c.session.At(last).WithNote(hint, explanation).AsRepetition()
		c.session.Replace(last, repeated)
	}
}

// present moves to the first usable card at or after index i.
func (c *Controller) present(i int) {
	c.lastResult = nil
	c.draft = nil
	for ; i < c.session.Len(); i++ {
		card := c.session.At(i)
		if err := Validate(card); err != nil {
			c.logger.Warn("skipping malformed card",
				"from_id", card.FromID,
				"to_id", card.ToID,
				"error", err,
			)
			c.skipped = append(c.skipped, SkippedCard{Card: card, Err: err})
			continue
		}
		c.session.MoveTo(i)
		c.state = State{Phase: PhasePresenting, CardIndex: i}
		return
	}
	c.session.MoveTo(c.session.Len())
	c.state = State{Phase: PhaseFinished}
}

func (c *Controller) require(op string, phases ...Phase) error {
	for _, p := range phases {
		if c.state.Phase == p {
			return nil
		}
	}
	return fmt.Errorf("%s in state %s: %w", op, c.state, ErrInvalidTransition)
}

func (c *Controller) queue(effect Effect) {
	c.pending = append(c.pending, effect)
}

// flush hands the effects of a committed transition to the sink.
func (c *Controller) flush() {
	effects := c.pending
	c.pending = nil
	if c.sink == nil {
		return
	}
	for _, effect := range effects {
		c.sink.Emit(effect)
	}
}
