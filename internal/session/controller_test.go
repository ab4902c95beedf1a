package session

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewController(t *testing.T) {
	t.Run("empty list is finished", func(t *testing.T) {
		c := NewController(nil, nil)
		assert.Equal(t, State{Phase: PhaseFinished}, c.State())
		_, ok := c.Current()
		assert.False(t, ok)
	})

	t.Run("starts presenting the first card", func(t *testing.T) {
		c := NewController([]Card{newTestCard(1, 2, "{{c1::a}}")}, nil)
		assert.Equal(t, State{Phase: PhasePresenting, CardIndex: 0}, c.State())
		card, ok := c.Current()
		require.True(t, ok)
		assert.Equal(t, int64(1), card.FromID)
	})

	t.Run("does not share the caller's slice", func(t *testing.T) {
		cards := []Card{newTestCard(1, 2, "{{c1::a}}")}
		c := NewController(cards, nil)
		_, err := c.Submit([]string{"wrong"})
		require.NoError(t, err)
		assert.Len(t, cards, 1)
		assert.Len(t, c.Cards(), 2)
	})
}

func TestController_AllCorrect(t *testing.T) {
	queue := &EffectQueue{}
	c := NewController([]Card{
		newTestCard(1, 10, "{{c1::a}}"),
		newTestCard(2, 20, "{{c1::b}}", " ", "{{c2::c}}"),
	}, queue)

	result, err := c.Submit([]string{"a"})
	require.NoError(t, err)
	assert.True(t, result.AllCorrect)
	assert.Equal(t, State{Phase: PhaseRevealing, CardIndex: 0}, c.State())
	require.NoError(t, c.Next())
	assert.Equal(t, State{Phase: PhasePresenting, CardIndex: 1}, c.State())

	_, err = c.Submit([]string{"b", "c"})
	require.NoError(t, err)
	require.NoError(t, c.Next())

	assert.Equal(t, State{Phase: PhaseFinished}, c.State())
	assert.Len(t, c.Cards(), 2)
	history := c.History()
	require.Len(t, history, 2)
	assert.Equal(t, []string{"a"}, history[0].Given)
	assert.Equal(t, []string{"b", "c"}, history[1].Given)
	assert.True(t, history[1].Correct)

	assert.Equal(t, []Effect{
		RegisterAnswer{FromID: 1, ToID: 10, ExpectedAnswers: []string{"a"}, GivenAnswers: []string{"a"}, Correct: true},
		RegisterAnswer{FromID: 2, ToID: 20, ExpectedAnswers: []string{"b", "c"}, GivenAnswers: []string{"b", "c"}, Correct: true},
	}, queue.Drain())
}

func TestController_WrongAnswerRequeues(t *testing.T) {
	queue := &EffectQueue{}
	c := NewController([]Card{newTestCard(1, 10, "{{c1::a}}")}, queue)

	result, err := c.Submit([]string{"x"})
	require.NoError(t, err)
	assert.False(t, result.AllCorrect)

	cards := c.Cards()
	require.Len(t, cards, 2)
	assert.False(t, cards[0].Repetition)
	assert.True(t, cards[1].Repetition)
	assert.Equal(t, cards[0].Key(), cards[1].Key())

	require.NoError(t, c.Next())
	assert.Equal(t, State{Phase: PhasePresenting, CardIndex: 1}, c.State())
	position, total := c.Progress()
	assert.Equal(t, 2, position)
	assert.Equal(t, 2, total)

	_, err = c.Submit([]string{"a"})
	require.NoError(t, err)
	require.NoError(t, c.Next())

	assert.Equal(t, State{Phase: PhaseFinished}, c.State())
	history := c.History()
	require.Len(t, history, 2)
	assert.False(t, history[0].Repetition)
	assert.False(t, history[0].Correct)
	assert.True(t, history[1].Repetition)
	assert.True(t, history[1].Correct)

	effects := queue.Drain()
	require.Len(t, effects, 2)
	assert.False(t, effects[0].(RegisterAnswer).Repetition)
	assert.True(t, effects[1].(RegisterAnswer).Repetition)
}

func TestController_RepeatedMistakesRequeueEachTime(t *testing.T) {
	c := NewController([]Card{newTestCard(1, 10, "{{c1::a}}")}, nil)

	for round := 0; round < 3; round++ {
		_, err := c.Submit([]string{"x"})
		require.NoError(t, err)
		require.NoError(t, c.Next())
	}

	assert.Equal(t, State{Phase: PhasePresenting, CardIndex: 3}, c.State())
	assert.Len(t, c.Cards(), 4)
}

func TestController_RequeueKeepsOrderOfNewCards(t *testing.T) {
	c := NewController([]Card{
		newTestCard(1, 10, "{{c1::a}}"),
		newTestCard(2, 20, "{{c1::b}}"),
		newTestCard(3, 30, "{{c1::c}}"),
	}, nil)

	_, err := c.Submit([]string{"wrong"})
	require.NoError(t, err)
	require.NoError(t, c.Next())
	_, err = c.Submit([]string{"wrong"})
	require.NoError(t, err)
	require.NoError(t, c.Next())

	var order []int64
	for _, card := range c.Cards() {
		order = append(order, card.FromID)
	}
	assert.Equal(t, []int64{1, 2, 3, 1, 2}, order)
	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, int64(3), current.FromID)
}

func TestController_ReportIssue(t *testing.T) {
	t.Run("report while viewing the repetition copy finishes the session", func(t *testing.T) {
		queue := &EffectQueue{}
		c := NewController([]Card{newTestCard(1, 10, "{{c1::a}}")}, queue)

		_, err := c.Submit([]string{"x"})
		require.NoError(t, err)
		require.NoError(t, c.Next())
		require.Equal(t, State{Phase: PhasePresenting, CardIndex: 1}, c.State())

		require.NoError(t, c.ReportIssue(IssueTypeWrong, "bad translation"))

		assert.Equal(t, State{Phase: PhaseFinished}, c.State())
		assert.Len(t, c.Cards(), 1)
		assert.Len(t, c.History(), 1)
		effects := queue.Drain()
		require.Len(t, effects, 2)
		assert.Equal(t, ReportIssue{FromID: 1, ToID: 10, IssueType: IssueTypeWrong, Description: "bad translation"}, effects[1])
	})

	t.Run("report after a wrong answer removes the queued copy", func(t *testing.T) {
		c := NewController([]Card{
			newTestCard(1, 10, "{{c1::a}}"),
			newTestCard(2, 20, "{{c1::b}}"),
		}, nil)

		_, err := c.Submit([]string{"x"})
		require.NoError(t, err)
		require.Len(t, c.Cards(), 3)

		require.NoError(t, c.ReportIssue(IssueTypeMulti, ""))

		assert.Equal(t, State{Phase: PhasePresenting, CardIndex: 1}, c.State())
		cards := c.Cards()
		require.Len(t, cards, 2)
		assert.Equal(t, int64(1), cards[0].FromID)
		assert.Equal(t, int64(2), cards[1].FromID)
	})

	t.Run("report leaves other cards alone", func(t *testing.T) {
		c := NewController([]Card{
			newTestCard(1, 10, "{{c1::a}}"),
			newTestCard(2, 20, "{{c1::b}}"),
		}, nil)

		require.NoError(t, c.ReportIssue(IssueTypeOther, "typo"))

		assert.Len(t, c.Cards(), 2)
		assert.Equal(t, State{Phase: PhasePresenting, CardIndex: 1}, c.State())
	})

	t.Run("report on the last original keeps it in the list", func(t *testing.T) {
		c := NewController([]Card{
			newTestCard(1, 10, "{{c1::a}}"),
			newTestCard(2, 20, "{{c1::b}}"),
		}, nil)
		_, err := c.Submit([]string{"a"})
		require.NoError(t, err)
		require.NoError(t, c.Next())
		require.Equal(t, State{Phase: PhasePresenting, CardIndex: 1}, c.State())

		require.NoError(t, c.ReportIssue(IssueTypeWrong, ""))

		assert.Equal(t, State{Phase: PhaseFinished}, c.State())
		assert.Len(t, c.Cards(), 2)
		position, total := c.Progress()
		assert.Equal(t, 2, position)
		assert.Equal(t, 2, total)
	})

	t.Run("report on a single original keeps it in the list", func(t *testing.T) {
		c := NewController([]Card{newTestCard(1, 10, "{{c1::a}}")}, nil)

		require.NoError(t, c.ReportIssue(IssueTypeOther, ""))

		assert.Equal(t, State{Phase: PhaseFinished}, c.State())
		assert.Len(t, c.Cards(), 1)
	})

	t.Run("report does not send a staged note", func(t *testing.T) {
		queue := &EffectQueue{}
		c := NewController([]Card{newTestCard(1, 10, "{{c1::a}}")}, queue)
		_, err := c.Submit([]string{"a"})
		require.NoError(t, err)
		require.NoError(t, c.StageNote("hint", ""))

		require.NoError(t, c.ReportIssue(IssueTypeWrong, ""))

		for _, effect := range queue.Drain() {
			assert.NotEqual(t, EffectTakeNote, effect.Kind())
		}
	})
}

func TestController_EditNote(t *testing.T) {
	t.Run("updates the queued repetition copy", func(t *testing.T) {
		queue := &EffectQueue{}
		c := NewController([]Card{
			newTestCard(1, 10, "{{c1::a}}"),
			newTestCard(2, 20, "{{c1::b}}"),
		}, queue)
		_, err := c.Submit([]string{"x"})
		require.NoError(t, err)

		require.NoError(t, c.EditNote("remember a", "a is an article"))

		cards := c.Cards()
		require.Len(t, cards, 3)
		assert.Equal(t, "remember a", cards[0].Hint)
		assert.Equal(t, "remember a", cards[2].Hint)
		assert.Equal(t, "a is an article", cards[2].Explanation)
		assert.True(t, cards[2].Repetition)
		assert.Empty(t, cards[1].Hint)

		effects := queue.Drain()
		require.Len(t, effects, 2)
		assert.Equal(t, TakeNote{FromID: 1, ToID: 10, Hint: "remember a", Explanation: "a is an article"}, effects[1])
	})

	t.Run("without a queued copy only the current card changes", func(t *testing.T) {
		c := NewController([]Card{newTestCard(1, 10, "{{c1::a}}")}, nil)
		_, err := c.Submit([]string{"a"})
		require.NoError(t, err)

		require.NoError(t, c.EditNote("h", "e"))

		cards := c.Cards()
		require.Len(t, cards, 1)
		assert.Equal(t, "h", cards[0].Hint)
		assert.False(t, cards[0].Repetition)
		current, _ := c.Current()
		assert.Equal(t, "e", current.Explanation)
	})

	t.Run("unchanged note emits nothing", func(t *testing.T) {
		queue := &EffectQueue{}
		card := newTestCard(1, 10, "{{c1::a}}").WithNote("h", "e")
		c := NewController([]Card{card}, queue)
		_, err := c.Submit([]string{"a"})
		require.NoError(t, err)
		queue.Drain()

		require.NoError(t, c.EditNote("h", "e"))
		require.NoError(t, c.EditNote("h", "e"))

		assert.Equal(t, 0, queue.Len())
	})

	t.Run("staged note is sent on next", func(t *testing.T) {
		queue := &EffectQueue{}
		c := NewController([]Card{newTestCard(1, 10, "{{c1::a}}")}, queue)
		_, err := c.Submit([]string{"a"})
		require.NoError(t, err)
		queue.Drain()

		require.NoError(t, c.StageNote("draft", ""))
		assert.Equal(t, 0, queue.Len())
		require.NoError(t, c.Next())

		assert.Equal(t, []Effect{TakeNote{FromID: 1, ToID: 10, Hint: "draft"}}, queue.Drain())
	})

	t.Run("staged note equal to the stored one is not sent", func(t *testing.T) {
		queue := &EffectQueue{}
		c := NewController([]Card{newTestCard(1, 10, "{{c1::a}}")}, queue)
		_, err := c.Submit([]string{"a"})
		require.NoError(t, err)
		queue.Drain()

		require.NoError(t, c.StageNote("", ""))
		require.NoError(t, c.Next())

		assert.Equal(t, 0, queue.Len())
	})
}

func TestController_InvalidTransitions(t *testing.T) {
	newPresenting := func() *Controller {
		return NewController([]Card{newTestCard(1, 10, "{{c1::a}}")}, nil)
	}

	tests := []struct {
		name  string
		setup func() *Controller
		op    func(c *Controller) error
	}{
		{
			name:  "next while presenting",
			setup: newPresenting,
			op:    func(c *Controller) error { return c.Next() },
		},
		{
			name:  "edit note while presenting",
			setup: newPresenting,
			op:    func(c *Controller) error { return c.EditNote("h", "e") },
		},
		{
			name:  "stage note while presenting",
			setup: newPresenting,
			op:    func(c *Controller) error { return c.StageNote("h", "e") },
		},
		{
			name: "submit while revealing",
			setup: func() *Controller {
				c := newPresenting()
				_, _ = c.Submit([]string{"a"})
				return c
			},
			op: func(c *Controller) error {
				_, err := c.Submit([]string{"a"})
				return err
			},
		},
		{
			name:  "submit when finished",
			setup: func() *Controller { return NewController(nil, nil) },
			op: func(c *Controller) error {
				_, err := c.Submit(nil)
				return err
			},
		},
		{
			name:  "report when finished",
			setup: func() *Controller { return NewController(nil, nil) },
			op:    func(c *Controller) error { return c.ReportIssue(IssueTypeWrong, "") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setup()
			before := c.State()
			cardsBefore := c.Cards()

			err := tt.op(c)

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, before, c.State())
			assert.Equal(t, cardsBefore, c.Cards())
		})
	}
}

func TestController_SkipsMalformedCards(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	c := NewController([]Card{
		newTestCard(1, 10, "{{c1:broken}}"),
		newTestCard(2, 20, "{{c1::b}}"),
		newTestCard(3, 30, "{{c1::c", "}}"),
	}, nil, WithLogger(logger))

	assert.Equal(t, State{Phase: PhasePresenting, CardIndex: 1}, c.State())
	_, err := c.Submit([]string{"b"})
	require.NoError(t, err)
	require.NoError(t, c.Next())

	assert.Equal(t, State{Phase: PhaseFinished}, c.State())
	skipped := c.Skipped()
	require.Len(t, skipped, 2)
	assert.Equal(t, int64(1), skipped[0].Card.FromID)
	assert.Equal(t, int64(3), skipped[1].Card.FromID)
	assert.Contains(t, logs.String(), "skipping malformed card")
	assert.Len(t, c.History(), 1)
}

func TestController_LastResult(t *testing.T) {
	c := NewController([]Card{newTestCard(1, 10, "{{c1::a}}")}, nil)
	_, ok := c.LastResult()
	assert.False(t, ok)

	_, err := c.Submit([]string{"b"})
	require.NoError(t, err)
	result, ok := c.LastResult()
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, result.Given)

	require.NoError(t, c.Next())
	_, ok = c.LastResult()
	assert.False(t, ok)
}

func TestState_JSON(t *testing.T) {
	encoded, err := json.Marshal(State{Phase: PhaseRevealing, CardIndex: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"phase":"revealing","card_index":3}`, string(encoded))
	assert.Equal(t, "revealing(3)", State{Phase: PhaseRevealing, CardIndex: 3}.String())
	assert.Equal(t, "finished", State{Phase: PhaseFinished}.String())
}

func TestParseIssueType(t *testing.T) {
	for _, s := range []string{"WRONG", "MULTI", "OTHER"} {
		got, err := ParseIssueType(s)
		require.NoError(t, err)
		assert.Equal(t, IssueType(s), got)
	}
	_, err := ParseIssueType("wrong")
	assert.Error(t, err)
}
