package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

//go:generate mockgen -source=loader.go -destination=../mocks/session/mock_loader.go -package=mock_session

// ErrStaleDraw is returned by Loader.Load when a newer draw started before
// this one resolved. Its cards are discarded.
var ErrStaleDraw = errors.New("card draw superseded by a newer selection")

// CardDrawer supplies the cards for a language pair.
type CardDrawer interface {
	DrawCards(ctx context.Context, pair LanguagePair) ([]Card, error)
}

// Loader draws cards and starts sessions. Only the latest selection may start
// a session; responses for older selections are ignored.
type Loader struct {
	drawer CardDrawer
	sink   EffectSink
	opts   []Option

	mu         sync.Mutex
	generation uuid.UUID
}

// NewLoader creates a Loader whose sessions emit effects to sink.
func NewLoader(drawer CardDrawer, sink EffectSink, opts ...Option) *Loader {
	return &Loader{
		drawer: drawer,
		sink:   sink,
		opts:   opts,
	}
}

// Load draws cards for pair and starts a session over them.
func (l *Loader) Load(ctx context.Context, pair LanguagePair) (*Controller, error) {
	generation := uuid.New()
	l.mu.Lock()
	l.generation = generation
	l.mu.Unlock()

	slog.Default().Debug("drawing cards",
		"draw_id", generation.String(),
		"from", pair.From,
		"to", pair.To,
	)
	cards, err := l.drawer.DrawCards(ctx, pair)

	l.mu.Lock()
	current := l.generation == generation
	l.mu.Unlock()
	if !current {
		return nil, ErrStaleDraw
	}
	if err != nil {
		return nil, fmt.Errorf("drawer.DrawCards() > %w", err)
	}

	drawn := make([]Card, len(cards))
	for i, card := range cards {
		card.Repetition = false
		drawn[i] = card
	}
	return NewController(drawn, l.sink, l.opts...), nil
}
