package backend

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/at-ishikawa/clozequiz/internal/session"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/backend/mock_dispatcher.go -package=mock_backend

var (
	// ErrQueueFull is reported when an effect is dropped because the queue is full.
	ErrQueueFull = errors.New("effect queue is full")
	// ErrDispatcherClosed is reported for effects emitted after Close.
	ErrDispatcherClosed = errors.New("dispatcher is closed")
)

// EffectDeliverer sends one effect to the quiz service.
type EffectDeliverer interface {
	Deliver(ctx context.Context, effect session.Effect) error
}

// Dispatcher is a session.EffectSink that delivers effects in order on a
// single background worker.
type Dispatcher struct {
	deliverer EffectDeliverer
	queue     chan session.Effect
	onError   func(session.Effect, error)
	done      chan struct{}

	mu     sync.RWMutex
	closed bool
}

var _ session.EffectSink = (*Dispatcher)(nil)

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithOnError registers a callback for effects that could not be delivered.
// It runs on the worker for delivery failures and on the caller of Emit for
// dropped effects.
func WithOnError(fn func(session.Effect, error)) DispatcherOption {
	return func(d *Dispatcher) {
		d.onError = fn
	}
}

// NewDispatcher starts a worker delivering effects with ctx.
func NewDispatcher(ctx context.Context, deliverer EffectDeliverer, queueSize int, opts ...DispatcherOption) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	d := &Dispatcher{
		deliverer: deliverer,
		queue:     make(chan session.Effect, queueSize),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	go d.run(ctx)
	return d
}

// Emit enqueues an effect without waiting for its delivery.
func (d *Dispatcher) Emit(effect session.Effect) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.report(effect, ErrDispatcherClosed)
		return
	}
	select {
	case d.queue <- effect:
	default:
		d.report(effect, ErrQueueFull)
	}
}

// Close stops accepting effects and waits until the queued ones are delivered.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)

	for effect := range d.queue {
		if err := d.deliverer.Deliver(ctx, effect); err != nil {
			d.report(effect, err)
		}
	}
}

func (d *Dispatcher) report(effect session.Effect, err error) {
	slog.Default().Warn("failed to deliver effect",
		"kind", effect.Kind(),
		"error", err,
	)
	if d.onError != nil {
		d.onError(effect, err)
	}
}
