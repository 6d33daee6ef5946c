package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
)

// Source is the part of an evdev device the Watcher reads from.
// *evdev.InputDevice satisfies it.
type Source interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Watcher delivers virtual button events from a Source.
type Watcher struct {
	source Source
	keymap map[evdev.EvCode]constants.VirtualButton
	events chan Event
	logger *slog.Logger

	closeOnce sync.Once
	closeErr  error
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithKeymap replaces DefaultKeymap.
func WithKeymap(keymap map[evdev.EvCode]constants.VirtualButton) WatcherOption {
	return func(w *Watcher) { w.keymap = keymap }
}

// WithLogger sets the logger used for read errors.
func WithLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) { w.logger = l }
}

// Open opens the evdev device at path and watches it.
func Open(path string, opts ...WatcherOption) (*Watcher, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}
	return NewWatcher(dev, opts...), nil
}

// NewWatcher watches an already opened source.
func NewWatcher(source Source, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		source: source,
		keymap: DefaultKeymap,
		events: make(chan Event, 16),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Events returns the channel events are delivered on. It is closed when Run returns.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Run reads until ctx is cancelled or the source fails. Cancelling ctx
// closes the source to unblock the pending read; that shutdown is not
// reported as an error. A failed read also closes the source.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)

	stop := context.AfterFunc(ctx, func() { _ = w.Close() })
	defer stop()

	for {
		ev, err := w.source.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, os.ErrClosed) {
				return nil
			}
			w.logger.Error("Input device read failed", "error", err)
			_ = w.Close()
			return fmt.Errorf("read input event: %w", err)
		}

		e, ok := translate(w.keymap, ev)
		if !ok {
			continue
		}

		select {
		case w.events <- e:
		case <-ctx.Done():
			return nil
		}
	}
}

// Close closes the source. Safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.source.Close()
	})
	return w.closeErr
}
