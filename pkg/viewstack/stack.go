package viewstack

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack/internal"
)

// StackEntry is one screen on the stack: the factory that produced it, the
// saved-state bag for it, and the component currently mounted for it.
type StackEntry struct {
	Factory ScreenFactory
	State   State

	component Component
	gate      *FirstLayoutGate
}

// Component returns the mounted component for this entry.
func (e *StackEntry) Component() Component {
	return e.component
}

type observerSlot struct {
	observer StackObserver
}

// ViewStack manages an ordered stack of screens mounted in one container.
//
// Every entry on the stack has exactly one component mounted in the
// container. Only the top component is visible; the ones below stay mounted
// but hidden so their UI state survives without being recreated.
//
// A ViewStack is not safe for concurrent use. All calls, and all transition
// completion callbacks, must happen on the UI goroutine.
type ViewStack struct {
	id                uuid.UUID
	container         Container
	delegate          StackDelegate
	ctx               RenderContext
	runner            TransitionRunner
	registry          *FactoryRegistry
	logger            *slog.Logger
	onTransitionError func(error)

	entries   []*StackEntry
	observers []*observerSlot

	busy       atomic.Bool
	generation atomic.Int64
}

// New creates a ViewStack bound to container. The delegate is told when the
// user tries to pop the last screen.
func New(container Container, delegate StackDelegate, opts ...Option) (*ViewStack, error) {
	if container == nil {
		return nil, newError("new", ErrInvalidArgument, "container == nil")
	}
	if delegate == nil {
		return nil, newError("new", ErrInvalidArgument, "delegate == nil")
	}

	s := &ViewStack{
		id:        uuid.New(),
		container: container,
		delegate:  delegate,
		registry:  NewFactoryRegistry(),
		logger:    internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = DefaultRunner{Logger: s.logger}
	}
	s.logger = s.logger.With("stack", s.id.String())

	return s, nil
}

// ID returns the unique identifier of this stack, used in log records.
func (s *ViewStack) ID() uuid.UUID {
	return s.id
}

// Registry returns the factory registry used by Save and Restore.
func (s *ViewStack) Registry() *FactoryRegistry {
	return s.registry
}

// Push creates the factory's component, mounts it on top, hides the previous
// top, and notifies observers once.
func (s *ViewStack) Push(factory ScreenFactory) (Component, error) {
	if factory == nil {
		return nil, newError("push", ErrInvalidArgument, "factory == nil")
	}
	if err := s.checkIdle("push"); err != nil {
		return nil, err
	}

	entry, err := s.mount("push", factory, nil)
	if err != nil {
		return nil, err
	}
	s.hide(s.below())
	s.notify()

	s.logger.Debug("Pushed screen", "factory", factoryName(factory), "depth", s.Size())
	return entry.component, nil
}

// PushWithTransition mounts the factory's component on top and notifies
// observers immediately. Once the component has been laid out the transition
// starts; the previous top is hidden when the transition completes.
//
// The stack is busy until then. If the builder fails, the stack settles
// without animation: the previous top is hidden and the error is returned
// (or, when the first layout happens after this call returns, handed to the
// transition error handler). The returned component is valid in both cases.
func (s *ViewStack) PushWithTransition(factory ScreenFactory, builder TransitionBuilder) (Component, error) {
	if factory == nil {
		return nil, newError("push", ErrInvalidArgument, "factory == nil")
	}
	if builder == nil {
		return nil, newError("push", ErrInvalidArgument, "builder == nil")
	}
	if err := s.checkIdle("push"); err != nil {
		return nil, err
	}

	previous := s.top()
	entry, err := s.mount("push", factory, nil)
	if err != nil {
		return nil, err
	}

	// Observers run while busy, so they cannot mutate the stack under the
	// pending transition. Only Clear gets through, and it abandons the push.
	s.busy.Store(true)
	gen := s.generation.Load()
	s.notify()
	if s.generation.Load() != gen {
		return entry.component, nil
	}

	var syncErr error
	deferred := false
	entry.gate = NewFirstLayoutGate(entry.component, func() {
		entry.gate = nil
		if err := s.startEnter(gen, entry, previous, builder); err != nil {
			if deferred {
				s.reportTransitionError(err)
			} else {
				syncErr = err
			}
		}
	})
	entry.gate.Arm()
	deferred = true

	s.logger.Debug("Pushed screen with transition",
		"factory", factoryName(factory), "depth", s.Size(), "waiting_for_layout", entry.gate != nil)
	return entry.component, syncErr
}

func (s *ViewStack) startEnter(gen int64, entry, previous *StackEntry, builder TransitionBuilder) error {
	token, err := s.runner.Bind(builder, entry.component)
	if err != nil {
		s.settlePush(previous)
		return err
	}

	token.Start(func() {
		if s.generation.Load() != gen {
			return
		}
		s.settlePush(previous)
		s.logger.Debug("Push transition finished", "token", token.ID)
	})
	return nil
}

func (s *ViewStack) settlePush(previous *StackEntry) {
	if previous != nil && previous != s.top() {
		s.hide(previous)
	}
	s.busy.Store(false)
}

// Pop removes the top screen. The screen below is revealed, the old top is
// unmounted, observers are notified once, and the removed component is returned.
//
// Pop never removes the last screen: at depth 1 it calls the delegate's
// OnStackExhausted and returns nil, nil without changing anything.
func (s *ViewStack) Pop() (Component, error) {
	if err := s.checkIdle("pop"); err != nil {
		return nil, err
	}
	if ok, err := s.shouldPop("pop"); !ok {
		return nil, err
	}

	outgoing := s.detachTop()
	s.reveal(s.top())
	s.container.RemoveChild(outgoing.component)
	s.notify()

	s.logger.Debug("Popped screen", "factory", factoryName(outgoing.Factory), "depth", s.Size())
	return outgoing.component, nil
}

// PopWithTransition removes the top screen with an exit transition.
//
// The size drops and the screen below is revealed immediately, so it shows
// underneath the outgoing component while it animates. The outgoing component
// stays mounted until the transition completes; only then is it removed and
// observers notified. Builder failures are returned before anything changes.
func (s *ViewStack) PopWithTransition(builder TransitionBuilder) (Component, error) {
	if builder == nil {
		return nil, newError("pop", ErrInvalidArgument, "builder == nil")
	}
	if err := s.checkIdle("pop"); err != nil {
		return nil, err
	}
	if ok, err := s.shouldPop("pop"); !ok {
		return nil, err
	}

	outgoing := s.top()
	token, err := s.runner.Bind(builder, outgoing.component)
	if err != nil {
		return nil, err
	}

	s.detachTop()
	s.reveal(s.top())
	s.busy.Store(true)
	gen := s.generation.Load()

	token.Start(func() {
		if s.generation.Load() != gen {
			return
		}
		s.container.RemoveChild(outgoing.component)
		s.busy.Store(false)
		s.notify()
		s.logger.Debug("Pop transition finished", "token", token.ID, "depth", s.Size())
	})

	return outgoing.component, nil
}

// Peek returns the top factory.
func (s *ViewStack) Peek() (ScreenFactory, error) {
	top := s.top()
	if top == nil {
		return nil, newError("peek", ErrStackUnderflow, "stack is empty")
	}
	return top.Factory, nil
}

// PeekComponent returns the component mounted for the top entry.
func (s *ViewStack) PeekComponent() (Component, error) {
	top := s.top()
	if top == nil {
		return nil, newError("peek", ErrStackUnderflow, "stack is empty")
	}
	return top.component, nil
}

// Size returns the logical depth of the stack.
func (s *ViewStack) Size() int {
	return len(s.entries)
}

// Factories returns the factories on the stack, bottom to top.
func (s *ViewStack) Factories() []ScreenFactory {
	factories := make([]ScreenFactory, len(s.entries))
	for i, e := range s.entries {
		factories[i] = e.Factory
	}
	return factories
}

// Entries returns a copy of the stack entries, bottom to top.
func (s *ViewStack) Entries() []*StackEntry {
	entries := make([]*StackEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Busy reports whether a transition is in flight. Safe to call from any goroutine.
func (s *ViewStack) Busy() bool {
	return s.busy.Load()
}

// Clear empties the stack and removes every child from the container,
// including the last screen and any component still animating out.
// In-flight transitions are abandoned: their completion does nothing.
// Observers are notified once.
func (s *ViewStack) Clear() {
	s.generation.Inc()

	for _, e := range s.entries {
		if e.gate != nil {
			e.gate.Cancel()
			e.gate = nil
		}
	}
	s.entries = nil
	s.container.RemoveAllChildren()
	s.busy.Store(false)
	s.notify()

	s.logger.Debug("Cleared stack")
}

// AddObserver registers o. Registering the same observer twice has no effect
// and returns false, so each observer runs at most once per change.
func (s *ViewStack) AddObserver(o StackObserver) bool {
	if o == nil {
		return false
	}
	for _, slot := range s.observers {
		if sameObserver(slot.observer, o) {
			return false
		}
	}
	s.observers = append(s.observers, &observerSlot{observer: o})
	return true
}

// Observe registers fn and returns a function that unregisters it.
func (s *ViewStack) Observe(fn func()) (remove func()) {
	slot := &observerSlot{observer: ObserverFunc(fn)}
	s.observers = append(s.observers, slot)
	return func() { s.removeSlot(slot) }
}

// RemoveObserver unregisters o and reports whether it was registered.
func (s *ViewStack) RemoveObserver(o StackObserver) bool {
	for _, slot := range s.observers {
		if sameObserver(slot.observer, o) {
			s.removeSlot(slot)
			return true
		}
	}
	return false
}

// ClearObservers unregisters every observer.
func (s *ViewStack) ClearObservers() {
	s.observers = nil
}

func (s *ViewStack) removeSlot(target *observerSlot) {
	for i, slot := range s.observers {
		if slot == target {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *ViewStack) notify() {
	// Observers may add or remove observers while being notified.
	slots := make([]*observerSlot, len(s.observers))
	copy(slots, s.observers)
	for _, slot := range slots {
		slot.observer.OnStackChanged()
	}
}

// mount creates the component for factory, pushes the entry, and adds the
// component to the container. Nothing changes if the factory fails.
func (s *ViewStack) mount(op string, factory ScreenFactory, state State) (*StackEntry, error) {
	c, err := s.create(op, factory)
	if err != nil {
		return nil, err
	}
	return s.attach(factory, state, c), nil
}

func (s *ViewStack) create(op string, factory ScreenFactory) (Component, error) {
	c, err := factory.CreateComponent(s.ctx, s.container)
	if err != nil {
		return nil, wrapError(op, nil, fmt.Sprintf("create %s", factoryName(factory)), err)
	}
	if c == nil {
		return nil, newError(op, ErrInvalidArgument,
			fmt.Sprintf("%s returned nil component", factoryName(factory)))
	}
	return c, nil
}

func (s *ViewStack) attach(factory ScreenFactory, state State, c Component) *StackEntry {
	if state == nil {
		state = State{}
	}
	entry := &StackEntry{Factory: factory, State: state, component: c}
	s.entries = append(s.entries, entry)
	s.container.AddChild(c)

	if sc, ok := c.(StatefulComponent); ok && len(state) > 0 {
		sc.RestoreState(state)
	}
	return entry
}

func (s *ViewStack) detachTop() *StackEntry {
	n := len(s.entries)
	top := s.entries[n-1]
	s.entries[n-1] = nil
	s.entries = s.entries[:n-1]
	if top.gate != nil {
		top.gate.Cancel()
		top.gate = nil
	}
	return top
}

func (s *ViewStack) top() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

func (s *ViewStack) below() *StackEntry {
	if len(s.entries) < 2 {
		return nil
	}
	return s.entries[len(s.entries)-2]
}

func (s *ViewStack) hide(e *StackEntry) {
	if e == nil {
		return
	}
	captureState(e)
	e.component.SetVisible(false)
}

func (s *ViewStack) reveal(e *StackEntry) {
	if e == nil {
		return
	}
	e.component.SetVisible(true)
}

func (s *ViewStack) shouldPop(op string) (bool, error) {
	switch len(s.entries) {
	case 0:
		return false, newError(op, ErrStackUnderflow, "stack is empty")
	case 1:
		s.logger.Debug("Stack exhausted")
		s.delegate.OnStackExhausted()
		return false, nil
	default:
		return true, nil
	}
}

func (s *ViewStack) checkIdle(op string) error {
	if s.busy.Load() {
		return newError(op, ErrStackBusy, "transition in flight")
	}
	return nil
}

func (s *ViewStack) reportTransitionError(err error) {
	if s.onTransitionError != nil {
		s.onTransitionError(err)
		return
	}
	s.logger.Error("Transition failed", "error", err)
}

func captureState(e *StackEntry) {
	sc, ok := e.component.(StatefulComponent)
	if !ok {
		return
	}
	if e.State == nil {
		e.State = State{}
	}
	sc.SaveState(e.State)
}

func factoryName(f ScreenFactory) string {
	return fmt.Sprintf("%T", f)
}
