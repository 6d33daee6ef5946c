package viewstack_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
)

func TestNew_NilContainer(t *testing.T) {
	_, err := viewstack.New(nil, &delegate{})
	require.Error(t, err)
	assert.True(t, viewstack.IsInvalidArgument(err))

	var se *viewstack.StackError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "container == nil", se.Msg)
}

func TestNew_NilDelegate(t *testing.T) {
	_, err := viewstack.New(&fakeContainer{}, nil)
	require.Error(t, err)
	assert.True(t, viewstack.IsInvalidArgument(err))

	var se *viewstack.StackError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "delegate == nil", se.Msg)
}

func TestPush_NilFactory(t *testing.T) {
	f := newFixture()

	_, err := f.stack.Push(nil)
	assert.True(t, viewstack.IsInvalidArgument(err))
	assert.Equal(t, 0, f.stack.Size())
	assert.Equal(t, 0, f.observer.changes)
}

func TestPush_First(t *testing.T) {
	f := newFixture()

	c, err := f.stack.Push(screen{Name: "A"})
	require.NoError(t, err)

	assert.Equal(t, 1, f.stack.Size())
	require.Equal(t, 1, f.container.ChildCount())
	assert.Same(t, c, f.container.ChildAt(0))
	assert.True(t, c.Visible())
	assert.Equal(t, 1, f.observer.changes)
}

func TestPush_HidesPreviousTop(t *testing.T) {
	f := newFixture()

	bottom, err := f.stack.Push(screen{Name: "A"})
	require.NoError(t, err)
	top, err := f.stack.Push(screen{Name: "B"})
	require.NoError(t, err)

	assert.Equal(t, 2, f.stack.Size())
	assert.Equal(t, 2, f.container.ChildCount())
	assert.False(t, bottom.Visible(), "previous top stays mounted but hidden")
	assert.True(t, top.Visible())
	assert.Same(t, top, f.container.ChildAt(1))
	assert.Equal(t, 2, f.observer.changes)
}

func TestPush_ManyKeepsOneVisible(t *testing.T) {
	f := newFixture()

	for i, name := range []string{"A", "B", "C", "D", "E"} {
		_, err := f.stack.Push(screen{Name: name})
		require.NoError(t, err)

		assert.Equal(t, i+1, f.stack.Size())
		assert.Equal(t, i+1, f.container.ChildCount())
		assert.Equal(t, 1, f.container.visibleCount())
		assert.True(t, f.container.ChildAt(i).Visible(), "most recent push is the visible one")
	}
}

func TestPush_FactoryErrorLeavesStackUnchanged(t *testing.T) {
	f := newFixture()
	_, err := f.stack.Push(screen{Name: "A"})
	require.NoError(t, err)

	_, err = f.stack.Push(brokenScreen{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)

	assert.Equal(t, 1, f.stack.Size())
	assert.Equal(t, 1, f.container.ChildCount())
	assert.True(t, f.container.ChildAt(0).Visible())
	assert.Equal(t, 1, f.observer.changes)
}

func TestPop_Empty(t *testing.T) {
	f := newFixture()

	_, err := f.stack.Pop()
	assert.True(t, viewstack.IsUnderflow(err))
	assert.Equal(t, 0, f.delegate.exhausted)
}

func TestPop_LastEntryCallsDelegate(t *testing.T) {
	f := newFixture()
	_, err := f.stack.Push(screen{Name: "A"})
	require.NoError(t, err)
	f.observer.changes = 0

	for i := 1; i <= 3; i++ {
		c, err := f.stack.Pop()
		require.NoError(t, err)
		assert.Nil(t, c)
		assert.Equal(t, 1, f.stack.Size())
		assert.Equal(t, 1, f.container.ChildCount())
		assert.Equal(t, i, f.delegate.exhausted)
	}
	assert.Equal(t, 0, f.observer.changes)
}

func TestPop_RemovesTopAndRevealsBelow(t *testing.T) {
	f := newFixture()
	bottom, _ := f.stack.Push(screen{Name: "A"})
	top, _ := f.stack.Push(screen{Name: "B"})
	f.observer.changes = 0

	popped, err := f.stack.Pop()
	require.NoError(t, err)

	assert.Same(t, top, popped)
	assert.Equal(t, 1, f.stack.Size())
	assert.Equal(t, 1, f.container.ChildCount())
	assert.Same(t, bottom, f.container.ChildAt(0))
	assert.True(t, bottom.Visible())
	assert.Equal(t, 1, f.observer.changes)
	assert.Equal(t, 0, f.delegate.exhausted)
}

func TestPeek(t *testing.T) {
	f := newFixture()

	_, err := f.stack.Peek()
	assert.True(t, viewstack.IsUnderflow(err))
	_, err = f.stack.PeekComponent()
	assert.True(t, viewstack.IsUnderflow(err))

	_, _ = f.stack.Push(screen{Name: "A"})
	top, _ := f.stack.Push(screen{Name: "B"})

	factory, err := f.stack.Peek()
	require.NoError(t, err)
	assert.Equal(t, screen{Name: "B"}, factory)

	c, err := f.stack.PeekComponent()
	require.NoError(t, err)
	assert.Same(t, top, c)
	assert.Equal(t, 2, f.stack.Size(), "peek does not mutate")
}

func TestClear(t *testing.T) {
	for _, depth := range []int{0, 1, 4} {
		f := newFixture()
		for i := 0; i < depth; i++ {
			_, err := f.stack.Push(screen{Name: "S"})
			require.NoError(t, err)
		}
		f.observer.changes = 0

		f.stack.Clear()

		assert.Equal(t, 0, f.stack.Size())
		assert.Equal(t, 0, f.container.ChildCount())
		assert.Equal(t, 1, f.observer.changes)
	}
}

func TestFactories_BottomToTop(t *testing.T) {
	f := newFixture()
	_, _ = f.stack.Push(screen{Name: "A"})
	_, _ = f.stack.Push(screen{Name: "B"})
	_, _ = f.stack.Push(screen{Name: "C"})

	assert.Equal(t, []viewstack.ScreenFactory{
		screen{Name: "A"}, screen{Name: "B"}, screen{Name: "C"},
	}, f.stack.Factories())
}

func TestObservers_Registration(t *testing.T) {
	f := newFixture()
	second := &observer{}

	assert.True(t, f.stack.AddObserver(second))
	assert.False(t, f.stack.AddObserver(second), "duplicate registration is ignored")

	calls := 0
	remove := f.stack.Observe(func() { calls++ })

	_, _ = f.stack.Push(screen{Name: "A"})
	assert.Equal(t, 1, f.observer.changes)
	assert.Equal(t, 1, second.changes)
	assert.Equal(t, 1, calls)

	assert.True(t, f.stack.RemoveObserver(second))
	assert.False(t, f.stack.RemoveObserver(second))
	remove()

	_, _ = f.stack.Push(screen{Name: "B"})
	assert.Equal(t, 2, f.observer.changes)
	assert.Equal(t, 1, second.changes)
	assert.Equal(t, 1, calls)

	f.stack.ClearObservers()
	_, _ = f.stack.Push(screen{Name: "C"})
	assert.Equal(t, 2, f.observer.changes)
}

func TestObservers_FuncObserverRegisteredOnce(t *testing.T) {
	f := newFixture()
	calls := 0
	fn := viewstack.ObserverFunc(func() { calls++ })

	assert.True(t, f.stack.AddObserver(fn))
	assert.False(t, f.stack.AddObserver(fn), "same function is ignored")

	_, _ = f.stack.Push(screen{Name: "A"})
	assert.Equal(t, 1, calls)

	assert.True(t, f.stack.RemoveObserver(fn))
	assert.False(t, f.stack.RemoveObserver(fn))

	_, _ = f.stack.Push(screen{Name: "B"})
	assert.Equal(t, 1, calls)
}

func TestPushWithTransition_NilArguments(t *testing.T) {
	f := newFixture()

	_, err := f.stack.PushWithTransition(nil, viewstack.NoTransition)
	assert.True(t, viewstack.IsInvalidArgument(err))
	_, err = f.stack.PushWithTransition(screen{Name: "A"}, nil)
	assert.True(t, viewstack.IsInvalidArgument(err))

	assert.Equal(t, 0, f.stack.Size())
	assert.Equal(t, 0, f.observer.changes)
}

func TestPushWithTransition_HidesBelowOnCompletion(t *testing.T) {
	f := newFixture()
	anim := &manualTransition{}

	bottom, _ := f.stack.Push(screen{Name: "A"})
	f.observer.changes = 0

	top, err := f.stack.PushWithTransition(screen{Name: "B"}, anim)
	require.NoError(t, err)

	assert.Equal(t, 1, f.observer.changes, "observers hear about the push before the animation ends")
	assert.Equal(t, 2, f.stack.Size())
	assert.Equal(t, 2, f.container.ChildCount())
	assert.True(t, bottom.Visible(), "outgoing screen stays visible while the new one animates in")
	assert.True(t, f.stack.Busy())
	require.Len(t, anim.built, 1)
	assert.Same(t, top, anim.built[0])

	anim.finish()

	assert.False(t, bottom.Visible())
	assert.True(t, top.Visible())
	assert.Equal(t, 2, f.container.ChildCount(), "hidden screen is still mounted")
	assert.Equal(t, 1, f.observer.changes)
	assert.False(t, f.stack.Busy())
}

func TestPushWithTransition_WaitsForFirstLayout(t *testing.T) {
	f := newFixture()
	anim := &manualTransition{}

	bottom, _ := f.stack.Push(screen{Name: "A"})
	_, err := f.stack.PushWithTransition(layoutScreen{Name: "B"}, anim)
	require.NoError(t, err)
	incoming := lastLayout

	assert.Empty(t, anim.built, "no geometry yet")
	incoming.layout(0, 0)
	assert.Empty(t, anim.built, "zero-size layout does not count")

	incoming.layout(320, 240)
	require.Len(t, anim.built, 1)
	assert.Empty(t, incoming.listeners, "gate deregisters after firing")

	incoming.layout(640, 480)
	assert.Len(t, anim.built, 1)

	anim.finish()
	assert.False(t, bottom.Visible())
	assert.False(t, f.stack.Busy())
}

func TestPushWithTransition_NoTransitionMatchesPush(t *testing.T) {
	f := newFixture()

	bottom, _ := f.stack.Push(screen{Name: "A"})
	top, err := f.stack.PushWithTransition(screen{Name: "B"}, viewstack.NoTransition)
	require.NoError(t, err)

	assert.False(t, bottom.Visible())
	assert.True(t, top.Visible())
	assert.Equal(t, 2, f.observer.changes)
	assert.False(t, f.stack.Busy())
}

func TestPushWithTransition_NoTransitionNotifiesBeforeHidingBelow(t *testing.T) {
	f := newFixture()
	_, _ = f.stack.Push(screen{Name: "A"})

	visible := -1
	f.stack.Observe(func() { visible = f.container.visibleCount() })

	_, err := f.stack.PushWithTransition(screen{Name: "B"}, viewstack.NoTransition)
	require.NoError(t, err)
	assert.Equal(t, 2, visible)
	assert.Equal(t, 1, f.container.visibleCount())

	_, err = f.stack.Push(screen{Name: "C"})
	require.NoError(t, err)
	assert.Equal(t, 1, visible, "plain push notifies after hiding")
}

func TestPushWithTransition_BuilderErrorSettles(t *testing.T) {
	f := newFixture()

	bottom, _ := f.stack.Push(screen{Name: "A"})
	top, err := f.stack.PushWithTransition(screen{Name: "B"}, failingTransition)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBuild)

	assert.NotNil(t, top)
	assert.Equal(t, 2, f.stack.Size())
	assert.False(t, bottom.Visible())
	assert.False(t, f.stack.Busy())
}

func TestPushWithTransition_DeferredBuilderErrorGoesToHandler(t *testing.T) {
	var handled []error
	f := newFixture(viewstack.WithTransitionErrorHandler(func(err error) {
		handled = append(handled, err)
	}))

	bottom, _ := f.stack.Push(screen{Name: "A"})
	_, err := f.stack.PushWithTransition(layoutScreen{Name: "B"}, failingTransition)
	require.NoError(t, err)

	lastLayout.layout(10, 10)

	require.Len(t, handled, 1)
	assert.ErrorIs(t, handled[0], errBuild)
	assert.False(t, bottom.Visible())
	assert.False(t, f.stack.Busy())
}

func TestPopWithTransition_NilBuilder(t *testing.T) {
	f := newFixture()
	_, _ = f.stack.Push(screen{Name: "A"})
	_, _ = f.stack.Push(screen{Name: "B"})

	_, err := f.stack.PopWithTransition(nil)
	assert.True(t, viewstack.IsInvalidArgument(err))
	assert.Equal(t, 2, f.stack.Size())
}

func TestPopWithTransition_UnderflowAndExhaustion(t *testing.T) {
	f := newFixture()
	anim := &manualTransition{}

	_, err := f.stack.PopWithTransition(anim)
	assert.True(t, viewstack.IsUnderflow(err))

	_, _ = f.stack.Push(screen{Name: "A"})
	c, err := f.stack.PopWithTransition(anim)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.Equal(t, 1, f.delegate.exhausted)
	assert.Equal(t, 1, f.stack.Size())
	assert.Empty(t, anim.built)
}

func TestPopWithTransition_UnmountsOnCompletion(t *testing.T) {
	f := newFixture()
	anim := &manualTransition{}

	bottom, _ := f.stack.Push(screen{Name: "A"})
	top, _ := f.stack.Push(screen{Name: "B"})
	f.observer.changes = 0

	popped, err := f.stack.PopWithTransition(anim)
	require.NoError(t, err)
	assert.Same(t, top, popped)

	assert.True(t, bottom.Visible(), "screen below is revealed immediately")
	assert.Equal(t, 1, f.stack.Size(), "logical depth drops immediately")
	assert.Equal(t, 2, f.container.ChildCount(), "outgoing screen stays mounted while animating")
	assert.Equal(t, 0, f.observer.changes)
	require.Len(t, anim.built, 1)
	assert.Same(t, top, anim.built[0])

	anim.finish()

	assert.Equal(t, 1, f.container.ChildCount())
	assert.Same(t, bottom, f.container.ChildAt(0))
	assert.Equal(t, 1, f.observer.changes)
	assert.False(t, f.stack.Busy())
}

func TestPopWithTransition_BuilderErrorLeavesStackUnchanged(t *testing.T) {
	f := newFixture()
	bottom, _ := f.stack.Push(screen{Name: "A"})
	_, _ = f.stack.Push(screen{Name: "B"})
	f.observer.changes = 0

	_, err := f.stack.PopWithTransition(failingTransition)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBuild)

	assert.Equal(t, 2, f.stack.Size())
	assert.Equal(t, 2, f.container.ChildCount())
	assert.False(t, bottom.Visible())
	assert.Equal(t, 0, f.observer.changes)
	assert.False(t, f.stack.Busy())
}

func TestBusy_RejectsMutations(t *testing.T) {
	f := newFixture()
	anim := &manualTransition{}

	_, _ = f.stack.Push(screen{Name: "A"})
	_, _ = f.stack.Push(screen{Name: "B"})
	_, err := f.stack.PopWithTransition(anim)
	require.NoError(t, err)

	_, err = f.stack.Push(screen{Name: "C"})
	assert.True(t, viewstack.IsBusy(err))
	_, err = f.stack.PushWithTransition(screen{Name: "C"}, anim)
	assert.True(t, viewstack.IsBusy(err))
	_, err = f.stack.Pop()
	assert.True(t, viewstack.IsBusy(err))
	_, err = f.stack.PopWithTransition(anim)
	assert.True(t, viewstack.IsBusy(err))
	err = f.stack.Restore(memStore{}, "stack")
	assert.True(t, viewstack.IsBusy(err))

	assert.Equal(t, 0, f.delegate.exhausted)
	assert.Equal(t, 1, f.stack.Size())

	anim.finish()

	_, err = f.stack.Push(screen{Name: "C"})
	assert.NoError(t, err)
}

func TestBusy_ObserversCannotMutateDuringAnimatedPush(t *testing.T) {
	f := newFixture()
	anim := &manualTransition{}

	_, _ = f.stack.Push(screen{Name: "A"})

	var popErr, pushErr error
	armed := true
	f.stack.Observe(func() {
		if !armed {
			return
		}
		armed = false
		_, popErr = f.stack.Pop()
		_, pushErr = f.stack.Push(screen{Name: "C"})
	})

	_, err := f.stack.PushWithTransition(layoutScreen{Name: "B"}, anim)
	require.NoError(t, err)
	incoming := lastLayout

	assert.True(t, viewstack.IsBusy(popErr))
	assert.True(t, viewstack.IsBusy(pushErr))
	assert.Equal(t, 2, f.stack.Size())
	assert.Equal(t, 2, f.container.ChildCount())

	incoming.layout(320, 240)
	anim.finish()

	assert.False(t, f.stack.Busy())
	_, err = f.stack.Push(screen{Name: "D"})
	assert.NoError(t, err)
}

func TestClear_FromObserverDuringAnimatedPush(t *testing.T) {
	f := newFixture()
	anim := &manualTransition{}

	_, _ = f.stack.Push(screen{Name: "A"})

	armed := true
	f.stack.Observe(func() {
		if armed {
			armed = false
			f.stack.Clear()
		}
	})

	_, err := f.stack.PushWithTransition(layoutScreen{Name: "B"}, anim)
	require.NoError(t, err)
	incoming := lastLayout

	assert.Equal(t, 0, f.stack.Size())
	assert.False(t, f.stack.Busy())
	assert.Empty(t, incoming.listeners, "no gate is armed on a cleared entry")

	incoming.layout(320, 240)
	assert.Empty(t, anim.built)

	_, err = f.stack.Push(screen{Name: "C"})
	assert.NoError(t, err)
}

func TestClear_DuringTransitionAbandonsCompletion(t *testing.T) {
	f := newFixture()
	anim := &manualTransition{}

	_, _ = f.stack.Push(screen{Name: "A"})
	_, _ = f.stack.Push(screen{Name: "B"})
	_, err := f.stack.PopWithTransition(anim)
	require.NoError(t, err)
	f.observer.changes = 0

	f.stack.Clear()
	assert.Equal(t, 0, f.container.ChildCount())
	assert.False(t, f.stack.Busy())
	assert.Equal(t, 1, f.observer.changes)

	_, _ = f.stack.Push(screen{Name: "C"})
	anim.finish()

	assert.Equal(t, 1, f.stack.Size())
	assert.Equal(t, 1, f.container.ChildCount())
	assert.Equal(t, 2, f.observer.changes, "abandoned completion does not notify")
}

func TestClear_CancelsPendingLayoutGate(t *testing.T) {
	f := newFixture()
	anim := &manualTransition{}

	_, _ = f.stack.Push(screen{Name: "A"})
	_, err := f.stack.PushWithTransition(layoutScreen{Name: "B"}, anim)
	require.NoError(t, err)
	incoming := lastLayout

	f.stack.Clear()
	incoming.layout(100, 100)

	assert.Empty(t, anim.built)
	assert.Empty(t, incoming.listeners)
}

func TestStateful_CapturedWhenHidden(t *testing.T) {
	f := newFixture()

	c, _ := f.stack.Push(statefulScreen{Name: "list"})
	c.(*statefulComponent).selected = 4
	_, _ = f.stack.Push(screen{Name: "detail"})

	entries := f.stack.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 4, entries[0].State["selected"])
	assert.Same(t, c, entries[0].Component())
}
