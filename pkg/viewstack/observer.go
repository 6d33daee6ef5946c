package viewstack

import "reflect"

// StackObserver is notified after the stack's logical contents change.
//
// For a plain push or pop this happens once, after the container is updated.
// For an animated push it happens right after the new component is mounted,
// before the transition runs. For an animated pop it happens after the
// transition completes and the outgoing component is unmounted.
type StackObserver interface {
	OnStackChanged()
}

// ObserverFunc adapts a function to StackObserver.
// AddObserver and RemoveObserver match function observers by code pointer,
// so two closures built from the same literal count as one observer. Use
// ViewStack.Observe to register those independently.
type ObserverFunc func()

func (f ObserverFunc) OnStackChanged() { f() }

// StackDelegate decides what happens when the user backs out of the last screen.
// The stack never removes its last entry on Pop; it calls OnStackExhausted and
// lets the host tear down whatever surrounds it.
type StackDelegate interface {
	OnStackExhausted()
}

// DelegateFunc adapts a function to StackDelegate.
type DelegateFunc func()

func (f DelegateFunc) OnStackExhausted() { f() }

// sameObserver compares observers without panicking on uncomparable
// dynamic types. Functions are matched by code pointer.
func sameObserver(a, b StackObserver) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}
