package viewstack_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
)

type unregisteredScreen struct{}

func (unregisteredScreen) CreateComponent(viewstack.RenderContext, viewstack.Container) (viewstack.Component, error) {
	return newFakeComponent("unregistered"), nil
}

func TestSave_InvalidArguments(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name  string
		store viewstack.StateStore
		key   string
		msg   string
	}{
		{"nil store", nil, "stack", "store == nil"},
		{"empty key", memStore{}, "", "key is empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, op := range []func(viewstack.StateStore, string) error{f.stack.Save, f.stack.Restore} {
				err := op(tc.store, tc.key)
				require.Error(t, err)
				assert.True(t, viewstack.IsInvalidArgument(err))

				var se *viewstack.StackError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, tc.msg, se.Msg)
			}
		})
	}
}

func TestRestore_MissingState(t *testing.T) {
	f := newFixture()

	err := f.stack.Restore(memStore{}, "stack")
	assert.True(t, viewstack.IsMissingState(err))
	assert.Equal(t, 0, f.stack.Size())
	assert.Equal(t, 0, f.observer.changes)
}

func TestSaveRestore_RoundTrip(t *testing.T) {
	store := memStore{}

	original := newFixture()
	for _, name := range []string{"A", "B", "C"} {
		_, err := original.stack.Push(screen{Name: name})
		require.NoError(t, err)
	}
	require.NoError(t, original.stack.Save(store, "stack"))

	rebuilt := newFixture()
	require.NoError(t, rebuilt.stack.Restore(store, "stack"))

	assert.Equal(t, original.stack.Size(), rebuilt.stack.Size())
	assert.Equal(t, original.stack.Factories(), rebuilt.stack.Factories())
	assert.Equal(t, 3, rebuilt.container.ChildCount())
	assert.Equal(t, 1, rebuilt.container.visibleCount())
	assert.True(t, rebuilt.container.ChildAt(2).Visible())
	assert.Equal(t, 1, rebuilt.observer.changes, "restore notifies once")

	top, err := rebuilt.stack.Peek()
	require.NoError(t, err)
	assert.Equal(t, screen{Name: "C"}, top)
}

func TestSaveRestore_EmptyStack(t *testing.T) {
	store := memStore{}

	require.NoError(t, newFixture().stack.Save(store, "stack"))

	rebuilt := newFixture()
	require.NoError(t, rebuilt.stack.Restore(store, "stack"))
	assert.Equal(t, 0, rebuilt.stack.Size())
}

func TestSaveRestore_StatefulComponents(t *testing.T) {
	store := memStore{}

	original := newFixture()
	c, err := original.stack.Push(statefulScreen{Name: "list"})
	require.NoError(t, err)
	c.(*statefulComponent).selected = 7
	_, err = original.stack.Push(screen{Name: "detail"})
	require.NoError(t, err)
	require.NoError(t, original.stack.Save(store, "stack"))

	rebuilt := newFixture()
	require.NoError(t, rebuilt.stack.Restore(store, "stack"))

	entries := rebuilt.stack.Entries()
	require.Len(t, entries, 2)
	restored, ok := entries[0].Component().(*statefulComponent)
	require.True(t, ok)
	assert.True(t, restored.restored)
	assert.Equal(t, 7, restored.selected)
	assert.False(t, restored.Visible())
}

func TestSave_UnregisteredFactory(t *testing.T) {
	f := newFixture()
	_, err := f.stack.Push(unregisteredScreen{})
	require.NoError(t, err)

	store := memStore{}
	err = f.stack.Save(store, "stack")
	assert.ErrorIs(t, err, viewstack.ErrUnknownFactory)
	assert.Empty(t, store)
}

func TestRestore_UnknownTypeLeavesStackUnchanged(t *testing.T) {
	store := memStore{
		"stack": []byte(`{"version":1,"entries":[{"type":"screen","factory":{"name":"A"}},{"type":"gone","factory":{}}]}`),
	}

	f := newFixture()
	err := f.stack.Restore(store, "stack")
	assert.ErrorIs(t, err, viewstack.ErrUnknownFactory)
	assert.Equal(t, 0, f.stack.Size())
	assert.Equal(t, 0, f.container.ChildCount())
	assert.Equal(t, 0, f.observer.changes)
}

func TestRestore_FactoryErrorLeavesStackUnchanged(t *testing.T) {
	store := memStore{
		"stack": []byte(`{"version":1,"entries":[` +
			`{"type":"screen","factory":{"name":"A"}},` +
			`{"type":"broken","factory":{}},` +
			`{"type":"screen","factory":{"name":"C"}}]}`),
	}

	f := newFixture(viewstack.WithRegistry(newRegistry().MustRegister("broken", brokenScreen{})))
	err := f.stack.Restore(store, "stack")
	assert.ErrorIs(t, err, errBroken)
	assert.Equal(t, 0, f.stack.Size())
	assert.Equal(t, 0, f.container.ChildCount())
	assert.Equal(t, 0, f.observer.changes)
}

func TestRestore_UnsupportedVersion(t *testing.T) {
	store := memStore{"stack": []byte(`{"version":99,"entries":[]}`)}

	f := newFixture()
	err := f.stack.Restore(store, "stack")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported snapshot version 99")
}

func TestEncodeSnapshot_Golden(t *testing.T) {
	f := newFixture()
	_, _ = f.stack.Push(screen{Name: "A"})
	c, _ := f.stack.Push(statefulScreen{Name: "list"})
	c.(*statefulComponent).selected = 2
	_, _ = f.stack.Push(screen{Name: "C"})

	store := memStore{}
	require.NoError(t, f.stack.Save(store, "stack"))

	var pretty bytes.Buffer
	require.NoError(t, json.Indent(&pretty, store["stack"], "", "  "))

	g := goldie.New(t)
	g.Assert(t, "snapshot", pretty.Bytes())
}

func TestFactoryRegistry(t *testing.T) {
	r := viewstack.NewFactoryRegistry()

	require.NoError(t, r.Register("screen", screen{}))
	assert.True(t, viewstack.IsInvalidArgument(r.Register("screen", layoutScreen{})), "duplicate name")
	assert.True(t, viewstack.IsInvalidArgument(r.Register("other", screen{})), "duplicate type")
	assert.True(t, viewstack.IsInvalidArgument(r.Register("", layoutScreen{})))
	assert.True(t, viewstack.IsInvalidArgument(r.Register("nil", nil)))

	name, ok := r.Name(screen{Name: "anything"})
	assert.True(t, ok)
	assert.Equal(t, "screen", name)

	_, ok = r.Name(layoutScreen{})
	assert.False(t, ok)

	require.NoError(t, r.Register("layout", layoutScreen{}))
	assert.Equal(t, []string{"layout", "screen"}, r.Names())
}

type pointerScreen struct {
	ID int `json:"id"`
}

func (p *pointerScreen) CreateComponent(viewstack.RenderContext, viewstack.Container) (viewstack.Component, error) {
	return newFakeComponent("pointer"), nil
}

func TestDecodeSnapshot_PointerFactories(t *testing.T) {
	r := viewstack.NewFactoryRegistry().MustRegister("ptr", &pointerScreen{})

	data, err := viewstack.EncodeSnapshot(r, []*viewstack.StackEntry{{Factory: &pointerScreen{ID: 9}}})
	require.NoError(t, err)

	entries, err := viewstack.DecodeSnapshot(r, data)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, &pointerScreen{ID: 9}, entries[0].Factory)
}
