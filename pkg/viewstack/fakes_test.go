package viewstack_test

import (
	"errors"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
)

// fakeComponent is a plain component with no layout reporting.
type fakeComponent struct {
	name    string
	visible bool
}

func newFakeComponent(name string) *fakeComponent {
	return &fakeComponent{name: name, visible: true}
}

func (c *fakeComponent) SetVisible(visible bool) { c.visible = visible }
func (c *fakeComponent) Visible() bool { return c.visible }

// layoutComponent reports layout passes driven by the test.
type layoutComponent struct {
	fakeComponent
	width, height int
	listeners     map[int]func()
	nextID        int
}

func newLayoutComponent(name string) *layoutComponent {
	return &layoutComponent{
		fakeComponent: fakeComponent{name: name, visible: true},
		listeners:     make(map[int]func()),
	}
}

func (c *layoutComponent) Size() (int, int) { return c.width, c.height }

func (c *layoutComponent) AddLayoutListener(fn func()) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

func (c *layoutComponent) layout(w, h int) {
	c.width, c.height = w, h
	fns := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

// statefulComponent remembers a selection index.
type statefulComponent struct {
	fakeComponent
	selected int
	restored bool
}

func (c *statefulComponent) SaveState(state viewstack.State) {
	state["selected"] = c.selected
}

func (c *statefulComponent) RestoreState(state viewstack.State) {
	// JSON numbers come back as float64.
	switch v := state["selected"].(type) {
	case int:
		c.selected = v
	case float64:
		c.selected = int(v)
	}
	c.restored = true
}

// fakeContainer records children in mount order.
type fakeContainer struct {
	children []viewstack.Component
}

func (c *fakeContainer) AddChild(child viewstack.Component) {
	c.children = append(c.children, child)
}

func (c *fakeContainer) RemoveChild(child viewstack.Component) {
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

func (c *fakeContainer) ChildCount() int { return len(c.children) }
func (c *fakeContainer) ChildAt(i int) viewstack.Component { return c.children[i] }
func (c *fakeContainer) RemoveAllChildren() { c.children = nil }
func (c *fakeContainer) visibleCount() (n int) {
	for _, child := range c.children {
		if child.Visible() {
			n++
		}
	}
	return n
}

// screen is a comparable factory producing fakeComponents.
type screen struct {
	Name string `json:"name"`
}

func (s screen) CreateComponent(viewstack.RenderContext, viewstack.Container) (viewstack.Component, error) {
	return newFakeComponent(s.Name), nil
}

// layoutScreen produces components that only get a size when the test lays them out.
type layoutScreen struct {
	Name string `json:"name"`
}

var lastLayout *layoutComponent

func (s layoutScreen) CreateComponent(viewstack.RenderContext, viewstack.Container) (viewstack.Component, error) {
	lastLayout = newLayoutComponent(s.Name)
	return lastLayout, nil
}

// statefulScreen produces statefulComponents.
type statefulScreen struct {
	Name string `json:"name"`
}

func (s statefulScreen) CreateComponent(viewstack.RenderContext, viewstack.Container) (viewstack.Component, error) {
	return &statefulComponent{fakeComponent: fakeComponent{name: s.Name, visible: true}}, nil
}

var errBroken = errors.New("broken factory")

type brokenScreen struct{}

func (brokenScreen) CreateComponent(viewstack.RenderContext, viewstack.Container) (viewstack.Component, error) {
	return nil, errBroken
}

// delegate counts exhaustion callbacks.
type delegate struct {
	exhausted int
}

func (d *delegate) OnStackExhausted() { d.exhausted++ }

// observer counts change notifications.
type observer struct {
	changes int
}

func (o *observer) OnStackChanged() { o.changes++ }

// manualTransition holds its completion until the test calls finish.
type manualTransition struct {
	built []viewstack.Component
	dones []func()
}

func (m *manualTransition) Build(c viewstack.Component) (viewstack.Transition, error) {
	m.built = append(m.built, c)
	return viewstack.TransitionFunc(func(done func()) {
		m.dones = append(m.dones, done)
	}), nil
}

func (m *manualTransition) finish() {
	for _, done := range m.dones {
		done()
	}
	m.dones = nil
}

var errBuild = errors.New("cannot build")

var failingTransition = viewstack.TransitionBuilderFunc(func(viewstack.Component) (viewstack.Transition, error) {
	return nil, errBuild
})

// memStore is a minimal StateStore.
type memStore map[string][]byte

func (m memStore) Get(key string) ([]byte, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memStore) Put(key string, value []byte) error {
	m[key] = value
	return nil
}

func newRegistry() *viewstack.FactoryRegistry {
	return viewstack.NewFactoryRegistry().
		MustRegister("screen", screen{}).
		MustRegister("layout", layoutScreen{}).
		MustRegister("stateful", statefulScreen{})
}

type fixture struct {
	container *fakeContainer
	delegate  *delegate
	observer  *observer
	stack     *viewstack.ViewStack
}

func newFixture(opts ...viewstack.Option) *fixture {
	f := &fixture{
		container: &fakeContainer{},
		delegate:  &delegate{},
		observer:  &observer{},
	}
	opts = append([]viewstack.Option{viewstack.WithRegistry(newRegistry())}, opts...)
	s, err := viewstack.New(f.container, f.delegate, opts...)
	if err != nil {
		panic(err)
	}
	s.AddObserver(f.observer)
	f.stack = s
	return f
}
