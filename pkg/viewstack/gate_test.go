package viewstack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
)

func TestFirstLayoutGate_FiresOnceOnNonzeroSize(t *testing.T) {
	c := newLayoutComponent("A")
	fired := 0
	gate := viewstack.NewFirstLayoutGate(c, func() { fired++ })

	gate.Arm()
	assert.True(t, gate.Pending())
	assert.Len(t, c.listeners, 1)

	c.layout(100, 0)
	assert.Equal(t, 0, fired)

	c.layout(100, 50)
	assert.Equal(t, 1, fired)
	assert.True(t, gate.Fired())
	assert.False(t, gate.Pending())
	assert.Empty(t, c.listeners)

	c.layout(200, 100)
	assert.Equal(t, 1, fired)
}

func TestFirstLayoutGate_AlreadyLaidOut(t *testing.T) {
	c := newLayoutComponent("A")
	c.width, c.height = 10, 10
	fired := 0

	viewstack.NewFirstLayoutGate(c, func() { fired++ }).Arm()

	assert.Equal(t, 1, fired)
	assert.Empty(t, c.listeners)
}

func TestFirstLayoutGate_NotLayoutable(t *testing.T) {
	fired := 0
	gate := viewstack.NewFirstLayoutGate(newFakeComponent("A"), func() { fired++ })

	assert.Equal(t, 0, fired, "nothing happens before Arm")
	gate.Arm()
	gate.Arm()
	assert.Equal(t, 1, fired)
}

func TestFirstLayoutGate_CancelBeforeLayout(t *testing.T) {
	c := newLayoutComponent("A")
	fired := 0
	gate := viewstack.NewFirstLayoutGate(c, func() { fired++ })

	gate.Arm()
	gate.Cancel()
	assert.Empty(t, c.listeners)

	c.layout(100, 100)
	assert.Equal(t, 0, fired)
	assert.False(t, gate.Fired())
	assert.False(t, gate.Pending())
}

func TestFirstLayoutGate_CancelBeforeArm(t *testing.T) {
	fired := 0
	gate := viewstack.NewFirstLayoutGate(newFakeComponent("A"), func() { fired++ })

	gate.Cancel()
	gate.Arm()
	assert.Equal(t, 0, fired)
}
