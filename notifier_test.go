package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock is a typical owner: it embeds Notifier and fires named events.
type clock struct {
	Notifier[int]
}

func (c *clock) tick(seconds int) {
	c.DispatchEvent("tick", seconds)
}

func TestNotifierSubscribeAndDispatch(t *testing.T) {
	c := &clock{}

	var got []int
	fn := func(v int) { got = append(got, v) }

	c.Subscribe("tick", fn)
	c.tick(1)
	c.tick(2)

	require.Equal(t, []int{1, 2}, got)
	assert.True(t, c.Has("tick", fn))
}

func TestNotifierAliases(t *testing.T) {
	c := &clock{}

	count := 0
	fn := func(v int) { count++ }

	c.Sub("tick", fn)
	assert.True(t, c.Has("tick", fn))

	c.Unsub("tick", fn)
	assert.False(t, c.Has("tick", fn))

	c.tick(1)
	require.Zero(t, count)
}

func TestNotifierOne(t *testing.T) {
	c := &clock{}

	count := 0
	fn := func(v int) { count++ }

	c.One("tick", fn)
	c.tick(1)
	c.tick(2)

	require.Equal(t, 1, count)
	assert.False(t, c.Has("tick", fn))
}

func TestNotifierNamesAreIndependent(t *testing.T) {
	c := &clock{}

	var ticks, tocks int
	c.Subscribe("tick", func(v int) { ticks++ })
	c.Subscribe("tock", func(v int) { tocks++ })

	c.DispatchEvent("tick", 1)
	c.DispatchEvent("tick", 2)
	c.DispatchEvent("tock", 3)

	require.Equal(t, 2, ticks)
	require.Equal(t, 1, tocks)
}

func TestNotifierUnknownNameIsSafe(t *testing.T) {
	c := &clock{}

	fn := func(v int) {}
	assert.False(t, c.Has("never-used", fn))
	require.NotPanics(t, func() { c.Unsubscribe("also-never-used", fn) })
	require.NotPanics(t, func() { c.DispatchEvent("empty", 0) })
}

func TestNotifierRemoveEvent(t *testing.T) {
	c := &clock{}

	count := 0
	fn := func(v int) { count++ }

	c.Subscribe("tick", fn)
	c.RemoveEvent("tick")

	c.tick(1)
	require.Zero(t, count)
	assert.False(t, c.Has("tick", fn))
}

func TestNotifierEventFor(t *testing.T) {
	c := &clock{}
	ev := c.EventFor("tick")

	// Consumers holding the view can manage subscriptions but not fire.
	_, canDispatch := ev.(interface{ Dispatch(int) })
	assert.False(t, canDispatch)

	var got []int
	ev.Subscribe(func(v int) { got = append(got, v) })

	c.tick(5)
	require.Equal(t, []int{5}, got)
}

func TestNotifierDispatchEventAsync(t *testing.T) {
	c := &clock{}
	tr := &tracker{}

	c.Subscribe("tick", func(v int) { tr.record("tick", v) })

	tr.wg.Add(1)
	c.DispatchEventAsync("tick", 8)

	require.True(t, tr.waitWithTimeout(2*time.Second))
	require.Equal(t, []string{"tick:8"}, tr.snapshot())
}
