package input

import (
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestKeyboardHoldWindow(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	kb := NewKeyboard(clock, 100*time.Millisecond)

	kb.Press(KeyLeft)
	assert.False(t, kb.Pressed(KeyLeft), "not visible before latch")

	kb.Latch()
	assert.True(t, kb.Pressed(KeyLeft))
	assert.True(t, kb.JustPressed(KeyLeft))

	clock.advance(50 * time.Millisecond)
	kb.Latch()
	assert.True(t, kb.Pressed(KeyLeft), "held inside the window")
	assert.False(t, kb.JustPressed(KeyLeft))

	// Auto-repeat keeps the key held without a new edge
	kb.Press(KeyLeft)
	clock.advance(80 * time.Millisecond)
	kb.Latch()
	assert.True(t, kb.Pressed(KeyLeft))
	assert.False(t, kb.JustPressed(KeyLeft))

	clock.advance(200 * time.Millisecond)
	kb.Latch()
	assert.False(t, kb.Pressed(KeyLeft), "released after the window")
}

func TestKeyboardIgnoresUnknownKeys(t *testing.T) {
	kb := NewKeyboard(nil, 0)
	kb.Press(KeyNone)
	kb.Press(Key(200))
	kb.Latch()
	assert.False(t, kb.Pressed(KeyNone))
	assert.False(t, kb.Pressed(Key(200)))
	assert.False(t, kb.JustPressed(Key(200)))
}

func TestKeyboardConcurrentPress(t *testing.T) {
	kb := NewKeyboard(nil, time.Second)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				kb.Press(KeyFire)
			}
		}()
	}
	for range 10 {
		kb.Latch()
	}
	wg.Wait()
	kb.Latch()
	assert.True(t, kb.Pressed(KeyFire))
}

func TestScriptFiresPeriodically(t *testing.T) {
	s := &Script{FireEvery: 3, SweepTicks: 2}
	var fired []int
	var left []bool
	for range 6 {
		s.Latch()
		if s.JustPressed(KeyFire) {
			fired = append(fired, s.Tick())
		}
		left = append(left, s.Pressed(KeyLeft))
		assert.NotEqual(t, s.Pressed(KeyLeft), s.Pressed(KeyRight))
	}
	assert.Equal(t, []int{3, 6}, fired)
	assert.Equal(t, []bool{true, false, false, true, true, false}, left)
}

func TestKeyTableFromTcell(t *testing.T) {
	table := DefaultKeyTable()

	cases := []struct {
		ev   *tcell.EventKey
		want Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft, true},
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), KeyRight, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyFire, true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyQuit, true},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), KeyNone, false},
	}
	for _, tc := range cases {
		got, ok := table.FromTcell(tc.ev)
		assert.Equal(t, tc.ok, ok, "%v", tc.ev.Name())
		assert.Equal(t, tc.want, got)
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "fire", KeyFire.String())
	assert.Equal(t, "none", Key(77).String())
}
