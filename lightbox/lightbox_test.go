package lightbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost counts acquisitions and releases and lets tests press keys.
type fakeHost struct {
	binds, unbinds int
	locks, unlocks int
	handler        func(Key)
}

func (h *fakeHost) BindKeys(handler func(Key)) func() {
	h.binds++
	h.handler = handler
	return func() {
		h.unbinds++
		h.handler = nil
	}
}

func (h *fakeHost) LockScroll() func() {
	h.locks++
	return func() { h.unlocks++ }
}

func (h *fakeHost) press(keys ...Key) {
	for _, k := range keys {
		if h.handler != nil {
			h.handler(k)
		}
	}
}

func (h *fakeHost) scrollLocked() bool { return h.locks > h.unlocks }

func TestLightbox_OpenActivatesOnce(t *testing.T) {
	host := &fakeHost{}
	lb := New(host)

	require.True(t, lb.Open(makeItems(3), 0))
	require.True(t, lb.Open(makeItems(5), 4))
	lb.Next()
	lb.Prev()

	assert.Equal(t, 1, host.binds)
	assert.Equal(t, 1, host.locks)
	assert.True(t, host.scrollLocked())
}

// nilUndoHost returns no undo funcs, as a host with nothing to release would.
type nilUndoHost struct{ binds, locks int }

func (h *nilUndoHost) BindKeys(func(Key)) func() { h.binds++; return nil }
func (h *nilUndoHost) LockScroll() func()       { h.locks++; return nil }

func TestLightbox_NilUndoHostActivatesOncePerSession(t *testing.T) {
	host := &nilUndoHost{}
	lb := New(host)

	require.True(t, lb.Open(makeItems(3), 0))
	require.True(t, lb.Open(makeItems(3), 1))
	assert.Equal(t, 1, host.binds)
	assert.Equal(t, 1, host.locks)

	lb.Close()
	require.True(t, lb.Open(makeItems(3), 2))
	assert.Equal(t, 2, host.binds, "a new session after close binds again")
	assert.Equal(t, 2, host.locks)
}

func TestLightbox_InvalidOpenDoesNotActivate(t *testing.T) {
	host := &fakeHost{}
	lb := New(host)

	assert.False(t, lb.Open(nil, 0))
	assert.False(t, lb.Open(makeItems(2), 2))

	assert.Equal(t, 0, host.binds)
	assert.Equal(t, 0, host.locks)
	assert.False(t, lb.Session().IsOpen())
}

func TestLightbox_CloseDeactivatesOnce(t *testing.T) {
	host := &fakeHost{}
	lb := New(host)
	require.True(t, lb.Open(makeItems(3), 0))

	lb.Close()
	lb.Close()

	assert.Equal(t, 1, host.unbinds)
	assert.Equal(t, 1, host.unlocks)
	assert.False(t, host.scrollLocked())
}

func TestLightbox_UnmountReleasesWhileOpen(t *testing.T) {
	host := &fakeHost{}
	lb := New(host)
	require.True(t, lb.Open(makeItems(3), 1))

	lb.Unmount()

	assert.False(t, lb.Session().IsOpen())
	assert.Equal(t, 1, host.unbinds)
	assert.False(t, host.scrollLocked())

	lb.Unmount()
	assert.Equal(t, 1, host.unbinds, "second unmount has nothing to release")
}

func TestLightbox_CyclesPairActivations(t *testing.T) {
	host := &fakeHost{}
	lb := New(host)

	for i := 0; i < 4; i++ {
		require.True(t, lb.Open(makeItems(2), 0))
		lb.Close()
	}

	assert.Equal(t, 4, host.binds)
	assert.Equal(t, 4, host.unbinds)
	assert.Equal(t, 4, host.locks)
	assert.Equal(t, 4, host.unlocks)
}

func TestLightbox_KeysDriveTransitions(t *testing.T) {
	host := &fakeHost{}
	lb := New(host)
	require.True(t, lb.Open(makeItems(4), 0))

	host.press(KeyArrowRight, KeyArrowRight)
	assert.Equal(t, 2, lb.Session().Index())

	host.press(KeyArrowLeft)
	assert.Equal(t, 1, lb.Session().Index())

	host.press(Key("Enter"))
	assert.Equal(t, 1, lb.Session().Index(), "unbound keys are ignored")

	host.press(KeyEscape)
	assert.False(t, lb.Session().IsOpen())
	assert.Nil(t, host.handler, "listener removed on close")
}

func TestLightbox_Apply(t *testing.T) {
	lb := New(&fakeHost{})
	require.True(t, lb.Open(makeItems(5), 0))

	lb.Apply(OpJump, 3)
	assert.Equal(t, 3, lb.Session().Index())
	lb.Apply(OpNext, 0)
	assert.Equal(t, 4, lb.Session().Index())
	lb.Apply(OpPrev, 0)
	assert.Equal(t, 3, lb.Session().Index())
	lb.Apply(OpNone, 0)
	assert.Equal(t, 3, lb.Session().Index())
	lb.Apply(OpClose, 0)
	assert.False(t, lb.Session().IsOpen())
}

func TestLightbox_NilHost(t *testing.T) {
	lb := New(nil)
	require.True(t, lb.Open(makeItems(2), 1))
	lb.Next()
	assert.Equal(t, 0, lb.Session().Index())
	lb.Close()
	lb.Unmount()
}

func TestParseOp(t *testing.T) {
	assert.Equal(t, OpNext, ParseOp("next"))
	assert.Equal(t, OpPrev, ParseOp("prev"))
	assert.Equal(t, OpClose, ParseOp("close"))
	assert.Equal(t, OpJump, ParseOp("jump"))
	assert.Equal(t, OpNone, ParseOp("explode"))
	assert.Equal(t, OpNone, ParseOp(""))
}

func TestKeymap_KeyFor(t *testing.T) {
	k, ok := DefaultKeymap.KeyFor(OpClose)
	require.True(t, ok)
	assert.Equal(t, KeyEscape, k)

	_, ok = DefaultKeymap.KeyFor(OpJump)
	assert.False(t, ok)
}

// Gallery with 9 images: open at position 2, three rights, then Escape.
func TestScenario_Gallery(t *testing.T) {
	host := &fakeHost{}
	lb := New(host)
	items, start, err := StaticSource(makeItems(9)).Resolve(context.Background(), Trigger{Position: 2})
	require.NoError(t, err)
	require.True(t, lb.Open(items, start))
	assert.Equal(t, "3 / 9", FrameOf(lb.Session()).Counter)

	host.press(KeyArrowRight, KeyArrowRight, KeyArrowRight)
	assert.Equal(t, "6 / 9", FrameOf(lb.Session()).Counter)

	host.press(KeyEscape)
	assert.False(t, lb.Session().IsOpen())
	assert.False(t, host.scrollLocked())
}

// Bookshelf with 18 books: open on the last card, then one left.
func TestScenario_Bookshelf(t *testing.T) {
	host := &fakeHost{}
	lb := New(host)
	require.True(t, lb.Open(makeItems(18), 17))
	assert.Equal(t, 17, lb.Session().Index())

	host.press(KeyArrowLeft)
	assert.Equal(t, 16, lb.Session().Index())
}

// A single item shows no navigation and arrow keys change nothing.
func TestScenario_SingleItem(t *testing.T) {
	host := &fakeHost{}
	lb := New(host)
	require.True(t, lb.Open(makeItems(1), 0))

	f := FrameOf(lb.Session())
	assert.False(t, f.ShowNav)
	assert.Empty(t, f.Counter)

	host.press(KeyArrowLeft, KeyArrowRight)
	assert.True(t, lb.Session().IsOpen())
	assert.Equal(t, 0, lb.Session().Index())
}
