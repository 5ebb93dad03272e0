package preview

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/folio/lightbox"
)

func gallery(n int) []lightbox.Item {
	items := make([]lightbox.Item, n)
	for i := range items {
		items[i] = lightbox.Item{
			Src:     fmt.Sprintf("/public/photos/%d.jpg", i+1),
			Alt:     fmt.Sprintf("Photo %d", i+1),
			Caption: fmt.Sprintf("Caption %d", i+1),
		}
	}
	return items
}

func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyPgDn  = tea.KeyMsg{Type: tea.KeyPgDown}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func digit(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGalleryWalkthrough(t *testing.T) {
	m := New("Gallery", gallery(9))
	press(m, keyDown, keyDown, keyEnter)

	s := m.Lightbox().Session()
	require.True(t, s.IsOpen())
	assert.Equal(t, 2, s.Index())
	assert.Contains(t, m.View(), "3 / 9")
	assert.True(t, m.host.locked, "scroll lock should be held while open")
	assert.NotNil(t, m.host.handler, "keys should be bound while open")

	press(m, keyRight, keyRight, keyRight)
	assert.Equal(t, 5, s.Index())
	assert.Contains(t, m.View(), "6 / 9")
	assert.Contains(t, m.View(), "Caption 6")

	press(m, keyEsc)
	assert.False(t, s.IsOpen())
	assert.False(t, m.host.locked)
	assert.Nil(t, m.host.handler)
	assert.Contains(t, m.View(), "Photo 1")
}

func TestWrapAround(t *testing.T) {
	m := New("Bookshelf", gallery(17))
	press(m, keyEnter, keyLeft)
	assert.Equal(t, 16, m.Lightbox().Session().Index())
	press(m, keyRight)
	assert.Equal(t, 0, m.Lightbox().Session().Index())
}

func TestDigitJump(t *testing.T) {
	m := New("Gallery", gallery(4))
	press(m, keyEnter, digit('3'))
	assert.Equal(t, 2, m.Lightbox().Session().Index())

	// Out of range: stays put.
	press(m, digit('9'))
	assert.Equal(t, 2, m.Lightbox().Session().Index())
}

func TestSingleItemHasNoCounter(t *testing.T) {
	m := New("Gallery", gallery(1))
	press(m, keyEnter)
	require.True(t, m.Lightbox().Session().IsOpen())
	assert.NotContains(t, m.View(), "1 / 1")

	press(m, keyRight, keyLeft)
	assert.Equal(t, 0, m.Lightbox().Session().Index())
}

func TestKeysIgnoredWhileClosed(t *testing.T) {
	m := New("Gallery", gallery(3))
	press(m, keyRight, keyEsc, digit('2'))
	assert.False(t, m.Lightbox().Session().IsOpen())
	assert.Equal(t, 0, m.Cursor())
}

func TestScrollLockedWhileOpen(t *testing.T) {
	m := New("Gallery", gallery(20))
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 8})

	press(m, keyPgDn)
	scrolled := m.ListOffset()
	require.Greater(t, scrolled, 0, "list should scroll while closed")

	press(m, keyEnter, keyPgDn, keyPgDn)
	assert.Equal(t, scrolled, m.ListOffset(), "list must not scroll under the viewer")

	press(m, keyEsc, keyPgDn)
	assert.Greater(t, m.ListOffset(), scrolled)
}

func TestQuitUnmounts(t *testing.T) {
	m := New("Gallery", gallery(3))
	press(m, keyEnter)
	_, cmd := m.Update(keyQuit)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Lightbox().Session().IsOpen())
	assert.False(t, m.host.locked)
	assert.Nil(t, m.host.handler)
}

func TestEmptyList(t *testing.T) {
	m := New("Bookshelf", nil)
	press(m, keyEnter)
	assert.False(t, m.Lightbox().Session().IsOpen())
	assert.Contains(t, m.View(), "Nothing to show.")
}
