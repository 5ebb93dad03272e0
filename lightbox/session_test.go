package lightbox

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Src: fmt.Sprintf("/public/img/%d.jpg", i), Alt: fmt.Sprintf("image %d", i)}
	}
	return items
}

func TestSession_ZeroValueIsClosed(t *testing.T) {
	var s Session

	assert.False(t, s.IsOpen())
	assert.Equal(t, -1, s.Index())
	assert.Equal(t, 0, s.Len())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestSession_OpenAtEveryValidIndex(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for start := 0; start < n; start++ {
			var s Session
			require.True(t, s.Open(makeItems(n), start))
			assert.True(t, s.IsOpen())
			assert.Equal(t, start, s.Index())
			assert.Equal(t, n, s.Len())
		}
	}
}

func TestSession_OpenRefusesInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		start int
	}{
		{"nil items", nil, 0},
		{"empty items", []Item{}, 0},
		{"empty items any start", []Item{}, 3},
		{"negative start", makeItems(3), -1},
		{"start past end", makeItems(3), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Session
			assert.False(t, s.Open(tt.items, tt.start))
			assert.False(t, s.IsOpen())
		})
	}
}

func TestSession_InvalidOpenKeepsExistingSession(t *testing.T) {
	var s Session
	require.True(t, s.Open(makeItems(4), 2))

	assert.False(t, s.Open(nil, 0))
	assert.True(t, s.IsOpen())
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, 4, s.Len())
}

func TestSession_OpenWhileOpenReplaces(t *testing.T) {
	var s Session
	require.True(t, s.Open(makeItems(4), 2))
	require.True(t, s.Open(makeItems(7), 5))

	assert.Equal(t, 5, s.Index())
	assert.Equal(t, 7, s.Len())
}

func TestSession_ItemsAreFixedForTheSession(t *testing.T) {
	items := makeItems(3)
	var s Session
	require.True(t, s.Open(items, 0))

	items[0].Src = "/changed.jpg"
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "/public/img/0.jpg", cur.Src)

	got := s.Items()
	got[1].Src = "/changed.jpg"
	assert.Equal(t, "/public/img/1.jpg", s.Items()[1].Src)
}

func TestSession_NextAndPrevWrap(t *testing.T) {
	var s Session
	require.True(t, s.Open(makeItems(3), 2))

	s.Next()
	assert.Equal(t, 0, s.Index(), "next from last wraps to first")

	s.Prev()
	assert.Equal(t, 2, s.Index(), "prev from first wraps to last")
}

func TestSession_FullCycleIsIdentity(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for start := 0; start < n; start++ {
			var s Session
			require.True(t, s.Open(makeItems(n), start))

			for i := 0; i < n; i++ {
				s.Next()
			}
			assert.Equal(t, start, s.Index(), "n=%d next cycle", n)

			for i := 0; i < n; i++ {
				s.Prev()
			}
			assert.Equal(t, start, s.Index(), "n=%d prev cycle", n)
		}
	}
}

func TestSession_NextPrevAreInverse(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			var s Session
			require.True(t, s.Open(makeItems(n), start))

			s.Next()
			s.Prev()
			assert.Equal(t, start, s.Index())

			s.Prev()
			s.Next()
			assert.Equal(t, start, s.Index())
		}
	}
}

func TestSession_NavigationWhileClosedIsNoop(t *testing.T) {
	var s Session
	s.Next()
	s.Prev()
	assert.False(t, s.JumpTo(0))
	assert.False(t, s.IsOpen())
	assert.Equal(t, -1, s.NextIndex())
	assert.Equal(t, -1, s.PrevIndex())
}

func TestSession_JumpTo(t *testing.T) {
	var s Session
	require.True(t, s.Open(makeItems(5), 0))

	assert.True(t, s.JumpTo(4))
	assert.Equal(t, 4, s.Index())

	assert.False(t, s.JumpTo(5))
	assert.False(t, s.JumpTo(-1))
	assert.Equal(t, 4, s.Index())
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	var once, twice Session
	require.True(t, once.Open(makeItems(3), 1))
	require.True(t, twice.Open(makeItems(3), 1))

	assert.True(t, once.Close())
	assert.True(t, twice.Close())
	assert.False(t, twice.Close())

	assert.Equal(t, once.IsOpen(), twice.IsOpen())
	assert.Equal(t, once.Index(), twice.Index())
	assert.Equal(t, once.Len(), twice.Len())
}

func TestSession_ReopenAfterClose(t *testing.T) {
	var s Session
	require.True(t, s.Open(makeItems(3), 1))
	s.Close()

	require.True(t, s.Open(makeItems(2), 0))
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 2, s.Len())
}
