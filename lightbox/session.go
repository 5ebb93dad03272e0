// Package lightbox implements the focused image viewer shared by the gallery,
// the bookshelf and article bodies: a small state machine over an ordered
// sequence of items, the binding of global key and scroll effects for the
// lifetime of an open session, item resolution from static lists or rendered
// markup, and the overlay that renders a session.
package lightbox

// Item is one displayable image. Identity is positional: two items with the
// same Src are still distinct entries in a session.
type Item struct {
	Src     string
	Alt     string
	Caption string
}

// Session holds the state of one viewer. The zero value is Closed.
//
// While open, items is non-empty and index is within [0, len(items)).
// Closing keeps the last items around; they are overwritten by the next Open.
type Session struct {
	items []Item
	index int
	open  bool
}

// Open starts a session over items at start. It refuses (returns false and
// leaves the state unchanged) when items is empty or start is out of range.
// Opening while already open replaces the session.
func (s *Session) Open(items []Item, start int) bool {
	if len(items) == 0 || start < 0 || start >= len(items) {
		return false
	}
	s.items = append([]Item(nil), items...)
	s.index = start
	s.open = true
	return true
}

// Next advances to the following item, wrapping from last to first.
func (s *Session) Next() {
	if !s.open {
		return
	}
	s.index = s.NextIndex()
}

// Prev moves to the preceding item, wrapping from first to last.
func (s *Session) Prev() {
	if !s.open {
		return
	}
	s.index = s.PrevIndex()
}

// NextIndex reports where Next would land without moving. It returns -1 when
// the session is closed.
func (s *Session) NextIndex() int {
	if !s.open {
		return -1
	}
	return (s.index + 1) % len(s.items)
}

// PrevIndex reports where Prev would land without moving. It returns -1 when
// the session is closed.
func (s *Session) PrevIndex() int {
	if !s.open {
		return -1
	}
	return (s.index - 1 + len(s.items)) % len(s.items)
}

// JumpTo selects index directly. Out-of-range indexes and closed sessions are
// ignored.
func (s *Session) JumpTo(index int) bool {
	if !s.open || index < 0 || index >= len(s.items) {
		return false
	}
	s.index = index
	return true
}

// Close ends the session. It reports whether a transition happened, so
// closing twice is a no-op the second time.
func (s *Session) Close() bool {
	if !s.open {
		return false
	}
	s.open = false
	return true
}

func (s *Session) IsOpen() bool { return s.open }

// Index returns the current position, or -1 when closed.
func (s *Session) Index() int {
	if !s.open {
		return -1
	}
	return s.index
}

// Len returns the number of items in the open session, or 0 when closed.
func (s *Session) Len() int {
	if !s.open {
		return 0
	}
	return len(s.items)
}

// Current returns the item being shown.
func (s *Session) Current() (Item, bool) {
	if !s.open {
		return Item{}, false
	}
	return s.items[s.index], true
}

// Items returns a copy of the open session's items.
func (s *Session) Items() []Item {
	if !s.open {
		return nil
	}
	return append([]Item(nil), s.items...)
}
