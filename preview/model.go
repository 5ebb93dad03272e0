// Package preview is a terminal browser for a site's gallery or bookshelf.
// It drives the same lightbox session as the web viewer: Enter opens the
// selected item, Esc and the arrow keys work while the viewer is open, and
// the list cannot scroll underneath it.
package preview

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eringen/folio/lightbox"
)

// teaHost is the lightbox.Host for the terminal. Key events reach the
// handler only while it is bound; the list viewport ignores scroll keys
// while scroll is locked.
type teaHost struct {
	handler func(lightbox.Key)
	locked  bool
}

func (h *teaHost) BindKeys(handler func(lightbox.Key)) func() {
	h.handler = handler
	return func() { h.handler = nil }
}

func (h *teaHost) LockScroll() func() {
	h.locked = true
	return func() { h.locked = false }
}

// dispatch delivers k to the bound handler and reports whether one was bound.
func (h *teaHost) dispatch(k lightbox.Key) bool {
	if h.handler == nil {
		return false
	}
	h.handler(k)
	return true
}

// Model is the bubbletea model of the preview.
type Model struct {
	title  string
	items  []lightbox.Item
	cursor int

	lb   *lightbox.Lightbox
	host *teaHost

	list   viewport.Model
	keys   keyMap
	help   help.Model
	styles styles
	width  int
}

// New returns a preview over items.
func New(title string, items []lightbox.Item) *Model {
	host := &teaHost{}
	m := &Model{
		title:  title,
		items:  items,
		lb:     lightbox.New(host),
		host:   host,
		list:   viewport.New(80, 20),
		keys:   defaultKeys(),
		help:   help.New(),
		styles: newStyles(),
		width:  80,
	}
	m.refreshList()
	return m
}

// Run shows the preview until the user quits or ctx is done.
func Run(ctx context.Context, title string, items []lightbox.Item, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(title, items), opts...).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.list.Width = msg.Width
		m.list.Height = max(msg.Height-4, 1)
		m.refreshList()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.lb.Unmount()
			return m, tea.Quit
		}
		if m.lb.Session().IsOpen() {
			return m, m.handleViewerKey(msg)
		}
		return m, m.handleBrowseKey(msg)
	}
	return m, nil
}

// handleViewerKey routes keys while a session is open. Esc and the arrows
// go through the host binding; digits jump.
func (m *Model) handleViewerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		return m.scroll(msg)
	case key.Matches(msg, m.keys.Close):
		m.host.dispatch(lightbox.KeyEscape)
	case key.Matches(msg, m.keys.Prev):
		m.host.dispatch(lightbox.KeyArrowLeft)
	case key.Matches(msg, m.keys.Next):
		m.host.dispatch(lightbox.KeyArrowRight)
	case key.Matches(msg, m.keys.Jump):
		m.lb.JumpTo(int(msg.String()[0]-'1'))
	}
	return nil
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.refreshList()
		m.follow()
		return nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.refreshList()
		m.follow()
		return nil
	case key.Matches(msg, m.keys.Open):
		m.lb.Open(m.items, m.cursor)
		return nil
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		return m.scroll(msg)
	}
	return nil
}

// scroll pages the list unless the viewer holds the scroll lock.
func (m *Model) scroll(msg tea.KeyMsg) tea.Cmd {
	if m.host.locked {
		return nil
	}
	if key.Matches(msg, m.keys.PageUp) {
		m.list.PageUp()
	} else {
		m.list.PageDown()
	}
	return nil
}

// Cursor is the selected list position.
func (m *Model) Cursor() int { return m.cursor }

// Lightbox exposes the viewer driven by the model.
func (m *Model) Lightbox() *lightbox.Lightbox { return m.lb }

// ListOffset is the list viewport's scroll position.
func (m *Model) ListOffset() int { return m.list.YOffset }

func (m *Model) refreshList() {
	var b strings.Builder
	for i, it := range m.items {
		label := it.Alt
		if label == "" {
			label = it.Src
		}
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("› " + label))
		} else {
			b.WriteString(m.styles.Item.Render(label))
		}
		b.WriteString("\n")
	}
	m.list.SetContent(b.String())
}

// follow keeps the cursor row on screen.
func (m *Model) follow() {
	if m.cursor < m.list.YOffset {
		m.list.SetYOffset(m.cursor)
	} else if m.list.Height > 0 && m.cursor >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(m.cursor - m.list.Height + 1)
	}
}

func (m *Model) View() string {
	if f := lightbox.FrameOf(m.lb.Session()); f.Open {
		return m.viewFrame(f)
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	if len(m.items) == 0 {
		b.WriteString(m.styles.Muted.Render("Nothing to show."))
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(browseKeys(m.keys)))
	return b.String()
}

func (m *Model) viewFrame(f lightbox.Frame) string {
	lines := []string{
		m.styles.Title.Render(f.Item.Alt),
		m.styles.Muted.Render(f.Item.Src),
	}
	if f.Item.Caption != "" {
		lines = append(lines, "", m.styles.Caption.Render(f.Item.Caption))
	}
	if f.ShowNav {
		lines = append(lines, "", m.styles.Counter.Render(f.Counter))
	}
	frame := m.styles.Frame.Width(max(m.width-4, 20)).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return frame + "\n" + m.help.View(viewerKeys(m.keys))
}
