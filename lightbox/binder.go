package lightbox

// Key is a keyboard key the viewer reacts to.
type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// Op is a navigation operation on an open session.
type Op string

const (
	OpNone  Op = ""
	OpNext  Op = "next"
	OpPrev  Op = "prev"
	OpClose Op = "close"
	OpJump  Op = "jump"
)

// ParseOp maps a query value to an Op. Unknown values map to OpNone.
func ParseOp(s string) Op {
	switch Op(s) {
	case OpNext, OpPrev, OpClose, OpJump:
		return Op(s)
	}
	return OpNone
}

// Keymap maps keys to operations.
type Keymap map[Key]Op

// DefaultKeymap is the binding installed while a session is open.
var DefaultKeymap = Keymap{
	KeyEscape:     OpClose,
	KeyArrowLeft:  OpPrev,
	KeyArrowRight: OpNext,
}

// KeyFor returns the key bound to op, if any.
func (m Keymap) KeyFor(op Op) (Key, bool) {
	for k, o := range m {
		if o == op {
			return k, true
		}
	}
	return "", false
}

// Host is the environment a viewer lives in. It owns the single global key
// listener slot and the page scroll state. Each call returns the function
// that undoes it.
type Host interface {
	BindKeys(handler func(Key)) (unbind func())
	LockScroll() (unlock func())
}

// Binder pairs the activation of host effects with an open session.
// Activate and Deactivate are idempotent, so each open/close transition
// produces at most one bind and one release.
type Binder struct {
	host   Host
	active bool
	unbind func()
	unlock func()
}

// NewBinder returns a Binder for host.
func NewBinder(host Host) *Binder {
	return &Binder{host: host}
}

// Active reports whether effects are currently held.
func (b *Binder) Active() bool {
	return b.active
}

// Activate registers handler and locks scrolling unless already active.
// A host may return nil undo funcs; the binder still counts as active.
func (b *Binder) Activate(handler func(Key)) {
	if b.active || b.host == nil {
		return
	}
	b.active = true
	b.unbind = b.host.BindKeys(handler)
	b.unlock = b.host.LockScroll()
}

// Deactivate releases whatever Activate acquired.
func (b *Binder) Deactivate() {
	if !b.active {
		return
	}
	unbind, unlock := b.unbind, b.unlock
	b.active = false
	b.unbind, b.unlock = nil, nil
	if unbind != nil {
		unbind()
	}
	if unlock != nil {
		unlock()
	}
}
