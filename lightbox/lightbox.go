package lightbox

// Lightbox is a viewer instance: a Session whose open/close transitions drive
// a Binder. A page hosts at most one Lightbox.
type Lightbox struct {
	session Session
	binder  *Binder
	keymap  Keymap
}

// New returns a closed Lightbox bound to host with the default keymap.
func New(host Host) *Lightbox {
	return &Lightbox{
		binder: NewBinder(host),
		keymap: DefaultKeymap,
	}
}

// Session exposes the state for rendering. Mutate only through Lightbox.
func (lb *Lightbox) Session() *Session { return &lb.session }

func (lb *Lightbox) Keymap() Keymap { return lb.keymap }

// Open starts a session and activates host effects on the Closed to Open
// transition only. Invalid input leaves the Lightbox as it was.
func (lb *Lightbox) Open(items []Item, start int) bool {
	if !lb.session.Open(items, start) {
		return false
	}
	lb.binder.Activate(lb.HandleKey)
	return true
}

func (lb *Lightbox) Next() { lb.session.Next() }

func (lb *Lightbox) Prev() { lb.session.Prev() }

func (lb *Lightbox) JumpTo(index int) bool { return lb.session.JumpTo(index) }

// Close ends the session and releases host effects.
func (lb *Lightbox) Close() {
	if lb.session.Close() {
		lb.binder.Deactivate()
	}
}

// Unmount tears the viewer down. Host effects are released whether or not a
// session is open.
func (lb *Lightbox) Unmount() {
	lb.session.Close()
	lb.binder.Deactivate()
}

// Apply runs op. to is only used by OpJump.
func (lb *Lightbox) Apply(op Op, to int) {
	switch op {
	case OpNext:
		lb.Next()
	case OpPrev:
		lb.Prev()
	case OpClose:
		lb.Close()
	case OpJump:
		lb.JumpTo(to)
	}
}

// HandleKey applies the operation bound to k. Keys arriving while closed are
// ignored.
func (lb *Lightbox) HandleKey(k Key) {
	if !lb.session.IsOpen() {
		return
	}
	if op, ok := lb.keymap[k]; ok {
		lb.Apply(op, 0)
	}
}
