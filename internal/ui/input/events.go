package input

// MouseEvent is passed to mouse listeners. Setting Cancel does not stop
// later listeners from running; the caller that fired the event checks it
// afterwards.
type MouseEvent struct {
	Button int
	Cancel bool
}

// MouseHandler receives a mouse event along with the widget it concerns.
type MouseHandler func(source any, ev *MouseEvent)

// Handle identifies a registered listener for removal.
type Handle uint64

type listener struct {
	handle Handle
	fn     MouseHandler
}

// Listeners fans mouse-down and mouse-up notifications out to registered
// handlers. Handlers run synchronously on the caller's goroutine in
// registration order. The zero value is ready to use and has no listeners.
type Listeners struct {
	next uint64
	down []listener
	up   []listener
}

// OnMouseDown registers fn for mouse-down notifications.
func (l *Listeners) OnMouseDown(fn MouseHandler) Handle {
	return l.add(&l.down, fn)
}

// OnMouseUp registers fn for mouse-up notifications.
func (l *Listeners) OnMouseUp(fn MouseHandler) Handle {
	return l.add(&l.up, fn)
}

func (l *Listeners) add(list *[]listener, fn MouseHandler) Handle {
	if fn == nil {
		return 0
	}
	l.next++
	h := Handle(l.next)
	*list = append(*list, listener{handle: h, fn: fn})
	return h
}

// Remove unregisters a handler. Unknown handles are ignored.
func (l *Listeners) Remove(h Handle) {
	l.down = removeHandle(l.down, h)
	l.up = removeHandle(l.up, h)
}

func removeHandle(list []listener, h Handle) []listener {
	for i, entry := range list {
		if entry.handle == h {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// FireMouseDown calls every mouse-down handler with source and ev.
func (l *Listeners) FireMouseDown(source any, ev *MouseEvent) {
	fire(l.down, source, ev)
}

// FireMouseUp calls every mouse-up handler with source and ev.
func (l *Listeners) FireMouseUp(source any, ev *MouseEvent) {
	fire(l.up, source, ev)
}

func fire(list []listener, source any, ev *MouseEvent) {
	for _, entry := range list {
		entry.fn(source, ev)
	}
}

// Len returns the number of registered handlers.
func (l *Listeners) Len() int {
	return len(l.down) + len(l.up)
}
