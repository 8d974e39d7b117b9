package domain

// TailWindow keeps the last N records pushed into it.
// Memory use is bounded by the window limit regardless of how many lines are pushed.
type TailWindow struct {
	ring  []string
	next  int
	count int
}

// NewTailWindow returns a window holding at most limit records.
// A non-positive limit yields a window that never retains anything.
func NewTailWindow(limit int) *TailWindow {
	if limit < 0 {
		limit = 0
	}
	return &TailWindow{ring: make([]string, limit)}
}

// Push adds a line to the window, evicting the oldest record when full.
// Lines that are not records are ignored.
func (w *TailWindow) Push(line string) {
	if len(w.ring) == 0 || !IsRecord(line) {
		return
	}

	w.ring[w.next] = line
	w.next = (w.next + 1) % len(w.ring)
	if w.count < len(w.ring) {
		w.count++
	}
}

func (w *TailWindow) Len() int {
	return w.count
}

// Items returns the retained records oldest first. The result is never nil.
func (w *TailWindow) Items() []string {
	out := make([]string, w.count)
	if w.count < len(w.ring) {
		copy(out, w.ring[:w.count])
		return out
	}

	for i := 0; i < w.count; i++ {
		out[i] = w.ring[(w.next+i)%len(w.ring)]
	}
	return out
}
