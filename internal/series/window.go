package series

// Window bounds how many of a series' most recent samples are shown.
// A capacity of 0 means unbounded. Bounded windows use a ring buffer so
// pushes never reallocate.
type Window struct {
	values []float64
	head   int
	count  int
	grow   bool // unbounded: values is an append-only slice
}

// NewWindow creates a Window holding at most capacity samples.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		return &Window{grow: true}
	}
	return &Window{values: make([]float64, capacity)}
}

// Push appends a sample, evicting the oldest when the window is full.
func (w *Window) Push(v float64) {
	if w.grow {
		w.values = append(w.values, v)
		w.count++
		return
	}
	w.values[w.head] = v
	w.head = (w.head + 1) % len(w.values)
	if w.count < len(w.values) {
		w.count++
	}
}

// Reset empties the window, then pushes vals in order.
func (w *Window) Reset(vals []float64) {
	if w.grow {
		w.values = w.values[:0]
	}
	w.head = 0
	w.count = 0
	for _, v := range vals {
		w.Push(v)
	}
}

// Len returns the number of samples currently held.
func (w *Window) Len() int {
	return w.count
}

// Values returns the held samples in chronological order.
func (w *Window) Values() []float64 {
	if w.count == 0 {
		return nil
	}
	if w.grow {
		return w.values
	}
	out := make([]float64, w.count)
	start := (w.head - w.count + len(w.values)) % len(w.values)
	for i := 0; i < w.count; i++ {
		out[i] = w.values[(start+i)%len(w.values)]
	}
	return out
}
