package app

import "robot-rig.klederson.com/internal/sensors"

// ReadingRing keeps the latest readings of one sensor. Saturated samples
// are stored too so the sparkline shows when the sensor lost its target.
type ReadingRing struct {
	buf  []sensors.Reading
	next int // oldest slot once buf is full
}

// NewReadingRing creates a ring holding up to capacity readings.
func NewReadingRing(capacity int) *ReadingRing {
	return &ReadingRing{buf: make([]sensors.Reading, 0, max(capacity, 1))}
}

// Push appends a reading, overwriting the oldest when full.
func (r *ReadingRing) Push(rd sensors.Reading) {
	if len(r.buf) < cap(r.buf) {
		r.buf = append(r.buf, rd)
		return
	}
	r.buf[r.next] = rd
	r.next = (r.next + 1) % len(r.buf)
}

// Readings returns the stored readings, oldest first.
func (r *ReadingRing) Readings() []sensors.Reading {
	if len(r.buf) == 0 {
		return nil
	}
	out := make([]sensors.Reading, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	return append(out, r.buf[:r.next]...)
}

// Last returns the newest reading.
func (r *ReadingRing) Last() (sensors.Reading, bool) {
	if len(r.buf) == 0 {
		return sensors.Reading{}, false
	}
	i := r.next - 1
	if i < 0 {
		i = len(r.buf) - 1
	}
	return r.buf[i], true
}

// Hits counts the active readings in the window.
func (r *ReadingRing) Hits() int {
	n := 0
	for _, rd := range r.buf {
		if rd.State == sensors.Active {
			n++
		}
	}
	return n
}

// Len returns the number of stored readings.
func (r *ReadingRing) Len() int {
	return len(r.buf)
}

// History holds one ReadingRing per sensor axis.
type History struct {
	rings [sensors.AxisCount]*ReadingRing
}

// NewHistory creates empty rings of the given capacity.
func NewHistory(capacity int) *History {
	h := &History{}
	for i := range h.rings {
		h.rings[i] = NewReadingRing(capacity)
	}
	return h
}

// Record pushes every reading of a frame onto its sensor's ring.
func (h *History) Record(f sensors.Frame) {
	for i, rd := range f.Readings {
		h.rings[i].Push(rd)
	}
}

// Sensor returns the ring for a 0-based axis position.
func (h *History) Sensor(i int) *ReadingRing {
	return h.rings[i]
}

// Snapshot copies every ring for rendering.
func (h *History) Snapshot() [sensors.AxisCount][]sensors.Reading {
	var out [sensors.AxisCount][]sensors.Reading
	for i, r := range h.rings {
		out[i] = r.Readings()
	}
	return out
}
