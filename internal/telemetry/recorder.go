// Package telemetry records processed sensor frames as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"robot-rig.klederson.com/internal/sensors"
)

// FrameRecord is one CSV row.
type FrameRecord struct {
	Session  string  `csv:"session"`
	Time     string  `csv:"time"`
	DX       float64 `csv:"dx"`
	DY       float64 `csv:"dy"`
	Distance float64 `csv:"distance"`
	Angle    float64 `csv:"angle"`
	Sector   int     `csv:"sector"`
	InDonut  bool    `csv:"in_donut"`
	S1       int     `csv:"s1"`
	S2       int     `csv:"s2"`
	S3       int     `csv:"s3"`
	S4       int     `csv:"s4"`
	S5       int     `csv:"s5"`
	S6       int     `csv:"s6"`
	S7       int     `csv:"s7"`
	S8       int     `csv:"s8"`
	Active   string  `csv:"active"` // e.g. "1,8"
}

// NewFrameRecord flattens a frame.
func NewFrameRecord(session string, at time.Time, f sensors.Frame) FrameRecord {
	v := func(i int) int { return f.Readings[i].Value }

	active := ""
	for i, r := range f.Readings {
		if r.State != sensors.Active {
			continue
		}
		if active != "" {
			active += ","
		}
		active += fmt.Sprint(i + 1)
	}

	return FrameRecord{
		Session:  session,
		Time:     at.UTC().Format(time.RFC3339Nano),
		DX:       f.Offset.X,
		DY:       f.Offset.Y,
		Distance: f.Distance,
		Angle:    f.Angle,
		Sector:   f.Sector.Index() + 1,
		InDonut:  f.InsideDonut,
		S1:       v(0),
		S2:       v(1),
		S3:       v(2),
		S4:       v(3),
		S5:       v(4),
		S6:       v(5),
		S7:       v(6),
		S8:       v(7),
		Active:   active,
	}
}

// Recorder appends frame records to a CSV sink. A nil *Recorder is valid
// and records nothing.
type Recorder struct {
	out           io.Writer
	closer        io.Closer
	session       string
	headerWritten bool
	rows          int
}

// NewRecorder creates the CSV file at path. Returns nil if path is empty
// (recording disabled).
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating recording: %w", err)
	}
	r := newRecorder(f, uuid.NewString())
	r.closer = f
	return r, nil
}

func newRecorder(w io.Writer, session string) *Recorder {
	return &Recorder{out: w, session: session}
}

// Session returns the recording's session id.
func (r *Recorder) Session() string {
	if r == nil {
		return ""
	}
	return r.session
}

// Rows returns how many frames have been written.
func (r *Recorder) Rows() int {
	if r == nil {
		return 0
	}
	return r.rows
}

// Record writes one frame.
func (r *Recorder) Record(at time.Time, f sensors.Frame) error {
	if r == nil {
		return nil
	}

	records := []FrameRecord{NewFrameRecord(r.session, at, f)}

	if !r.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, r.out); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.out); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
	}

	r.rows++
	return nil
}

// Close flushes and closes the underlying file.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
