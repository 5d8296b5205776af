package movement

import (
	"io"

	"github.com/gocarina/gocsv"
)

// TraceRecord is one substep of a recorded run.
type TraceRecord struct {
	Step    int     `csv:"step"`
	Time    float64 `csv:"time"`
	PosX    float64 `csv:"pos_x"`
	PosY    float64 `csv:"pos_y"`
	PosZ    float64 `csv:"pos_z"`
	VelX    float64 `csv:"vel_x"`
	VelY    float64 `csv:"vel_y"`
	VelZ    float64 `csv:"vel_z"`
	OnFloor bool    `csv:"on_floor"`
	Contact bool    `csv:"contact"`
	Reset   bool    `csv:"reset"`
}

// Recorder collects a TraceRecord per substep.
type Recorder struct {
	records []*TraceRecord
	elapsed float64
}

// Record appends the body state after a substep of length dt.
func (r *Recorder) Record(body *Body, dt float64, res StepResult) {
	r.elapsed += dt
	feet := body.Feet()
	r.records = append(r.records, &TraceRecord{
		Step:    len(r.records),
		Time:    r.elapsed,
		PosX:    feet.X(),
		PosY:    feet.Y(),
		PosZ:    feet.Z(),
		VelX:    body.Velocity.X(),
		VelY:    body.Velocity.Y(),
		VelZ:    body.Velocity.Z(),
		OnFloor: body.OnFloor,
		Contact: res.Hit,
		Reset:   res.Reset,
	})
}

// Records returns the collected rows.
func (r *Recorder) Records() []*TraceRecord {
	return r.records
}

// WriteCSV writes all rows with a header line.
func (r *Recorder) WriteCSV(w io.Writer) error {
	return gocsv.Marshal(r.records, w)
}
