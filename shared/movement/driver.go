package movement

// Driver splits each rendered frame into fixed-count substeps.
type Driver struct {
	SubSteps int
	// MaxFrameDelta caps the simulated time per frame, in seconds.
	MaxFrameDelta float64
}

// DefaultDriver returns five substeps with a 50ms cap.
func DefaultDriver() Driver {
	return Driver{SubSteps: 5, MaxFrameDelta: 0.05}
}

// StepSize returns the substep length for a frame of frameDelta seconds.
// Non-positive frames yield zero-length substeps.
func (d Driver) StepSize(frameDelta float64) float64 {
	if frameDelta <= 0 || d.SubSteps <= 0 {
		return 0
	}
	if d.MaxFrameDelta > 0 && frameDelta > d.MaxFrameDelta {
		frameDelta = d.MaxFrameDelta
	}
	return frameDelta / float64(d.SubSteps)
}

// Advance calls step SubSteps times and returns the substep length used.
func (d Driver) Advance(frameDelta float64, step func(dt float64)) float64 {
	dt := d.StepSize(frameDelta)
	for i := 0; i < d.SubSteps; i++ {
		step(dt)
	}
	return dt
}
