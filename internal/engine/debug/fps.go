package debug

// FPSCounter averages frame times over a fixed reporting interval.
type FPSCounter struct {
	Interval float64

	frames  int
	elapsed float64
}

// NewFPSCounter reports once per interval seconds.
func NewFPSCounter(interval float64) *FPSCounter {
	return &FPSCounter{Interval: interval}
}

// Tick records a frame of dt seconds. When an interval has elapsed it returns
// the average frame rate and true.
func (c *FPSCounter) Tick(dt float64) (float64, bool) {
	c.frames++
	c.elapsed += dt
	if c.elapsed < c.Interval || c.elapsed <= 0 {
		return 0, false
	}
	fps := float64(c.frames) / c.elapsed
	c.frames = 0
	c.elapsed = 0
	return fps, true
}
