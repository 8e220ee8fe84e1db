package gauge

// Sample is one point of gauge history.
type Sample struct {
	Elapsed int64 // ms since fight start
	Value   Value
}

// Gauge is a resource clamped to [0, max].
//
// INVARIANTS:
//   - 0 <= current <= max after every operation
//   - overcap never decreases
//   - history is append-only; Spend may raise the value of the last sample
//     and nothing else rewrites it
type Gauge struct {
	max      Value
	current  Value
	overcap  Value
	consumed int
	history  []Sample
}

// New creates an empty gauge.
func New(max Value) *Gauge {
	if max < 0 {
		max = 0
	}
	return &Gauge{max: max}
}

// Set moves the gauge to requested, clamped into [0, max], and records a
// sample. Any amount above max is added to the overcap; clamping at zero
// loses nothing.
func (g *Gauge) Set(elapsed int64, requested Value) {
	g.current = min(max(requested, 0), g.max)
	if requested > g.max {
		g.overcap += requested - g.max
	}
	g.history = append(g.history, Sample{Elapsed: elapsed, Value: g.current})
}

// Add moves the gauge by delta. See Set.
func (g *Gauge) Add(elapsed int64, delta Value) {
	g.Set(elapsed, g.current+delta)
}

// Spend consumes cost.
//
// The gauge must have held cost for the action to happen, so when it reads
// lower the most recent sample is raised to cost before the decrement.
func (g *Gauge) Spend(elapsed int64, cost Value) {
	g.consumed++
	if g.current < cost {
		g.raiseLastSample(cost)
	}
	g.Set(elapsed, g.current-cost)
}

func (g *Gauge) raiseLastSample(v Value) {
	if len(g.history) == 0 {
		return
	}
	g.history[len(g.history)-1].Value = min(v, g.max)
}

// Reset empties the gauge, whatever it held.
func (g *Gauge) Reset(elapsed int64) {
	g.current = 0
	g.history = append(g.history, Sample{Elapsed: elapsed, Value: 0})
}

// Current returns the gauge value.
func (g *Gauge) Current() Value {
	return g.current
}

// Max returns the capacity.
func (g *Gauge) Max() Value {
	return g.max
}

// Overcap returns the total amount lost to the cap.
func (g *Gauge) Overcap() Value {
	return g.overcap
}

// Consumed returns how many times Spend was called.
func (g *Gauge) Consumed() int {
	return g.consumed
}

// History returns a copy of the samples.
func (g *Gauge) History() []Sample {
	out := make([]Sample, len(g.history))
	copy(out, g.history)
	return out
}

// Ticks returns how many periodic ticks a buff lasting duration ms is
// credited with: duration/interval rounded down, at least 1, at most
// maxTicks. A tick can land anywhere inside the window, so even a short buff
// gets one.
func Ticks(duration, interval, maxTicks int64) int64 {
	if interval <= 0 {
		return 1
	}
	return min(max(duration/interval, 1), maxTicks)
}
