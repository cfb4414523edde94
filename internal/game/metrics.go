package game

type RollCount struct{ n int }

func NewRollCount() *RollCount { return &RollCount{} }

func (m *RollCount) Name() string     { return "rolls" }
func (m *RollCount) Observe(roll int) { m.n++ }
func (m *RollCount) Value() float64   { return float64(m.n) }
func (m *RollCount) Reset()           { m.n = 0 }

type MeanRoll struct {
	samples int
	total   float64
}

func NewMeanRoll() *MeanRoll { return &MeanRoll{} }

func (m *MeanRoll) Name() string { return "mean" }

func (m *MeanRoll) Observe(roll int) {
	m.total += float64(roll)
	m.samples++
}

func (m *MeanRoll) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanRoll) Reset() {
	m.samples = 0
	m.total = 0
}

// ModeRoll reports the most frequent sum seen, or 0 before any roll.
type ModeRoll struct{ profile Profile }

func NewModeRoll() *ModeRoll { return &ModeRoll{} }

func (m *ModeRoll) Name() string { return "mode" }

func (m *ModeRoll) Observe(roll int) {
	if validRoll(roll) {
		m.profile.Add(roll)
	}
}

func (m *ModeRoll) Value() float64 { return float64(m.profile.Mode()) }
func (m *ModeRoll) Reset()         { m.profile = Profile{} }

type MaxCount struct{ profile Profile }

func NewMaxCount() *MaxCount { return &MaxCount{} }

func (m *MaxCount) Name() string { return "max_count" }

func (m *MaxCount) Observe(roll int) {
	if validRoll(roll) {
		m.profile.Add(roll)
	}
}

func (m *MaxCount) Value() float64 { return float64(m.profile.Max()) }
func (m *MaxCount) Reset()         { m.profile = Profile{} }

func DefaultMetrics() []Metric {
	return []Metric{
		NewRollCount(),
		NewMeanRoll(),
		NewModeRoll(),
		NewMaxCount(),
	}
}

// Summarize resets each metric and replays the history through it.
func Summarize(h History, metrics ...Metric) map[string]float64 {
	if len(metrics) == 0 {
		metrics = DefaultMetrics()
	}
	out := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		m.Reset()
		for _, roll := range h {
			m.Observe(roll)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
