package domain

// DefaultStrategicAxes is the fixed set of national research priorities a
// proposal can align with.
var DefaultStrategicAxes = []string{
	"Water management",
	"Phosphates and derivatives (extraction, processing, valorisation)",
	"Health",
	"Food security",
	"Renewable energy and energy transition",
	"Humanities and social sciences (HSS)",
	"Climate change (adaptation and mitigation)",
	"Advanced technologies, industry and digital transformation (AI, aeronautics, etc.)",
}

// AxisSet is an ordered, immutable set of strategic-axis labels.
type AxisSet struct {
	labels []string
	member map[string]bool
}

// NewAxisSet builds a set from labels, dropping blanks and duplicates.
// An empty input yields the default axes.
func NewAxisSet(labels []string) AxisSet {
	s := AxisSet{member: make(map[string]bool)}
	for _, l := range labels {
		if l == "" || s.member[l] {
			continue
		}
		s.labels = append(s.labels, l)
		s.member[l] = true
	}
	if len(s.labels) == 0 {
		return NewAxisSet(DefaultStrategicAxes)
	}
	return s
}

// Labels returns the labels in configured order.
func (s AxisSet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Contains reports whether label is one of the configured axes.
func (s AxisSet) Contains(label string) bool {
	return s.member[label]
}

// Len returns the number of axes.
func (s AxisSet) Len() int {
	return len(s.labels)
}
