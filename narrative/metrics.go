package narrative

// Severity colors a static metric.
type Severity int

const (
	SeverityHigh Severity = iota
	SeverityWarning
	SeverityCritical
)

// Metric is a labelled value shown in the analysis panel.
type Metric struct {
	Label string
	Value int
}

// StaticMetric never changes during a session.
type StaticMetric struct {
	Label    string
	Value    string
	Severity Severity
}

var StaticMetrics = []StaticMetric{
	{Label: "Entropia de Dados", Value: "87.3%", Severity: SeverityCritical},
	{Label: "Coerência Temporal", Value: "12.8%", Severity: SeverityWarning},
	{Label: "Índice de Nostalgia", Value: "94.1%", Severity: SeverityHigh},
}

// Status is the coarse health of the artifact derived from its level.
type Status int

const (
	StatusPartial Status = iota
	StatusUnstable
	StatusCritical
)

// StatusFor maps a corruption level to its status.
func StatusFor(level float64) Status {
	switch {
	case level > 80:
		return StatusCritical
	case level > 50:
		return StatusUnstable
	default:
		return StatusPartial
	}
}

func (s Status) String() string {
	switch s {
	case StatusCritical:
		return "CRÍTICO"
	case StatusUnstable:
		return "INSTÁVEL"
	default:
		return "PARCIAL"
	}
}

// Indicators are the MEM/CPU/NET warning lamps.
type Indicators struct {
	MEM bool
	CPU bool
	NET bool
}

// IndicatorsFor lights MEM above 70 and CPU above 60. NET is supplied by
// the caller since it flickers on its own.
func IndicatorsFor(level float64, net bool) Indicators {
	return Indicators{
		MEM: level > 70,
		CPU: level > 60,
		NET: net,
	}
}
