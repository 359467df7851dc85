package eligibility

// Metric identifies one of the gating metrics.
type Metric string

const (
	MetricTotalCredit   Metric = "total_credit"
	MetricProgramCount  Metric = "program_count"
	MetricExchangeCount Metric = "exchange_count"
)

// Shortfall describes a threshold the student has not reached yet.
type Shortfall struct {
	Metric   Metric `json:"metric"`
	Actual   int64  `json:"actual"`
	Required int64  `json:"required"`
}

// Missing returns how far the metric is below its threshold.
func (s Shortfall) Missing() int64 {
	return s.Required - s.Actual
}

// Shortfalls lists every gating threshold r misses, in rule order.
// A passing result has no shortfalls.
func Shortfalls(r Result) []Shortfall {
	out := []Shortfall{}
	if r.TotalCredit < MinTotalCredit {
		out = append(out, Shortfall{Metric: MetricTotalCredit, Actual: r.TotalCredit, Required: MinTotalCredit})
	}
	if r.ProgramCount < MinProgramParticipations {
		out = append(out, Shortfall{Metric: MetricProgramCount, Actual: r.ProgramCount, Required: MinProgramParticipations})
	}
	if r.ExchangeCount < MinExchangeAttendances {
		out = append(out, Shortfall{Metric: MetricExchangeCount, Actual: r.ExchangeCount, Required: MinExchangeAttendances})
	}
	return out
}
