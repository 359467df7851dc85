package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stemsi/curriculum-backend/internal/eligibility"
)

var metricLabels = map[eligibility.Metric][2]string{
	eligibility.MetricTotalCredit:   {"credit", "credits"},
	eligibility.MetricProgramCount:  {"program participation", "program participations"},
	eligibility.MetricExchangeCount: {"exchange attendance", "exchange attendances"},
}

func metricLabel(m eligibility.Metric, n int64) string {
	if n == 1 {
		return metricLabels[m][0]
	}
	return metricLabels[m][1]
}

// FormatEligibility renders the metrics table followed by a verdict banner.
// name may be empty when the student is not registered.
func FormatEligibility(studentID, name string, r eligibility.Result) string {
	var b strings.Builder

	// Student IDs are case-sensitive keys, so only the label goes through Header.
	subject := studentID
	if name != "" {
		subject += " (" + name + ")"
	}
	b.WriteString(Header("Eligibility"))
	b.WriteString("\n")
	b.WriteString(StyleBold.Render(subject))
	b.WriteString("\n\n")

	b.WriteString(RenderTable(
		[]string{"METRIC", "VALUE", "REQUIRED", ""},
		[][]string{
			{"Total credit", fmt.Sprint(r.TotalCredit), fmt.Sprint(eligibility.MinTotalCredit), check(r.TotalCredit >= eligibility.MinTotalCredit)},
			{"Required courses", fmt.Sprint(r.RequiredCount), "-", ""},
			{"Program participations", fmt.Sprint(r.ProgramCount), fmt.Sprint(eligibility.MinProgramParticipations), check(r.ProgramCount >= eligibility.MinProgramParticipations)},
			{"Exchange attendances", fmt.Sprint(r.ExchangeCount), fmt.Sprint(eligibility.MinExchangeAttendances), check(r.ExchangeCount >= eligibility.MinExchangeAttendances)},
		},
	))
	b.WriteString("\n")
	b.WriteString(Banner(r))
	b.WriteString("\n")

	return b.String()
}

// Banner renders the verdict: green when the student graduates, red with the
// missed thresholds otherwise.
func Banner(r eligibility.Result) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		PaddingLeft(2).
		PaddingRight(2)

	if r.Passed {
		return style.BorderForeground(ColorGreen).
			Render(StyleGreen.Bold(true).Render("ELIGIBLE") + "  All graduation requirements are met.")
	}

	lines := []string{StyleRed.Bold(true).Render("NOT ELIGIBLE")}
	for _, s := range eligibility.Shortfalls(r) {
		lines = append(lines, fmt.Sprintf("%d more %s needed (%d of %d)",
			s.Missing(), metricLabel(s.Metric, s.Missing()), s.Actual, s.Required))
	}
	return style.BorderForeground(ColorRed).Render(strings.Join(lines, "\n"))
}

func check(ok bool) string {
	if ok {
		return StyleGreen.Render("✓")
	}
	return StyleRed.Render("✗")
}
