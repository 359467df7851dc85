package formatter

import (
	"strings"
	"testing"

	"github.com/stemsi/curriculum-backend/internal/eligibility"
	"github.com/stretchr/testify/assert"
)

func TestFormatEligibility_Passing(t *testing.T) {
	out := FormatEligibility("2024-0001", "Alex Morgan", eligibility.Result{
		TotalCredit: 12, RequiredCount: 1, ProgramCount: 4, ExchangeCount: 2, Passed: true,
	})

	assert.Contains(t, out, "2024-0001 (Alex Morgan)")
	assert.NotContains(t, out, "ALEX MORGAN")
	assert.Contains(t, out, "Total credit")
	assert.Contains(t, out, "Required courses")
	assert.Contains(t, out, "ELIGIBLE")
	assert.NotContains(t, out, "NOT ELIGIBLE")
}

func TestFormatEligibility_UnknownStudent(t *testing.T) {
	out := FormatEligibility("ghost", "", eligibility.Result{})

	assert.Contains(t, out, "ghost")
	assert.NotContains(t, out, "GHOST")
	assert.NotContains(t, out, "ghost (")
	assert.Contains(t, out, "NOT ELIGIBLE")
}

func TestBanner_ListsShortfalls(t *testing.T) {
	out := Banner(eligibility.Result{TotalCredit: 11, ProgramCount: 4, ExchangeCount: 1})

	assert.Contains(t, out, "NOT ELIGIBLE")
	assert.Contains(t, out, "1 more credit needed (11 of 12)")
	assert.Contains(t, out, "1 more exchange attendance needed (1 of 2)")
	assert.NotContains(t, out, "program participations")
}

func TestBanner_PluralizesShortfalls(t *testing.T) {
	out := Banner(eligibility.Result{TotalCredit: 4, ProgramCount: 2, ExchangeCount: 0})

	assert.Contains(t, out, "8 more credits needed (4 of 12)")
	assert.Contains(t, out, "2 more program participations needed (2 of 4)")
	assert.Contains(t, out, "2 more exchange attendances needed (0 of 2)")
}

func TestFormatEligibility_KeepsIdentifierCase(t *testing.T) {
	out := FormatEligibility("s1", "Ada", eligibility.Result{})

	assert.Contains(t, out, "ELIGIBILITY")
	assert.Contains(t, out, "s1 (Ada)")
	assert.NotContains(t, out, "S1")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"long value", "x"}, {"s", "y"}})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "y"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
