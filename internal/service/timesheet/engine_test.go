package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerhq/timeclock-backend-go/internal/domain/punch"
	"github.com/makerhq/timeclock-backend-go/internal/domain/timesheet"
)

func testPolicy(breakMinutes int) timesheet.ShiftPolicy {
	return timesheet.ShiftPolicy{
		Name:                 "Day Shift",
		Start:                time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		End:                  time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
		BreakDurationMinutes: breakMinutes,
		LateGraceMinutes:     5,
	}
}

func testEmployee() timesheet.EmployeeInfo {
	return timesheet.EmployeeInfo{
		FullName:     "Jordan Reyes",
		EmployeeCode: "EMP001",
		Department:   "Operations",
		Position:     "Technician",
	}
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func punchAt(t *testing.T, kind punch.Kind, value string) punch.Punch {
	t.Helper()
	return punch.Punch{
		EmployeeID: "emp-1",
		Timestamp:  at(t, value),
		Kind:       kind,
		Source:     punch.SourceTerminal,
	}
}

func buildReport(t *testing.T, breakMinutes int, punches []punch.Punch) timesheet.PeriodReport {
	t.Helper()
	engine := NewEngine()
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC)
	return engine.BuildPeriodReport(testEmployee(), testPolicy(breakMinutes), start, end, punches)
}

func TestBuildPeriodReport_OnTimeNoBreak(t *testing.T) {
	report := buildReport(t, 0, []punch.Punch{
		punchAt(t, punch.KindClockIn, "2024-01-15T09:00:00Z"),
		punchAt(t, punch.KindClockOut, "2024-01-15T18:00:00Z"),
	})

	require.Len(t, report.Days, 1)
	day := report.Days[0]
	assert.Equal(t, "2024-01-15", day.Date)
	assert.Equal(t, "Monday", day.DayOfWeek)
	assert.Equal(t, 9.0, day.WorkedHours)
	assert.Equal(t, 0.0, day.BreakHours)
	assert.Equal(t, 0.0, day.LateMinutes)
	assert.Equal(t, 0.0, day.OvertimeHours)
}

func TestBuildPeriodReport_LateWithBreak(t *testing.T) {
	report := buildReport(t, 60, []punch.Punch{
		punchAt(t, punch.KindClockIn, "2024-01-15T09:10:00Z"),
		punchAt(t, punch.KindBreakStart, "2024-01-15T12:00:00Z"),
		punchAt(t, punch.KindBreakEnd, "2024-01-15T13:00:00Z"),
		punchAt(t, punch.KindClockOut, "2024-01-15T18:00:00Z"),
	})

	require.Len(t, report.Days, 1)
	day := report.Days[0]
	// 10 minutes past scheduled start, 5 forgiven by grace.
	assert.Equal(t, 5.0, day.LateMinutes)
	assert.Equal(t, 1.0, day.BreakHours)
	// 8h50m span minus 1h break is 470 minutes.
	assert.Equal(t, 7.83, day.WorkedHours)
	assert.Equal(t, 0.0, day.OvertimeHours)
}

func TestBuildPeriodReport_OvertimeUnmatchedBreakIgnored(t *testing.T) {
	report := buildReport(t, 60, []punch.Punch{
		punchAt(t, punch.KindClockIn, "2024-01-15T09:00:00Z"),
		punchAt(t, punch.KindBreakStart, "2024-01-15T12:00:00Z"),
		punchAt(t, punch.KindClockOut, "2024-01-15T19:30:00Z"),
	})

	require.Len(t, report.Days, 1)
	day := report.Days[0]
	assert.Equal(t, 0.0, day.BreakHours)
	assert.Equal(t, 10.5, day.WorkedHours)
	assert.Equal(t, 1.5, day.OvertimeHours)
	assert.Equal(t, 0.0, day.LateMinutes)
}

func TestBuildPeriodReport_DuplicateReadsKeepLongestWindow(t *testing.T) {
	report := buildReport(t, 0, []punch.Punch{
		punchAt(t, punch.KindClockIn, "2024-01-15T09:00:00Z"),
		punchAt(t, punch.KindClockIn, "2024-01-15T09:00:30Z"), // duplicate read, ignored
		punchAt(t, punch.KindBreakStart, "2024-01-15T12:00:00Z"),
		punchAt(t, punch.KindBreakStart, "2024-01-15T12:01:00Z"), // duplicate read, ignored
		punchAt(t, punch.KindBreakEnd, "2024-01-15T12:59:00Z"),
		punchAt(t, punch.KindBreakEnd, "2024-01-15T13:00:00Z"), // last wins
		punchAt(t, punch.KindClockOut, "2024-01-15T17:59:00Z"),
		punchAt(t, punch.KindClockOut, "2024-01-15T18:00:00Z"), // last wins
	})

	require.Len(t, report.Days, 1)
	day := report.Days[0]
	assert.Equal(t, 8.0, day.WorkedHours)
	assert.Equal(t, 1.0, day.BreakHours)
	assert.Equal(t, 0.0, day.LateMinutes)
	assert.Len(t, day.Punches, 8)
}

func TestBuildPeriodReport_IncompleteDayDegradesToZero(t *testing.T) {
	cases := []struct {
		name    string
		punches []punch.Punch
	}{
		{"clock_in only", []punch.Punch{
			punchAt(t, punch.KindClockIn, "2024-01-15T09:00:00Z"),
		}},
		{"clock_out only", []punch.Punch{
			punchAt(t, punch.KindClockOut, "2024-01-15T18:00:00Z"),
		}},
		{"breaks only", []punch.Punch{
			punchAt(t, punch.KindBreakStart, "2024-01-15T12:00:00Z"),
			punchAt(t, punch.KindBreakEnd, "2024-01-15T13:00:00Z"),
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			report := buildReport(t, 60, c.punches)

			require.Len(t, report.Days, 1)
			day := report.Days[0]
			assert.Equal(t, 0.0, day.WorkedHours)
			assert.Equal(t, 0.0, day.BreakHours)
			assert.Equal(t, 0.0, day.LateMinutes)
			assert.Equal(t, 0.0, day.OvertimeHours)
			assert.Len(t, day.Punches, len(c.punches))
		})
	}
}

func TestBuildPeriodReport_EmptyRange(t *testing.T) {
	report := buildReport(t, 0, nil)
	assert.Empty(t, report.Days)
	assert.Equal(t, timesheet.ReportTotals{}, report.Totals)
}

func TestBuildPeriodReport_DaysAscendingAndTotals(t *testing.T) {
	report := buildReport(t, 0, []punch.Punch{
		// Second day first: grouping must still emit ascending dates.
		punchAt(t, punch.KindClockIn, "2024-01-16T09:00:00Z"),
		punchAt(t, punch.KindClockOut, "2024-01-16T19:30:00Z"),
		punchAt(t, punch.KindClockIn, "2024-01-15T09:00:00Z"),
		punchAt(t, punch.KindClockOut, "2024-01-15T18:00:00Z"),
		// Incomplete third day contributes nothing to totals.
		punchAt(t, punch.KindClockIn, "2024-01-17T09:00:00Z"),
	})

	require.Len(t, report.Days, 3)
	assert.Equal(t, "2024-01-15", report.Days[0].Date)
	assert.Equal(t, "2024-01-16", report.Days[1].Date)
	assert.Equal(t, "2024-01-17", report.Days[2].Date)

	var workedSum, overtimeSum float64
	for _, day := range report.Days {
		workedSum += day.WorkedHours
		overtimeSum += day.OvertimeHours
	}
	assert.Equal(t, workedSum, report.Totals.WorkedHours)
	assert.Equal(t, overtimeSum, report.Totals.OvertimeHours)
	assert.InDelta(t, 19.5, report.Totals.WorkedHours, 1e-9)
	assert.InDelta(t, 1.5, report.Totals.OvertimeHours, 1e-9)
}

func TestBuildPeriodReport_Idempotent(t *testing.T) {
	punches := []punch.Punch{
		punchAt(t, punch.KindClockIn, "2024-01-15T09:10:00Z"),
		punchAt(t, punch.KindBreakStart, "2024-01-15T12:00:00Z"),
		punchAt(t, punch.KindBreakEnd, "2024-01-15T13:00:00Z"),
		punchAt(t, punch.KindClockOut, "2024-01-15T18:00:00Z"),
	}

	first := buildReport(t, 60, punches)
	second := buildReport(t, 60, punches)
	assert.Equal(t, first, second)
}

func TestBuildPeriodReport_NegativeSpanPropagates(t *testing.T) {
	// Inconsistent clocks: exit before entry. The anomaly is reported
	// as-is instead of being corrected or rejected.
	report := buildReport(t, 0, []punch.Punch{
		punchAt(t, punch.KindClockIn, "2024-01-15T18:00:00Z"),
		punchAt(t, punch.KindClockOut, "2024-01-15T09:00:00Z"),
	})

	require.Len(t, report.Days, 1)
	assert.Equal(t, -9.0, report.Days[0].WorkedHours)
	assert.Equal(t, 535.0, report.Days[0].LateMinutes)
	assert.Equal(t, 0.0, report.Days[0].OvertimeHours)
}

func TestBuildPeriodReport_TimezoneGrouping(t *testing.T) {
	// 2024-01-15T23:30-03:00 is 2024-01-16T02:30Z; the punch's own
	// offset decides its calendar day.
	report := buildReport(t, 0, []punch.Punch{
		punchAt(t, punch.KindClockIn, "2024-01-15T09:00:00-03:00"),
		punchAt(t, punch.KindClockOut, "2024-01-15T23:30:00-03:00"),
	})

	require.Len(t, report.Days, 1)
	day := report.Days[0]
	assert.Equal(t, "2024-01-15", day.Date)
	assert.Equal(t, 14.5, day.WorkedHours)
	// Checkout 5h30m past the 18:00 schedule in the punch's zone.
	assert.Equal(t, 5.5, day.OvertimeHours)
}

func TestBuildPeriodReport_OvernightShiftComputedLiterally(t *testing.T) {
	// A shift crossing midnight splits into two one-sided days under
	// date grouping; both degrade to zero metrics.
	report := buildReport(t, 0, []punch.Punch{
		punchAt(t, punch.KindClockIn, "2024-01-15T22:00:00Z"),
		punchAt(t, punch.KindClockOut, "2024-01-16T06:00:00Z"),
	})

	require.Len(t, report.Days, 2)
	assert.Equal(t, 0.0, report.Days[0].WorkedHours)
	assert.Equal(t, 0.0, report.Days[1].WorkedHours)
}

func TestBuildPeriodReport_RoundingAtOutput(t *testing.T) {
	// 08:59:50 to 18:20:10 is 560 minutes and 20 seconds.
	report := buildReport(t, 0, []punch.Punch{
		punchAt(t, punch.KindClockIn, "2024-01-15T08:59:50Z"),
		punchAt(t, punch.KindClockOut, "2024-01-15T18:20:10Z"),
	})

	require.Len(t, report.Days, 1)
	day := report.Days[0]
	assert.Equal(t, 9.34, day.WorkedHours)
	assert.Equal(t, 0.0, day.LateMinutes)
	// 20 minutes 10 seconds past schedule.
	assert.Equal(t, 0.34, day.OvertimeHours)
}

func TestBuildPeriodReport_Header(t *testing.T) {
	report := buildReport(t, 60, nil)

	assert.Equal(t, "Jordan Reyes", report.Employee.FullName)
	assert.Equal(t, "EMP001", report.Employee.EmployeeCode)
	assert.Equal(t, "09:00", report.Shift.StartTime)
	assert.Equal(t, "18:00", report.Shift.EndTime)
	assert.Equal(t, 60, report.Shift.BreakDurationMinutes)
	assert.Equal(t, "2024-01-15", report.PeriodStart)
	assert.Equal(t, "2024-01-19", report.PeriodEnd)
}
