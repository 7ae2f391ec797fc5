package timesheet

import (
	"math"
	"sort"
	"time"

	"github.com/makerhq/timeclock-backend-go/internal/domain/punch"
	"github.com/makerhq/timeclock-backend-go/internal/domain/timesheet"
)

// Engine rebuilds per-day attendance metrics from a raw punch stream.
// It is a pure calculator: no storage access, no clock access, and the
// same input always produces the same report.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// BuildPeriodReport groups punches into calendar days, classifies each
// day's boundary punches and derives the day metrics.
//
// Classification tolerates duplicate terminal reads asymmetrically: the
// first clock_in and break_start win, the last clock_out and break_end
// win. Days without both a clock_in and a clock_out keep their punches
// but report zero for every metric. Days without punches are absent.
func (e *Engine) BuildPeriodReport(
	emp timesheet.EmployeeInfo,
	policy timesheet.ShiftPolicy,
	startDate time.Time,
	endDate time.Time,
	punches []punch.Punch,
) timesheet.PeriodReport {
	report := timesheet.PeriodReport{
		Employee: emp,
		Shift: timesheet.ShiftInfo{
			Name:                 policy.Name,
			StartTime:            policy.Start.Format("15:04"),
			EndTime:              policy.End.Format("15:04"),
			BreakDurationMinutes: policy.BreakDurationMinutes,
			LateGraceMinutes:     policy.LateGraceMinutes,
		},
		PeriodStart: startDate.Format("2006-01-02"),
		PeriodEnd:   endDate.Format("2006-01-02"),
		Days:        []timesheet.DayRecord{},
	}

	// Group by the calendar date of each timestamp in its own location.
	days := make(map[string][]punch.Punch)
	for _, p := range punches {
		key := p.Timestamp.Format("2006-01-02")
		days[key] = append(days[key], p)
	}

	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		record := e.buildDayRecord(key, days[key], policy)
		report.Days = append(report.Days, record)

		// Totals sum the already-rounded day values.
		report.Totals.WorkedHours += record.WorkedHours
		report.Totals.BreakHours += record.BreakHours
		report.Totals.LateMinutes += record.LateMinutes
		report.Totals.OvertimeHours += record.OvertimeHours
	}

	return report
}

func (e *Engine) buildDayRecord(date string, dayPunches []punch.Punch, policy timesheet.ShiftPolicy) timesheet.DayRecord {
	var clockIn, clockOut, breakStart, breakEnd *punch.Punch
	entries := make([]timesheet.PunchEntry, 0, len(dayPunches))

	for i := range dayPunches {
		p := &dayPunches[i]
		entries = append(entries, timesheet.PunchEntry{
			Time:   p.Timestamp.Format(time.RFC3339),
			Kind:   string(p.Kind),
			Source: string(p.Source),
		})

		switch p.Kind {
		case punch.KindClockIn:
			if clockIn == nil {
				clockIn = p
			}
		case punch.KindClockOut:
			clockOut = p
		case punch.KindBreakStart:
			if breakStart == nil {
				breakStart = p
			}
		case punch.KindBreakEnd:
			breakEnd = p
		}
	}

	var workedHours, breakHours, lateMinutes, overtimeHours float64

	// Without both boundaries the day degrades to zero metrics. An
	// unmatched break candidate is ignored the same way.
	if clockIn != nil && clockOut != nil {
		workedMinutes := clockOut.Timestamp.Sub(clockIn.Timestamp).Minutes()

		var breakMinutes float64
		if breakStart != nil && breakEnd != nil {
			breakMinutes = breakEnd.Timestamp.Sub(breakStart.Timestamp).Minutes()
			workedMinutes -= breakMinutes
		}

		workedHours = workedMinutes / 60
		breakHours = breakMinutes / 60

		year, month, day := clockIn.Timestamp.Date()
		scheduledStart := time.Date(year, month, day,
			policy.Start.Hour(), policy.Start.Minute(), 0, 0,
			clockIn.Timestamp.Location(),
		)
		if diff := clockIn.Timestamp.Sub(scheduledStart).Minutes(); diff > float64(policy.LateGraceMinutes) {
			lateMinutes = diff - float64(policy.LateGraceMinutes)
		}

		year, month, day = clockOut.Timestamp.Date()
		scheduledEnd := time.Date(year, month, day,
			policy.End.Hour(), policy.End.Minute(), 0, 0,
			clockOut.Timestamp.Location(),
		)
		if diff := clockOut.Timestamp.Sub(scheduledEnd).Minutes(); diff > 0 {
			overtimeHours = diff / 60
		}
	}

	return timesheet.DayRecord{
		Date:          date,
		DayOfWeek:     dayPunches[0].Timestamp.Weekday().String(),
		Punches:       entries,
		WorkedHours:   round2(workedHours),
		BreakHours:    round2(breakHours),
		LateMinutes:   math.Round(lateMinutes),
		OvertimeHours: round2(overtimeHours),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
