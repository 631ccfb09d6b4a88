package attendance

import "time"

type DayType string

const (
	FullDay DayType = "full day"
	HalfDay DayType = "half day"
	Absent  DayType = "absent"
)

// Thresholds are the visit counts that earn a full or half day.
type Thresholds struct {
	FullDay int
	HalfDay int
}

// Classify maps a day's completed visit count to its day type. The full-day
// threshold is checked first, so meeting both thresholds yields a full day.
// hasAttendance is true whenever any visit was completed.
func Classify(completedVisits int, t Thresholds) (dayType DayType, hasAttendance bool) {
	hasAttendance = completedVisits > 0

	switch {
	case completedVisits >= t.FullDay:
		return FullDay, hasAttendance
	case completedVisits >= t.HalfDay:
		return HalfDay, hasAttendance
	default:
		return Absent, hasAttendance
	}
}

// Day is one calendar day of visit activity for an employee.
type Day struct {
	Date            time.Time
	CompletedVisits int
}

// Tally aggregates classified days over a range. WorkingDays is the
// denominator for pro-ration; DaysWorked counts a half day as 0.5.
type Tally struct {
	WorkingDays int
	PresentDays int
	FullDays    int
	HalfDays    int
	AbsentDays  int
	DaysWorked  float64
}

// TallyRange classifies every day and accumulates counts. A Sunday
// contributes nothing to any count unless includeSundays is set.
func TallyRange(days []Day, t Thresholds, includeSundays bool) Tally {
	var tally Tally

	for _, day := range days {
		if day.Date.Weekday() == time.Sunday && !includeSundays {
			continue
		}
		tally.WorkingDays++

		dayType, hasAttendance := Classify(day.CompletedVisits, t)
		if hasAttendance {
			tally.PresentDays++
		}

		switch dayType {
		case FullDay:
			tally.FullDays++
			tally.DaysWorked++
		case HalfDay:
			tally.HalfDays++
			tally.DaysWorked += 0.5
		default:
			tally.AbsentDays++
		}
	}

	return tally
}
