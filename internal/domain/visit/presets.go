package visit

import "time"

// RangePreset names a relative date range used by the visit report.
type RangePreset string

const (
	PresetLast7Days  RangePreset = "last-7-days"
	PresetLast15Days RangePreset = "last-15-days"
	PresetLast30Days RangePreset = "last-30-days"
	PresetLastWeek   RangePreset = "last-week"
	PresetLastMonth  RangePreset = "last-month"
)

// Resolve turns a preset into concrete bounds relative to now. Last week
// is the previous Monday through Sunday; last month the previous calendar
// month.
func (p RangePreset) Resolve(now time.Time) (start, end time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch p {
	case PresetLast7Days:
		return today.AddDate(0, 0, -6), today, true
	case PresetLast15Days:
		return today.AddDate(0, 0, -14), today, true
	case PresetLast30Days:
		return today.AddDate(0, 0, -29), today, true
	case PresetLastWeek:
		weekday := int(today.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		thisMonday := today.AddDate(0, 0, -(weekday - 1))
		return thisMonday.AddDate(0, 0, -7), thisMonday.AddDate(0, 0, -1), true
	case PresetLastMonth:
		firstOfThisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return firstOfThisMonth.AddDate(0, -1, 0), firstOfThisMonth.AddDate(0, 0, -1), true
	default:
		return time.Time{}, time.Time{}, false
	}
}
