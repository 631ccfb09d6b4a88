package visit

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRangePresetResolve(t *testing.T) {
	// 2024-03-13 is a Wednesday.
	now := time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		preset RangePreset
		start  string
		end    string
	}{
		{PresetLast7Days, "2024-03-07", "2024-03-13"},
		{PresetLast15Days, "2024-02-28", "2024-03-13"},
		{PresetLast30Days, "2024-02-13", "2024-03-13"},
		{PresetLastWeek, "2024-03-04", "2024-03-10"},
		{PresetLastMonth, "2024-02-01", "2024-02-29"},
	}

	for _, tt := range tests {
		start, end, ok := tt.preset.Resolve(now)
		if !ok {
			t.Errorf("Resolve(%q) not ok", tt.preset)
			continue
		}
		if !start.Equal(date(tt.start)) || !end.Equal(date(tt.end)) {
			t.Errorf("Resolve(%q) = %s..%s, want %s..%s",
				tt.preset, start.Format("2006-01-02"), end.Format("2006-01-02"), tt.start, tt.end)
		}
	}
}

func TestRangePresetResolveOnSunday(t *testing.T) {
	// Last week from a Sunday is the week just ending, not the current one.
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	start, end, ok := PresetLastWeek.Resolve(now)
	if !ok {
		t.Fatal("Resolve(last-week) not ok")
	}
	if !start.Equal(date("2024-02-26")) || !end.Equal(date("2024-03-03")) {
		t.Errorf("Resolve(last-week) = %s..%s, want 2024-02-26..2024-03-03",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}

func TestRangePresetResolveUnknown(t *testing.T) {
	if _, _, ok := RangePreset("this-quarter").Resolve(time.Now()); ok {
		t.Error("unknown preset resolved")
	}
}

func TestBucketByCategory(t *testing.T) {
	buckets := BucketByCategory(map[string]int{
		"Shop":       4,
		"Architect":  2,
		"Contractor": 3,
		"Mason":      1,
	})

	if len(buckets) != len(Categories) {
		t.Fatalf("got %d buckets, want %d", len(buckets), len(Categories))
	}
	if buckets[CategoryShop] != 4 {
		t.Errorf("Shop = %d, want 4", buckets[CategoryShop])
	}
	if buckets[CategoryOthers] != 4 {
		t.Errorf("Others = %d, want 4", buckets[CategoryOthers])
	}
	if buckets[CategoryBuilder] != 0 {
		t.Errorf("Builder = %d, want 0", buckets[CategoryBuilder])
	}
}
