// Package slots generates the bookable slot catalog. Generation runs once at
// seed time, outside the request path; end users never create or delete
// slots.
package slots

import (
	"time"

	"github.com/pavankalyan767/wundrsight-assignment/internal/model"
)

// Grid describes the business-hours layout to generate: PerDay consecutive
// intervals of SlotLen per day starting at Open, for Days days, with the
// lunch window cut out. LunchStart and LunchEnd are clock offsets from
// midnight of each day.
type Grid struct {
	Open       time.Time
	Days       int
	PerDay     int
	SlotLen    time.Duration
	LunchStart time.Duration
	LunchEnd   time.Duration
}

// DefaultGrid is the seeded catalog shape: 7 days of 8 half-hour slots from
// 09:00, lunch 12:30–13:30.
func DefaultGrid(day time.Time) Grid {
	y, m, d := day.Date()
	return Grid{
		Open:       time.Date(y, m, d, 9, 0, 0, 0, day.Location()),
		Days:       7,
		PerDay:     8,
		SlotLen:    30 * time.Minute,
		LunchStart: 12*time.Hour + 30*time.Minute,
		LunchEnd:   13*time.Hour + 30*time.Minute,
	}
}

// Generate walks a cursor through each day emitting PerDay slots. A slot
// that would overlap the lunch window is never emitted; the cursor jumps to
// the end of the window instead. Output is ordered ascending by start time.
func (g Grid) Generate() []model.Slot {
	out := make([]model.Slot, 0, g.Days*g.PerDay)
	for d := 0; d < g.Days; d++ {
		cursor := g.Open.AddDate(0, 0, d)
		y, m, day := cursor.Date()
		midnight := time.Date(y, m, day, 0, 0, 0, 0, cursor.Location())
		lunchFrom := midnight.Add(g.LunchStart)
		lunchTo := midnight.Add(g.LunchEnd)

		for emitted := 0; emitted < g.PerDay; {
			end := cursor.Add(g.SlotLen)
			if cursor.Before(lunchTo) && end.After(lunchFrom) {
				cursor = lunchTo
				continue
			}
			out = append(out, model.Slot{StartAt: cursor, EndAt: end})
			cursor = end
			emitted++
		}
	}
	return out
}
