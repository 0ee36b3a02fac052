package report

import (
	"fmt"
	"time"
)

// Since returns the start of the window of the given period ending at at.
func Since(period string, at time.Time) time.Time {
	switch period {
	case PeriodDaily:
		return at.AddDate(0, 0, -1)
	case PeriodWeekly:
		return at.AddDate(0, 0, -7)
	case PeriodQuarterly:
		return at.AddDate(0, -3, 0)
	case PeriodSemiannual:
		return at.AddDate(0, -6, 0)
	case PeriodAnnual:
		return at.AddDate(-1, 0, 0)
	}
	return at.AddDate(0, -1, 0)
}

// WeekOfMonth numbers weeks from 1 with Monday as the first day, so the first
// partial week of the month is week 1.
func WeekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	offset := (int(first.Weekday()) + 6) % 7
	return (t.Day() + offset + 6) / 7
}

// counter keeps first-seen order, which is the order charts are drawn in.
type counter struct {
	order  []string
	values map[string]int64
}

func newCounter() *counter {
	return &counter{values: map[string]int64{}}
}

func (c *counter) add(name string, v int64) {
	if _, ok := c.values[name]; !ok {
		c.order = append(c.order, name)
	}
	c.values[name] += v
}

func (c *counter) points() []Point {
	out := make([]Point, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, Point{Name: name, Value: c.values[name]})
	}
	return out
}

// weeks returns Sem 1..Sem 5 buckets; dates past the fifth week are left out.
func weeks(label string, dates []time.Time, values []int64) *Series {
	points := make([]Point, 5)
	for i := range points {
		points[i].Name = fmt.Sprintf("Sem %d", i+1)
	}
	for i, d := range dates {
		w := WeekOfMonth(d)
		if w >= 1 && w <= 5 {
			points[w-1].Value += values[i]
		}
	}
	return &Series{Label: label, Points: points}
}
