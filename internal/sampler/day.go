package sampler

import (
	"time"
)

// MinutesPerDay is the length of the minute-of-day scale.
const MinutesPerDay = 1440

// Day is a calendar day in a location. Minute arithmetic that leaves the day
// goes through time.Date, so the calendar day is always re-derived.
type Day struct {
	Year  int
	Month time.Month
	Day   int
	Loc   *time.Location
}

// DayOf returns the calendar day of t in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d, Loc: t.Location()}
}

func (d Day) location() *time.Location {
	if d.Loc == nil {
		return time.UTC
	}
	return d.Loc
}

// Start is local midnight.
func (d Day) Start() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, d.location())
}

// At returns the wall-clock instant minute minutes after midnight. Minutes
// outside [0, 1440) roll into neighbouring days.
//
// A wall time skipped by a spring-forward change is read with the offset in
// force before the change, so it lands that far past the gap: on a one-hour
// gap at 02:00, minutes 120-179 give the same instants as 180-239. A wall
// time repeated by a fall-back change resolves to its first occurrence.
func (d Day) At(minute int) time.Time {
	loc := d.location()
	t := time.Date(d.Year, d.Month, d.Day, 0, minute, 0, 0, loc)

	_, before := t.Add(-3 * time.Hour).Zone()
	_, after := t.Add(3 * time.Hour).Zone()
	if before == after {
		return t
	}

	wall := time.Date(d.Year, d.Month, d.Day, 0, minute, 0, 0, time.UTC)
	first := wall.Add(-time.Duration(before) * time.Second).In(loc)
	if sameWall(first, wall) || !sameWall(t, wall) {
		return first
	}
	return t
}

func sameWall(t, wall time.Time) bool {
	return t.Year() == wall.Year() && t.YearDay() == wall.YearDay() &&
		t.Hour() == wall.Hour() && t.Minute() == wall.Minute()
}

// AddDays moves by whole calendar days.
func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, d.location()))
}

// Equal compares calendar dates and location names.
func (d Day) Equal(o Day) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day &&
		d.location().String() == o.location().String()
}

func (d Day) String() string {
	return d.Start().Format("2006-01-02")
}

// MinuteOfDay reduces any minute value into [0, 1440).
func MinuteOfDay(m int) int {
	return ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
}
