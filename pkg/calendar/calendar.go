// Package calendar decides which half of the year a chart shows.
package calendar

import (
	"fmt"
	"time"
)

const (
	FirstSemester  = 1
	SecondSemester = 2
)

// Clock is the time source the chart title and semester are read from.
type Clock struct {
	Now func() time.Time
}

func System() Clock {
	return Clock{Now: time.Now}
}

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) Clock {
	return Clock{Now: func() time.Time { return t }}
}

func (c Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c Clock) Year() int {
	return c.now().Year()
}

func (c Clock) Month() time.Month {
	return c.now().Month()
}

// Semester is the half of the year the clock is in.
func (c Clock) Semester() int {
	return SemesterOf(c.Month())
}

// SemesterOf returns 1 for January to June and 2 for July to December.
func SemesterOf(m time.Month) int {
	if m <= time.June {
		return FirstSemester
	}
	return SecondSemester
}

// Toggle switches between the two semesters.
func Toggle(semester int) int {
	if semester == FirstSemester {
		return SecondSemester
	}
	return FirstSemester
}

// FirstMonth is the first month of semester.
func FirstMonth(semester int) time.Month {
	if semester == SecondSemester {
		return time.July
	}
	return time.January
}

func Title(year, semester int) string {
	return fmt.Sprintf("%d.%d - Performance", year, semester)
}
