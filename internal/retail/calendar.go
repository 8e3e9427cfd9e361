package retail

import (
	"fmt"
	"time"
)

var timeColumns = []string{"Date", "Day_of_Week", "Week_of_Year", "Month", "Quarter", "Year"}

// Day is one row of the calendar dimension. Every field is derived from
// Date.
type Day struct {
	Date       time.Time
	DayOfWeek  string
	WeekOfYear int
	Month      string
	Quarter    string
	Year       int
}

// Row renders the day in timeColumns order.
func (d Day) Row() []any {
	return []any{d.Date, d.DayOfWeek, d.WeekOfYear, d.Month, d.Quarter, d.Year}
}

// NewDay derives the calendar attributes of date. Week_of_Year is the
// ISO week number.
func NewDay(date time.Time) Day {
	_, week := date.ISOWeek()
	return Day{
		Date:       date,
		DayOfWeek:  date.Weekday().String(),
		WeekOfYear: week,
		Month:      date.Month().String(),
		Quarter:    fmt.Sprintf("Q%d", (int(date.Month())-1)/3+1),
		Year:       date.Year(),
	}
}

// GenerateTime creates one row per day in the configured range.
func (g *Generator) GenerateTime() []Day {
	dates := g.opts.Dates()
	days := make([]Day, 0, len(dates))
	for _, d := range dates {
		days = append(days, NewDay(d))
	}
	return days
}
