package seasonality

import "time"

// HolidayRetail simulates a brick-and-mortar chain.
// Weekdays: 50-150 transactions per day
// Weekends: 100-300 transactions per day
// November and December: 2-15 units per transaction, otherwise 1-10
type HolidayRetail struct{}

// NewHolidayRetail creates a new HolidayRetail profile.
func NewHolidayRetail() Profile {
	return &HolidayRetail{}
}

func (p *HolidayRetail) Name() string {
	return "holiday-retail"
}

func (p *HolidayRetail) Description() string {
	return "Retail chain (weekend traffic peak, holiday basket size)"
}

func (p *HolidayRetail) DailyTransactions(day time.Time) Range {
	if IsWeekend(day) {
		return Range{Min: 100, Max: 300}
	}
	return Range{Min: 50, Max: 150}
}

func (p *HolidayRetail) Quantity(day time.Time) Range {
	if IsHolidaySeason(day) {
		return Range{Min: 2, Max: 15}
	}
	return Range{Min: 1, Max: 10}
}

// Flat keeps weekday volume and regular basket size all year.
type Flat struct{}

// NewFlat creates a new Flat profile.
func NewFlat() Profile {
	return &Flat{}
}

func (p *Flat) Name() string {
	return "flat"
}

func (p *Flat) Description() string {
	return "Flat (no weekly or seasonal variation)"
}

func (p *Flat) DailyTransactions(day time.Time) Range {
	return Range{Min: 50, Max: 150}
}

func (p *Flat) Quantity(day time.Time) Range {
	return Range{Min: 1, Max: 10}
}

// IsWeekend reports whether day falls on Saturday or Sunday.
func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHolidaySeason reports whether day falls in November or December.
func IsHolidaySeason(day time.Time) bool {
	return day.Month() == time.November || day.Month() == time.December
}
