package request

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrInvalidDateRange = errors.New("invalid date range")
)

const dateLayout = "2006-01-02"

// PeriodQuery selects the dashboard window, either by named period within a
// year or by explicit start/end dates.
//
//	?year=2024&period=3      -> March 2024
//	?year=2024&period=Q2     -> April..June 2024
//	?start=2024-01-10&end=2024-02-20
type PeriodQuery struct {
	Year   int    `form:"year"`
	Period string `form:"period"`
	Start  string `form:"start"`
	End    string `form:"end"`
}

// Resolve returns the inclusive [start, end] window in today's location.
// End is the last second of its day.
func (q PeriodQuery) Resolve(today time.Time) (time.Time, time.Time, error) {
	loc := today.Location()
	if q.Start != "" || q.End != "" {
		return q.resolveDates(loc)
	}

	year := q.Year
	if year == 0 {
		year = today.Year()
	}
	if year < 1900 || year > 9999 {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}

	var from, to time.Month
	period := strings.ToUpper(strings.TrimSpace(q.Period))
	switch period {
	case "", "YEAR":
		from, to = time.January, time.December
	case "CURRENT":
		from, to = today.Month(), today.Month()
	case "Q1":
		from, to = time.January, time.March
	case "Q2":
		from, to = time.April, time.June
	case "Q3":
		from, to = time.July, time.September
	case "Q4":
		from, to = time.October, time.December
	case "S1":
		from, to = time.January, time.June
	case "S2":
		from, to = time.July, time.December
	default:
		month, err := strconv.Atoi(period)
		if err != nil || month < 1 || month > 12 {
			return time.Time{}, time.Time{}, ErrInvalidPeriod
		}
		from, to = time.Month(month), time.Month(month)
	}

	start := time.Date(year, from, 1, 0, 0, 0, 0, loc)
	end := endOfDay(time.Date(year, to+1, 0, 0, 0, 0, 0, loc))
	return start, end, nil
}

func (q PeriodQuery) resolveDates(loc *time.Location) (time.Time, time.Time, error) {
	if q.Start == "" || q.End == "" {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	start, err := time.ParseInLocation(dateLayout, strings.TrimSpace(q.Start), loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	end, err := time.ParseInLocation(dateLayout, strings.TrimSpace(q.End), loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	end = endOfDay(end)
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return start, end, nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
