package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// excelEpochOffset is the number of days between the spreadsheet epoch and 1970-01-01.
const excelEpochOffset = 25569

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
}

// ParseDate decodes a date cell. Numeric cells are spreadsheet serials; anything
// else is tried against the accepted text layouts in loc. Empty and zero values
// decode to nil.
func ParseDate(raw string, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial == 0 {
			return nil, nil
		}
		t := FromExcelSerial(serial, loc)
		return &t, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", raw)
}

// FromExcelSerial converts a spreadsheet serial into a time in loc. The whole
// part selects the calendar day (taken at UTC) and the fractional part the
// time of day.
func FromExcelSerial(serial float64, loc *time.Location) time.Time {
	whole := math.Floor(serial)
	day := time.Unix(int64(whole-excelEpochOffset)*86400, 0).UTC()

	fraction := serial - whole + 0.0000001
	totalSeconds := int(math.Floor(86400 * fraction))
	seconds := totalSeconds % 60
	totalSeconds -= seconds
	hours := totalSeconds / 3600
	minutes := (totalSeconds / 60) % 60

	return time.Date(day.Year(), day.Month(), day.Day(), hours, minutes, seconds, 0, loc)
}
