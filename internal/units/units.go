// Package units converts and formats temperature readings and calendar dates
// for display in weather reports.
package units

import (
	"math"
	"strconv"
	"strings"
	"time"

	"weather-report/internal/models"
)

// DegreeSymbol is appended to every formatted temperature
const DegreeSymbol = "°C"

// LongDateLayout renders dates like "Tuesday 06 July 2021"
const LongDateLayout = "Monday 02 January 2006"

// dateLayouts are tried in order; bare dates first, then the full timestamps
// found in exported forecast files
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Reading is any value a temperature column may hold: integers, floats or a
// string containing a numeric literal
type Reading interface {
	int | int32 | int64 | float32 | float64 | string
}

// ToFloat coerces a reading to float64. Strings are trimmed and parsed;
// anything that is not a numeric literal yields a *models.FormatError.
func ToFloat[T Reading](v T) (float64, error) {
	switch x := any(v).(type) {
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, &models.FormatError{Value: x, Err: err}
		}
		return f, nil
	}
	// unreachable: Reading is a closed type set
	return 0, &models.FormatError{Value: "unsupported reading type"}
}

// FahrenheitToCelsius converts a Fahrenheit reading to Celsius rounded to one
// decimal place (see RoundTenths)
func FahrenheitToCelsius[T Reading](v T) (float64, error) {
	f, err := ToFloat(v)
	if err != nil {
		return 0, err
	}
	return RoundTenths((f - 32) * (5.0 / 9.0)), nil
}

// RoundTenths rounds x to one decimal place, breaking ties to even on the
// exact binary value of x. 0.25 rounds to 0.2, while 0.35 (stored as
// 0.34999...) rounds to 0.3.
func RoundTenths(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	// 'f' formatting with an explicit precision rounds the exact decimal
	// expansion half-to-even; parsing it back yields the nearest float64
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return rounded
}

// FormatTemperature appends the degree-Celsius suffix to a value. No rounding
// happens here; integral values keep a ".0" fraction.
func FormatTemperature(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !math.IsInf(v, 0) && !math.IsNaN(v) && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + DegreeSymbol
}

// ConvertDate renders an ISO calendar date as "<Weekday> <dd> <Month> <yyyy>".
// Timestamps are accepted and their calendar date is used as written, without
// timezone conversion. Invalid input yields a *models.ParseError.
func ConvertDate(isoDate string) (string, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, isoDate)
		if err == nil {
			return t.Format(LongDateLayout), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", &models.ParseError{Value: isoDate, Err: firstErr}
}
