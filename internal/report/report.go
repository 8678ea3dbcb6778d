// Package report composes loaded forecast data into the overview and daily
// text reports.
//
// The Build functions return structured results for JSON and workbook output;
// the Generate functions render the fixed text templates.
package report

import (
	"fmt"
	"strings"

	"weather-report/internal/models"
	"weather-report/internal/stats"
	"weather-report/internal/units"
)

// Extreme is an extreme temperature in Celsius and the long-form date it
// occurs on
type Extreme struct {
	Celsius float64 `json:"celsius"`
	Date    string  `json:"date"`
	Index   int     `json:"index"`
}

// Overview is the multi-day summary of a dataset
type Overview struct {
	Days        int     `json:"days"`
	Lowest      Extreme `json:"lowest"`
	Highest     Extreme `json:"highest"`
	AverageLow  float64 `json:"average_low_celsius"`
	AverageHigh float64 `json:"average_high_celsius"`
}

// DaySummary is one day of the daily breakdown, in Celsius
type DaySummary struct {
	Date string  `json:"date"`
	Low  float64 `json:"low_celsius"`
	High float64 `json:"high_celsius"`
}

// BuildOverview computes the overview of data. An empty dataset yields
// *models.EmptyInputError.
func BuildOverview(data models.Dataset) (Overview, error) {
	if len(data) == 0 {
		return Overview{}, &models.EmptyInputError{Op: "overview"}
	}

	dates := data.Dates()
	lows := data.Lows()
	highs := data.Highs()

	lowest, err := extreme(stats.FindMin(lows))
	if err != nil {
		return Overview{}, err
	}
	lowest.Date, err = units.ConvertDate(dates[lowest.Index])
	if err != nil {
		return Overview{}, err
	}

	highest, err := extreme(stats.FindMax(highs))
	if err != nil {
		return Overview{}, err
	}
	highest.Date, err = units.ConvertDate(dates[highest.Index])
	if err != nil {
		return Overview{}, err
	}

	avgLow, err := meanCelsius(lows)
	if err != nil {
		return Overview{}, err
	}
	avgHigh, err := meanCelsius(highs)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		Days:        len(data),
		Lowest:      lowest,
		Highest:     highest,
		AverageLow:  avgLow,
		AverageHigh: avgHigh,
	}, nil
}

// BuildDaily converts every record of data, in order
func BuildDaily(data models.Dataset) ([]DaySummary, error) {
	days := make([]DaySummary, 0, len(data))
	for _, rec := range data {
		date, err := units.ConvertDate(rec.Date)
		if err != nil {
			return nil, err
		}
		low, err := units.FahrenheitToCelsius(rec.Low)
		if err != nil {
			return nil, err
		}
		high, err := units.FahrenheitToCelsius(rec.High)
		if err != nil {
			return nil, err
		}
		days = append(days, DaySummary{Date: date, Low: low, High: high})
	}
	return days, nil
}

// GenerateOverviewSummary renders the overview report for data
func GenerateOverviewSummary(data models.Dataset) (string, error) {
	overview, err := BuildOverview(data)
	if err != nil {
		return "", err
	}
	return overview.String(), nil
}

// GenerateDailySummary renders one block per record. An empty dataset yields
// an empty string.
func GenerateDailySummary(data models.Dataset) (string, error) {
	days, err := BuildDaily(data)
	if err != nil {
		return "", err
	}
	return RenderDaily(days), nil
}

// RenderDaily concatenates the text blocks of days
func RenderDaily(days []DaySummary) string {
	var b strings.Builder
	for _, day := range days {
		b.WriteString(day.String())
	}
	return b.String()
}

// String renders the overview text template
func (o Overview) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d Day Overview\n", o.Days)
	fmt.Fprintf(&b, "  The lowest temperature will be %s, and will occur on %s.\n",
		units.FormatTemperature(o.Lowest.Celsius), o.Lowest.Date)
	fmt.Fprintf(&b, "  The highest temperature will be %s, and will occur on %s.\n",
		units.FormatTemperature(o.Highest.Celsius), o.Highest.Date)
	fmt.Fprintf(&b, "  The average low this week is %s.\n", units.FormatTemperature(o.AverageLow))
	fmt.Fprintf(&b, "  The average high this week is %s.\n", units.FormatTemperature(o.AverageHigh))
	return b.String()
}

// String renders one daily block, including its trailing blank line
func (d DaySummary) String() string {
	return fmt.Sprintf("---- %s ----\n  Minimum Temperature: %s\n  Maximum Temperature: %s\n\n",
		d.Date, units.FormatTemperature(d.Low), units.FormatTemperature(d.High))
}

// extreme converts a Fahrenheit extremum into an Extreme without its date
func extreme(result models.NullExtremum, err error) (Extreme, error) {
	if err != nil {
		return Extreme{}, err
	}
	ext, ok := result.Get()
	if !ok {
		return Extreme{}, &models.EmptyInputError{Op: "extremum"}
	}
	celsius, err := units.FahrenheitToCelsius(ext.Value)
	if err != nil {
		return Extreme{}, err
	}
	return Extreme{Celsius: celsius, Index: ext.Index}, nil
}

func meanCelsius(values []int) (float64, error) {
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, err
	}
	return units.FahrenheitToCelsius(mean)
}
