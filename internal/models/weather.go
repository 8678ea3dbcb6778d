package models

// DayRecord represents one row of a forecast file: a calendar date plus the
// low and high readings in Fahrenheit, as written in the source
type DayRecord struct {
	Date string `json:"date"`
	Low  int    `json:"low"`
	High int    `json:"high"`
}

// Dataset is the ordered sequence of day records loaded from one source.
// File order is chronological and is never rearranged.
type Dataset []DayRecord

// Dates returns the date column in record order
func (d Dataset) Dates() []string {
	dates := make([]string, len(d))
	for i, rec := range d {
		dates[i] = rec.Date
	}
	return dates
}

// Lows returns the low-temperature column in record order
func (d Dataset) Lows() []int {
	lows := make([]int, len(d))
	for i, rec := range d {
		lows[i] = rec.Low
	}
	return lows
}

// Highs returns the high-temperature column in record order
func (d Dataset) Highs() []int {
	highs := make([]int, len(d))
	for i, rec := range d {
		highs[i] = rec.High
	}
	return highs
}

// Extremum is an extreme value together with its position in the sequence
// that produced it
type Extremum struct {
	Value float64 `json:"value"`
	Index int     `json:"index"`
}

// NullExtremum carries an Extremum that may be absent.
// Valid is false when the scanned sequence was empty.
type NullExtremum struct {
	Extremum Extremum
	Valid    bool
}

// Get returns the extremum and whether it is present
func (n NullExtremum) Get() (Extremum, bool) {
	return n.Extremum, n.Valid
}
