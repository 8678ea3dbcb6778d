// Package stats computes aggregate statistics over temperature readings.
package stats

import (
	"weather-report/internal/models"
	"weather-report/internal/units"
)

// Mean returns the arithmetic mean of values after coercing each to float64.
// An empty sequence yields *models.EmptyInputError.
func Mean[T units.Reading](values []T) (float64, error) {
	if len(values) == 0 {
		return 0, &models.EmptyInputError{Op: "mean"}
	}

	var sum float64
	for _, v := range values {
		f, err := units.ToFloat(v)
		if err != nil {
			return 0, err
		}
		sum += f
	}

	return sum / float64(len(values)), nil
}

// FindMin scans left to right and returns the smallest value with its index.
// Ties resolve to the last occurrence. An empty sequence yields an invalid
// NullExtremum and no error.
func FindMin[T units.Reading](values []T) (models.NullExtremum, error) {
	return scan(values, func(v, best float64) bool { return v <= best })
}

// FindMax is the mirror of FindMin; ties also resolve to the last occurrence
func FindMax[T units.Reading](values []T) (models.NullExtremum, error) {
	return scan(values, func(v, best float64) bool { return v >= best })
}

// scan keeps the running extremum, replacing it whenever replace reports true
func scan[T units.Reading](values []T, replace func(v, best float64) bool) (models.NullExtremum, error) {
	var result models.NullExtremum

	for i, raw := range values {
		v, err := units.ToFloat(raw)
		if err != nil {
			return models.NullExtremum{}, err
		}
		if !result.Valid || replace(v, result.Extremum.Value) {
			result.Extremum = models.Extremum{Value: v, Index: i}
			result.Valid = true
		}
	}

	return result, nil
}
