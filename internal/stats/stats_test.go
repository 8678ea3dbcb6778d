package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-report/internal/models"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"single", []float64{49}, 49},
		{"integers", []float64{49, 57, 56, 55, 53}, 54},
		{"fractional result", []float64{40, 30, 35}, 35},
		{"negative", []float64{-10, 10, -5}, -5.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.values)
			require.NoError(t, err)

			var sum float64
			for _, v := range tt.values {
				sum += v
			}
			assert.InDelta(t, sum/float64(len(tt.values)), got, 1e-9)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMean_MixedInputs(t *testing.T) {
	fromInts, err := Mean([]int{51, 58, 59, 52, 52, 48, 47, 53})
	require.NoError(t, err)
	assert.InDelta(t, 52.5, fromInts, 1e-9)

	fromStrings, err := Mean([]string{"51", "58.0", " 59 "})
	require.NoError(t, err)
	assert.InDelta(t, 56.0, fromStrings, 1e-9)

	_, err = Mean([]string{"51", "n/a"})
	var formatErr *models.FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "n/a", formatErr.Value)
}

func TestMean_Empty(t *testing.T) {
	_, err := Mean([]int{})

	var emptyErr *models.EmptyInputError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "mean", emptyErr.Op)
}

func TestFindMin(t *testing.T) {
	tests := []struct {
		name      string
		values    []int
		wantValue float64
		wantIndex int
	}{
		{"single", []int{7}, 7, 0},
		{"first", []int{1, 3, 5}, 1, 0},
		{"middle", []int{49, 57, 44, 55}, 44, 2},
		{"tie reports last occurrence", []int{3, 1, 1, 5}, 1, 2},
		{"all equal reports last index", []int{4, 4, 4}, 4, 2},
		{"negative", []int{-3, 2, -7, 0}, -7, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindMin(tt.values)
			require.NoError(t, err)

			ext, ok := got.Get()
			require.True(t, ok)
			assert.Equal(t, tt.wantValue, ext.Value)
			assert.Equal(t, tt.wantIndex, ext.Index)
		})
	}
}

func TestFindMax(t *testing.T) {
	tests := []struct {
		name      string
		values    []int
		wantValue float64
		wantIndex int
	}{
		{"single", []int{7}, 7, 0},
		{"last", []int{3, 1, 1, 5}, 5, 3},
		{"tie reports last occurrence", []int{5, 1, 5, 2}, 5, 2},
		{"all equal reports last index", []int{4, 4, 4}, 4, 2},
		{"negative", []int{-3, -2, -7}, -2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindMax(tt.values)
			require.NoError(t, err)

			ext, ok := got.Get()
			require.True(t, ok)
			assert.Equal(t, tt.wantValue, ext.Value)
			assert.Equal(t, tt.wantIndex, ext.Index)
		})
	}
}

func TestFindExtremes_Strings(t *testing.T) {
	values := []string{"10.1", "-71.2", "40", "-71.2"}

	minimum, err := FindMin(values)
	require.NoError(t, err)
	assert.Equal(t, models.Extremum{Value: -71.2, Index: 3}, minimum.Extremum)

	maximum, err := FindMax(values)
	require.NoError(t, err)
	assert.Equal(t, models.Extremum{Value: 40, Index: 2}, maximum.Extremum)

	_, err = FindMin([]string{"1", "cold"})
	var formatErr *models.FormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestFindExtremes_Empty(t *testing.T) {
	minimum, err := FindMin([]float64{})
	require.NoError(t, err)
	assert.False(t, minimum.Valid)

	maximum, err := FindMax([]int(nil))
	require.NoError(t, err)
	assert.False(t, maximum.Valid)
}
