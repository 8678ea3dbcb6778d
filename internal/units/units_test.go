package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-report/internal/models"
)

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"one decimal", 4.4, "4.4°C"},
		{"negative", -17.8, "-17.8°C"},
		{"integral keeps fraction", 100.0, "100.0°C"},
		{"zero", 0, "0.0°C"},
		{"no rounding", 26.666, "26.666°C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTemperature(tt.value))
		})
	}
}

func TestConvertDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare date", input: "2021-07-06", want: "Tuesday 06 July 2021"},
		{name: "single digit day padded", input: "2021-07-05", want: "Monday 05 July 2021"},
		{name: "leap day", input: "2020-02-29", want: "Saturday 29 February 2020"},
		{name: "timestamp with offset keeps written date", input: "2021-07-02T07:00:00+08:00", want: "Friday 02 July 2021"},
		{name: "naive timestamp", input: "2021-07-03T23:59:59", want: "Saturday 03 July 2021"},
		{name: "invalid month", input: "2021-13-01", wantErr: true},
		{name: "not a leap year", input: "2021-02-29", wantErr: true},
		{name: "wrong separator", input: "2021/07/06", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertDate(tt.input)
			if tt.wantErr {
				var parseErr *models.ParseError
				require.True(t, errors.As(err, &parseErr), "expected ParseError, got %v", err)
				assert.Equal(t, tt.input, parseErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFahrenheitToCelsius(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		want float64
	}{
		{"freezing", 32, 0.0},
		{"boiling", 212, 100.0},
		{"zero fahrenheit", 0, -17.8},
		{"forty", 40, 4.4},
		{"eighty", 80, 26.7},
		{"below freezing", 30, -1.1},
		{"fractional input", 85.5, 29.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FahrenheitToCelsius(tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFahrenheitToCelsius_Inputs(t *testing.T) {
	fromInt, err := FahrenheitToCelsius(212)
	require.NoError(t, err)
	assert.Equal(t, 100.0, fromInt)

	fromInt64, err := FahrenheitToCelsius(int64(0))
	require.NoError(t, err)
	assert.Equal(t, -17.8, fromInt64)

	fromString, err := FahrenheitToCelsius(" 40 ")
	require.NoError(t, err)
	assert.Equal(t, 4.4, fromString)

	fromDecimalString, err := FahrenheitToCelsius("80.0")
	require.NoError(t, err)
	assert.Equal(t, 26.7, fromDecimalString)

	_, err = FahrenheitToCelsius("hot")
	var formatErr *models.FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "hot", formatErr.Value)
}

// TestRoundTenths pins half-to-even on the exact binary value
func TestRoundTenths(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.25, 0.2},
		{0.75, 0.8},
		{-0.25, -0.2},
		{1.25, 1.2},
		{0.35, 0.3},
		{4.444444444444445, 4.4},
		{26.666666666666668, 26.7},
		{-17.77777777777778, -17.8},
		{29.444444444444446, 29.4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundTenths(tt.in), "RoundTenths(%v)", tt.in)
	}

	assert.True(t, math.IsNaN(RoundTenths(math.NaN())))
	assert.True(t, math.IsInf(RoundTenths(math.Inf(1)), 1))
}

func TestToFloat(t *testing.T) {
	v, err := ToFloat(float32(1.5))
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = ToFloat(int32(-7))
	require.NoError(t, err)
	assert.Equal(t, -7.0, v)

	v, err = ToFloat("1e2")
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)

	_, err = ToFloat("")
	var formatErr *models.FormatError
	assert.True(t, errors.As(err, &formatErr))
}
