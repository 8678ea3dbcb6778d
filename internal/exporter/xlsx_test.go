package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"weather-report/internal/models"
)

func TestWriteWorkbook(t *testing.T) {
	data := models.Dataset{
		{Date: "2021-07-05", Low: 40, High: 80},
		{Date: "2021-07-06", Low: 30, High: 90},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, data))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{OverviewSheet, DailySheet}, f.GetSheetList())

	overview, err := f.GetRows(OverviewSheet)
	require.NoError(t, err)
	require.Len(t, overview, 5)
	assert.Equal(t, []string{"Days", "2"}, overview[0])
	assert.Equal(t, []string{"Lowest (°C)", "-1.1", "Tuesday 06 July 2021"}, overview[1])
	assert.Equal(t, []string{"Highest (°C)", "32.2", "Tuesday 06 July 2021"}, overview[2])
	assert.Equal(t, []string{"Average low (°C)", "1.7"}, overview[3])
	assert.Equal(t, []string{"Average high (°C)", "29.4"}, overview[4])

	daily, err := f.GetRows(DailySheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Date", "Minimum (°C)", "Maximum (°C)"},
		{"Monday 05 July 2021", "4.4", "26.7"},
		{"Tuesday 06 July 2021", "-1.1", "32.2"},
	}, daily)
}

func TestWriteWorkbook_Errors(t *testing.T) {
	t.Run("empty dataset", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteWorkbook(&buf, models.Dataset{})

		var empty *models.EmptyInputError
		assert.ErrorAs(t, err, &empty)
		assert.Zero(t, buf.Len())
	})

	t.Run("bad date", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteWorkbook(&buf, models.Dataset{{Date: "yesterday", Low: 40, High: 80}})

		var parseErr *models.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}
