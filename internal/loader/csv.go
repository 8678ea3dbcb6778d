// Package loader reads forecast files into an in-memory models.Dataset.
//
// Sources are comma-separated with one header row, which is always skipped.
// Every remaining non-blank row holds date, low, high; further columns are
// ignored.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"weather-report/internal/models"
)

const minColumns = 3

// LoadFile opens path and loads it with LoadFromSource. The file is closed on
// every return path. Failure to open yields *models.SourceNotFoundError.
func LoadFile(path string) (models.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &models.SourceNotFoundError{Path: path, Err: err}
	}
	defer file.Close()

	return LoadFromSource(file)
}

// LoadFromSource parses a forecast table from r. A source holding only a
// header, or nothing at all, yields an empty Dataset.
func LoadFromSource(r io.Reader) (models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// header
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Dataset{}, nil
		}
		return nil, csvError(err)
	}

	data := models.Dataset{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}

		// encoding/csv already drops empty lines; this guards rows that
		// split into nothing at all
		if len(row) == 0 {
			continue
		}

		line, _ := reader.FieldPos(0)
		record, err := parseRow(row, line)
		if err != nil {
			return nil, err
		}
		data = append(data, record)
	}

	return data, nil
}

// parseRow converts one retained row into a DayRecord
func parseRow(row []string, line int) (models.DayRecord, error) {
	if len(row) < minColumns {
		return models.DayRecord{}, &models.MalformedRowError{
			Line:   line,
			Row:    row,
			Reason: fmt.Sprintf("expected at least %d columns, got %d", minColumns, len(row)),
		}
	}

	low, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return models.DayRecord{}, &models.MalformedRowError{
			Line:   line,
			Row:    row,
			Reason: "invalid low temperature",
			Err:    err,
		}
	}

	high, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return models.DayRecord{}, &models.MalformedRowError{
			Line:   line,
			Row:    row,
			Reason: "invalid high temperature",
			Err:    err,
		}
	}

	return models.DayRecord{
		Date: row[0],
		Low:  low,
		High: high,
	}, nil
}

// csvError maps a reader failure onto the row error type
func csvError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &models.MalformedRowError{
			Line:   parseErr.StartLine,
			Reason: "unreadable row",
			Err:    err,
		}
	}
	return fmt.Errorf("failed to read source: %w", err)
}
