// Package exporter writes loaded forecast data as an XLSX workbook with an
// Overview sheet and a Daily sheet.
package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"weather-report/internal/models"
	"weather-report/internal/report"
)

// Sheet names written by WriteWorkbook
const (
	OverviewSheet = "Overview"
	DailySheet    = "Daily"
)

// ContentType is the MIME type of the workbook written by WriteWorkbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var dailyHeader = []interface{}{"Date", "Minimum (°C)", "Maximum (°C)"}

// WriteWorkbook renders the overview and daily breakdown of data to w.
// An empty dataset has no overview and fails with *models.EmptyInputError.
func WriteWorkbook(w io.Writer, data models.Dataset) error {
	overview, err := report.BuildOverview(data)
	if err != nil {
		return err
	}
	days, err := report.BuildDaily(data)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", OverviewSheet); err != nil {
		return fmt.Errorf("failed to name overview sheet: %w", err)
	}
	if err := writeOverview(f, overview); err != nil {
		return err
	}

	if _, err := f.NewSheet(DailySheet); err != nil {
		return fmt.Errorf("failed to create daily sheet: %w", err)
	}
	if err := writeDaily(f, days); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeOverview(f *excelize.File, o report.Overview) error {
	rows := [][]interface{}{
		{"Days", o.Days},
		{"Lowest (°C)", o.Lowest.Celsius, o.Lowest.Date},
		{"Highest (°C)", o.Highest.Celsius, o.Highest.Date},
		{"Average low (°C)", o.AverageLow},
		{"Average high (°C)", o.AverageHigh},
	}
	if err := setRows(f, OverviewSheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(OverviewSheet, "A", "A", 20); err != nil {
		return fmt.Errorf("failed to size overview sheet: %w", err)
	}
	return f.SetColWidth(OverviewSheet, "C", "C", 26)
}

func writeDaily(f *excelize.File, days []report.DaySummary) error {
	rows := make([][]interface{}, 0, len(days)+1)
	rows = append(rows, dailyHeader)
	for _, day := range days {
		rows = append(rows, []interface{}{day.Date, day.Low, day.High})
	}
	if err := setRows(f, DailySheet, rows); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(DailySheet, "A1", "C1", bold); err != nil {
		return fmt.Errorf("failed to style daily header: %w", err)
	}
	return f.SetColWidth(DailySheet, "A", "A", 26)
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
