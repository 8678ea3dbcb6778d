package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weather-report/internal/loader"
	"weather-report/internal/models"
	"weather-report/internal/report"
	"weather-report/pkg/logging"
	"weather-report/pkg/metrics"
)

// Report kinds used as metric labels
const (
	KindOverview = "overview"
	KindDaily    = "daily"
)

// ReportService loads forecast files and builds reports from them
type ReportService struct {
	logger  *logging.StructuredLogger
	metrics *metrics.Collector
}

// SummaryResult holds both text reports rendered from one load
type SummaryResult struct {
	Dataset  models.Dataset
	Overview string
	Daily    string
	Duration time.Duration
}

// NewReportService creates a new report service
func NewReportService(logger *logging.StructuredLogger, metricsCollector *metrics.Collector) *ReportService {
	return &ReportService{
		logger:  logger,
		metrics: metricsCollector,
	}
}

// LoadDataset reads the forecast file at path
func (s *ReportService) LoadDataset(ctx context.Context, path string) (models.Dataset, error) {
	log := s.logger.WithFields(logging.Fields{"path": path})
	log.Debug(ctx, "[LOAD_START] Loading forecast data", logging.Fields{
		"stage": "LOAD",
	})

	timer := s.metrics.NewTimer(s.metrics.LoadDuration)
	data, err := loader.LoadFile(path)
	duration := timer.ObserveDuration()
	if err != nil {
		errType := ErrorType(err)
		s.metrics.RecordLoadError(errType)
		log.Error(ctx, "[LOAD_ERROR] Failed to load forecast data", logging.Fields{
			"error_type": errType,
			"stage":      "LOAD",
		}, err)
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	s.metrics.RecordLoad(len(data))
	log.Info(ctx, "[LOAD_COMPLETE] Forecast data loaded", logging.Fields{
		"days":             len(data),
		"duration_seconds": duration.Seconds(),
		"stage":            "COMPLETE",
	})

	return data, nil
}

// Overview builds the multi-day overview of data
func (s *ReportService) Overview(ctx context.Context, data models.Dataset) (report.Overview, error) {
	timer := s.metrics.NewTimer(s.metrics.ReportDuration.WithLabelValues(KindOverview))
	overview, err := report.BuildOverview(data)
	timer.ObserveDuration()
	if err != nil {
		s.reportFailed(ctx, KindOverview, len(data), err)
		return report.Overview{}, fmt.Errorf("failed to build overview: %w", err)
	}

	s.metrics.RecordReport(KindOverview)
	s.logger.Debug(ctx, "[REPORT_COMPLETE] Overview built", logging.Fields{
		"kind": KindOverview,
		"days": overview.Days,
	})
	return overview, nil
}

// Daily builds the per-day breakdown of data. An empty dataset yields no days.
func (s *ReportService) Daily(ctx context.Context, data models.Dataset) ([]report.DaySummary, error) {
	timer := s.metrics.NewTimer(s.metrics.ReportDuration.WithLabelValues(KindDaily))
	days, err := report.BuildDaily(data)
	timer.ObserveDuration()
	if err != nil {
		s.reportFailed(ctx, KindDaily, len(data), err)
		return nil, fmt.Errorf("failed to build daily report: %w", err)
	}

	s.metrics.RecordReport(KindDaily)
	s.logger.Debug(ctx, "[REPORT_COMPLETE] Daily report built", logging.Fields{
		"kind": KindDaily,
		"days": len(days),
	})
	return days, nil
}

// Summarize loads path once and renders the overview and daily text reports
func (s *ReportService) Summarize(ctx context.Context, path string) (*SummaryResult, error) {
	startTime := time.Now()

	data, err := s.LoadDataset(ctx, path)
	if err != nil {
		return nil, err
	}

	overview, err := s.Overview(ctx, data)
	if err != nil {
		return nil, err
	}

	days, err := s.Daily(ctx, data)
	if err != nil {
		return nil, err
	}

	result := &SummaryResult{
		Dataset:  data,
		Overview: overview.String(),
		Daily:    report.RenderDaily(days),
		Duration: time.Since(startTime),
	}

	s.logger.Info(ctx, "[SUMMARY_COMPLETE] Reports generated", logging.Fields{
		"path":             path,
		"days":             len(data),
		"duration_seconds": result.Duration.Seconds(),
		"stage":            "COMPLETE",
	})

	return result, nil
}

func (s *ReportService) reportFailed(ctx context.Context, kind string, days int, err error) {
	errType := ErrorType(err)
	s.metrics.RecordReportError(kind, errType)
	s.logger.Error(ctx, "[REPORT_ERROR] Report generation failed", logging.Fields{
		"kind":       kind,
		"days":       days,
		"error_type": errType,
	}, err)
}

// ErrorType classifies err for metric labels and API responses
func ErrorType(err error) string {
	var (
		notFound  *models.SourceNotFoundError
		malformed *models.MalformedRowError
		parseErr  *models.ParseError
		formatErr *models.FormatError
		empty     *models.EmptyInputError
	)

	switch {
	case errors.As(err, &notFound):
		return "source_not_found"
	case errors.As(err, &malformed):
		return "malformed_row"
	case errors.As(err, &parseErr):
		return "parse_error"
	case errors.As(err, &formatErr):
		return "format_error"
	case errors.As(err, &empty):
		return "empty_input"
	default:
		return "internal_error"
	}
}
