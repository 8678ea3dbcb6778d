package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"weather-report/internal/config"
	"weather-report/internal/report"
	"weather-report/internal/services"
	"weather-report/pkg/logging"
	"weather-report/pkg/metrics"
)

const version = "1.0.0"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "report: %v\n", err)
		}
		os.Exit(1)
	}
}

// run prints the overview then the daily report for one forecast file
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataFile := fs.String("data", cfg.Data.File, "Forecast CSV file to report on")
	only := fs.String("only", "", "Print only one report: overview or daily")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch *only {
	case "", services.KindOverview, services.KindDaily:
	default:
		return fmt.Errorf("invalid -only value %q, expected %s or %s", *only, services.KindOverview, services.KindDaily)
	}

	logger := logging.NewStructuredLogger("weather-report", version, logging.ParseLevel(cfg.Logging.Level))
	logger.SetOutput(stderr)
	metricsCollector := metrics.NewCollector(cfg.Metrics.Namespace, prometheus.NewRegistry())
	service := services.NewReportService(logger, metricsCollector)

	logger.Debug(ctx, "[REPORT_START] Generating reports", logging.Fields{
		"version": version,
		"data":    *dataFile,
		"only":    *only,
	})

	switch *only {
	case services.KindOverview:
		data, err := service.LoadDataset(ctx, *dataFile)
		if err != nil {
			return err
		}
		overview, err := service.Overview(ctx, data)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, overview.String())
		return err

	case services.KindDaily:
		data, err := service.LoadDataset(ctx, *dataFile)
		if err != nil {
			return err
		}
		days, err := service.Daily(ctx, data)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, report.RenderDaily(days))
		return err
	}

	result, err := service.Summarize(ctx, *dataFile)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n%s", result.Overview, result.Daily)
	return err
}
