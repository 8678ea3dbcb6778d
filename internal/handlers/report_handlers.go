package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"weather-report/internal/exporter"
	"weather-report/internal/models"
	"weather-report/internal/report"
	"weather-report/internal/services"
	"weather-report/pkg/logging"
	"weather-report/pkg/metrics"
)

// ReportHandler serves the reports for one configured forecast file
type ReportHandler struct {
	service  *services.ReportService
	dataFile string
	logger   *logging.StructuredLogger
	metrics  *metrics.Collector
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	service *services.ReportService,
	dataFile string,
	logger *logging.StructuredLogger,
	metricsCollector *metrics.Collector,
) *ReportHandler {
	return &ReportHandler{
		service:  service,
		dataFile: dataFile,
		logger:   logger,
		metrics:  metricsCollector,
	}
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// DaysResponse is the body of GET /api/days
type DaysResponse struct {
	Source string         `json:"source"`
	Total  int            `json:"total"`
	Data   models.Dataset `json:"data"`
}

// DailyResponse is the JSON body of GET /api/reports/daily
type DailyResponse struct {
	Total int                 `json:"total"`
	Days  []report.DaySummary `json:"days"`
}

const (
	formatText = "text"
	formatJSON = "json"
)

// GetDays handles GET /api/days
func (h *ReportHandler) GetDays(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/api/days"
	defer h.observe(endpoint)()

	data, err := h.service.LoadDataset(r.Context(), h.dataFile)
	if err != nil {
		h.handleError(w, r, endpoint, err)
		return
	}
	if data == nil {
		data = models.Dataset{}
	}

	h.metrics.RecordAPIRequest(endpoint, r.Method, "200")
	h.sendJSON(w, DaysResponse{Source: h.dataFile, Total: len(data), Data: data}, http.StatusOK)
}

// GetOverview handles GET /api/reports/overview
func (h *ReportHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/api/reports/overview"
	defer h.observe(endpoint)()

	format, ok := h.parseFormat(w, r, endpoint)
	if !ok {
		return
	}

	ctx := r.Context()
	data, err := h.service.LoadDataset(ctx, h.dataFile)
	if err != nil {
		h.handleError(w, r, endpoint, err)
		return
	}

	overview, err := h.service.Overview(ctx, data)
	if err != nil {
		h.handleError(w, r, endpoint, err)
		return
	}

	h.metrics.RecordAPIRequest(endpoint, r.Method, "200")
	if format == formatJSON {
		h.sendJSON(w, overview, http.StatusOK)
		return
	}
	h.sendText(w, overview.String(), http.StatusOK)
}

// GetDaily handles GET /api/reports/daily
func (h *ReportHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/api/reports/daily"
	defer h.observe(endpoint)()

	format, ok := h.parseFormat(w, r, endpoint)
	if !ok {
		return
	}

	ctx := r.Context()
	data, err := h.service.LoadDataset(ctx, h.dataFile)
	if err != nil {
		h.handleError(w, r, endpoint, err)
		return
	}

	days, err := h.service.Daily(ctx, data)
	if err != nil {
		h.handleError(w, r, endpoint, err)
		return
	}

	h.metrics.RecordAPIRequest(endpoint, r.Method, "200")
	if format == formatJSON {
		h.sendJSON(w, DailyResponse{Total: len(days), Days: days}, http.StatusOK)
		return
	}
	h.sendText(w, report.RenderDaily(days), http.StatusOK)
}

// GetWorkbook handles GET /api/reports/workbook
func (h *ReportHandler) GetWorkbook(w http.ResponseWriter, r *http.Request) {
	const endpoint = "/api/reports/workbook"
	defer h.observe(endpoint)()

	ctx := r.Context()
	data, err := h.service.LoadDataset(ctx, h.dataFile)
	if err != nil {
		h.handleError(w, r, endpoint, err)
		return
	}

	// buffered so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := exporter.WriteWorkbook(&buf, data); err != nil {
		h.handleError(w, r, endpoint, err)
		return
	}

	h.logger.Info(ctx, "[API_WORKBOOK] Workbook exported", logging.Fields{
		"days":  len(data),
		"bytes": buf.Len(),
	})
	h.metrics.RecordAPIRequest(endpoint, r.Method, "200")

	w.Header().Set("Content-Type", exporter.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="forecast.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// HealthCheck handles GET /health
func (h *ReportHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	h.logger.Debug(ctx, "[HEALTH_CHECK] Health check requested", logging.Fields{})
	h.sendJSON(w, status, http.StatusOK)
}

// observe starts timing endpoint; call the returned func when done
func (h *ReportHandler) observe(endpoint string) func() {
	startTime := time.Now()
	return func() {
		h.metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}
}

func (h *ReportHandler) parseFormat(w http.ResponseWriter, r *http.Request, endpoint string) (string, bool) {
	switch format := r.URL.Query().Get("format"); format {
	case "", formatText:
		return formatText, true
	case formatJSON:
		return formatJSON, true
	default:
		h.metrics.RecordAPIError("bad_request", endpoint)
		h.sendError(w, r, endpoint, "invalid format, expected text or json", http.StatusBadRequest)
		return "", false
	}
}

// handleError maps err to a status code, logs it and writes the error body
func (h *ReportHandler) handleError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	ctx := r.Context()
	status := StatusForError(err)
	errType := services.ErrorType(err)
	fields := logging.Fields{
		"endpoint":   endpoint,
		"error_type": errType,
		"status":     status,
	}

	h.metrics.RecordAPIError(errType, endpoint)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		h.logger.Error(ctx, "[API_ERROR] Request failed", fields, err)
		message = "failed to generate report"
	} else {
		fields["error"] = err.Error()
		h.logger.Warn(ctx, "[API_ERROR] Request rejected", fields)
	}

	h.sendError(w, r, endpoint, message, status)
}

// StatusForError maps the data and report errors onto HTTP status codes
func StatusForError(err error) int {
	var (
		notFound  *models.SourceNotFoundError
		malformed *models.MalformedRowError
		parseErr  *models.ParseError
		formatErr *models.FormatError
		empty     *models.EmptyInputError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &malformed), errors.As(err, &parseErr),
		errors.As(err, &formatErr), errors.As(err, &empty):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// sendJSON sends a JSON response
func (h *ReportHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// sendText sends a plain text report
func (h *ReportHandler) sendText(w http.ResponseWriter, body string, statusCode int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write([]byte(body))
}

// sendError sends an error response
func (h *ReportHandler) sendError(w http.ResponseWriter, r *http.Request, endpoint, message string, statusCode int) {
	h.metrics.RecordAPIRequest(endpoint, r.Method, strconv.Itoa(statusCode))

	response := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	h.sendJSON(w, response, statusCode)
}

// RegisterRoutes registers all report API routes
func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.Use(RequestID(h.logger))

	router.HandleFunc("/api/days", h.GetDays).Methods("GET")
	router.HandleFunc("/api/reports/overview", h.GetOverview).Methods("GET")
	router.HandleFunc("/api/reports/daily", h.GetDaily).Methods("GET")
	router.HandleFunc("/api/reports/workbook", h.GetWorkbook).Methods("GET")
	router.HandleFunc("/api/docs/openapi.json", OpenAPISpec).Methods("GET")
	router.HandleFunc("/api/docs", SwaggerUI).Methods("GET")
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
}
