package handlers

import (
	"encoding/json"
	"net/http"
)

func formatParam() map[string]interface{} {
	return map[string]interface{}{
		"name":        "format",
		"in":          "query",
		"description": "Response format (default: text)",
		"required":    false,
		"schema": map[string]interface{}{
			"type":    "string",
			"enum":    []string{formatText, formatJSON},
			"default": formatText,
		},
	}
}

func errorResponses() map[string]interface{} {
	ref := map[string]interface{}{
		"application/json": map[string]interface{}{
			"schema": map[string]string{"$ref": "#/components/schemas/ErrorResponse"},
		},
	}
	return map[string]interface{}{
		"404": map[string]interface{}{"description": "Forecast file not found", "content": ref},
		"422": map[string]interface{}{"description": "Forecast data is malformed or empty", "content": ref},
		"500": map[string]interface{}{"description": "Internal server error", "content": ref},
	}
}

func reportOperation(summary, description, jsonSchema string) map[string]interface{} {
	responses := errorResponses()
	responses["200"] = map[string]interface{}{
		"description": "Successful response",
		"content": map[string]interface{}{
			"text/plain": map[string]interface{}{
				"schema": map[string]string{"type": "string"},
			},
			"application/json": map[string]interface{}{
				"schema": map[string]string{"$ref": "#/components/schemas/" + jsonSchema},
			},
		},
	}
	responses["400"] = map[string]interface{}{"description": "Unknown format"}

	return map[string]interface{}{
		"get": map[string]interface{}{
			"summary":     summary,
			"description": description,
			"parameters":  []map[string]interface{}{formatParam()},
			"responses":   responses,
		},
	}
}

// OpenAPISpec returns the OpenAPI 3.0 specification for the Weather Report API
func OpenAPISpec(w http.ResponseWriter, r *http.Request) {
	celsius := map[string]string{"type": "number", "format": "double"}
	extreme := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"celsius": celsius,
			"date":    map[string]string{"type": "string", "example": "Tuesday 06 July 2021"},
			"index":   map[string]string{"type": "integer"},
		},
	}

	daysResponses := errorResponses()
	daysResponses["200"] = map[string]interface{}{
		"description": "Successful response",
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{
				"schema": map[string]string{"$ref": "#/components/schemas/DaysResponse"},
			},
		},
	}

	workbookResponses := errorResponses()
	workbookResponses["200"] = map[string]interface{}{
		"description": "Workbook with Overview and Daily sheets",
		"content": map[string]interface{}{
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": map[string]interface{}{
				"schema": map[string]string{"type": "string", "format": "binary"},
			},
		},
	}

	spec := map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":       "Weather Report API",
			"description": "Temperature overview and daily reports computed from a forecast CSV file",
			"version":     "1.0.0",
			"contact": map[string]string{
				"name": "Weather Report Team",
			},
		},
		"servers": []map[string]string{
			{"url": "http://localhost:8080", "description": "Local development server"},
		},
		"paths": map[string]interface{}{
			"/api/days": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Get forecast days",
					"description": "Retrieve the day records of the configured forecast file in Fahrenheit",
					"responses":   daysResponses,
				},
			},
			"/api/reports/overview": reportOperation(
				"Get overview report",
				"Lowest and highest temperature with their dates, and the average low and high, in Celsius",
				"Overview",
			),
			"/api/reports/daily": reportOperation(
				"Get daily report",
				"Minimum and maximum temperature of every day, in Celsius",
				"DailyResponse",
			),
			"/api/reports/workbook": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Download reports as XLSX",
					"description": "Both reports as an Excel workbook",
					"responses":   workbookResponses,
				},
			},
			"/health": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Health check",
					"description": "Check if the API is running",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "API is healthy",
							"content": map[string]interface{}{
								"application/json": map[string]interface{}{
									"schema": map[string]interface{}{
										"type": "object",
										"properties": map[string]interface{}{
											"status":    map[string]string{"type": "string"},
											"timestamp": map[string]string{"type": "string", "format": "date-time"},
										},
									},
								},
							},
						},
					},
				},
			},
			"/metrics": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Prometheus metrics",
					"description": "Metrics in Prometheus exposition format",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "Metrics",
							"content": map[string]interface{}{
								"text/plain": map[string]interface{}{
									"schema": map[string]string{"type": "string"},
								},
							},
						},
					},
				},
			},
		},
		"components": map[string]interface{}{
			"schemas": map[string]interface{}{
				"DayRecord": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"date": map[string]string{"type": "string", "example": "2021-07-06"},
						"low":  map[string]string{"type": "integer", "description": "Fahrenheit"},
						"high": map[string]string{"type": "integer", "description": "Fahrenheit"},
					},
				},
				"DaysResponse": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"source": map[string]string{"type": "string"},
						"total":  map[string]string{"type": "integer"},
						"data": map[string]interface{}{
							"type":  "array",
							"items": map[string]string{"$ref": "#/components/schemas/DayRecord"},
						},
					},
				},
				"Overview": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"days":                 map[string]string{"type": "integer"},
						"lowest":               extreme,
						"highest":              extreme,
						"average_low_celsius":  celsius,
						"average_high_celsius": celsius,
					},
				},
				"DailyResponse": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"total": map[string]string{"type": "integer"},
						"days": map[string]interface{}{
							"type": "array",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"date":         map[string]string{"type": "string"},
									"low_celsius":  celsius,
									"high_celsius": celsius,
								},
							},
						},
					},
				},
				"ErrorResponse": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"error":   map[string]string{"type": "string"},
						"message": map[string]string{"type": "string"},
						"code":    map[string]string{"type": "integer"},
					},
				},
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spec)
}
