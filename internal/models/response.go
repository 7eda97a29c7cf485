package models

import (
	"encoding/json"
	"net/http"
)

// Response is the invocation envelope: status, headers and a JSON string body
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// ErrorBody is the JSON body of every non-200 response
type ErrorBody struct {
	Error string `json:"error"`
}

// DefaultHeaders returns the JSON content type and the permissive CORS set
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Allow-Methods": "GET, OPTIONS",
	}
}

// NewResponse marshals body into an envelope. A body that cannot be marshalled
// becomes a 500 so the caller always receives valid JSON.
func NewResponse(statusCode int, body interface{}) Response {
	data, err := json.Marshal(body)
	if err != nil {
		statusCode = http.StatusInternalServerError
		data, _ = json.Marshal(ErrorBody{Error: err.Error()})
	}

	return Response{
		StatusCode: statusCode,
		Headers:    DefaultHeaders(),
		Body:       string(data),
	}
}

// NewErrorResponse builds an envelope carrying {"error": message}
func NewErrorResponse(statusCode int, message string) Response {
	return NewResponse(statusCode, ErrorBody{Error: message})
}
