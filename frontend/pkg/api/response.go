// pkg/api/response.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ResponseWriter writes the JSON responses used by the frontend handlers.
// Bodies are written without a trailing newline so clients see exactly the
// documented payloads.
type ResponseWriter struct {
	Writer http.ResponseWriter
	Logger *slog.Logger
}

// errorResponse is the only error body the frontend ever returns.
type errorResponse struct {
	Error string `json:"error"`
}

// NewResponseWriter creates a new ResponseWriter with the given http.ResponseWriter
func NewResponseWriter(w http.ResponseWriter, logger *slog.Logger) *ResponseWriter {
	return &ResponseWriter{Writer: w, Logger: logger}
}

// SendJSON marshals data and sends it with the given status code.
func (rw *ResponseWriter) SendJSON(statusCode int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		rw.Logger.Error("failed to encode response", "error", err)
		http.Error(rw.Writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	rw.SendRaw(statusCode, body)
}

// SendRaw sends an already encoded JSON body unchanged.
func (rw *ResponseWriter) SendRaw(statusCode int, body []byte) {
	rw.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.Writer.WriteHeader(statusCode)
	if _, err := rw.Writer.Write(body); err != nil {
		rw.Logger.Debug("failed to write response body", "error", err)
	}
}

// SendError sends {"error": message} with the given status code.
func (rw *ResponseWriter) SendError(statusCode int, message string) {
	rw.SendJSON(statusCode, errorResponse{Error: message})
}
