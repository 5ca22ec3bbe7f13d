package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/taskboard/taskboard-api/internal/redact"
)

// Envelope is the wire format for every JSON response. Successful
// responses carry an empty ErrorCode and a non-nil Data payload; domain
// failures carry a non-empty ErrorCode and a null payload.
type Envelope struct {
	ErrorCode string      `json:"error_code"`
	Data      interface{} `json:"data"`
}

// RespondWithData writes a success envelope with the given payload.
func RespondWithData(w http.ResponseWriter, r *http.Request, data interface{}) {
	respondWithEnvelope(w, http.StatusOK, Envelope{ErrorCode: "", Data: data})
}

// RespondWithErrorCode writes a domain-error envelope. Domain errors are
// expected outcomes, so the HTTP status stays 200 and the code travels in
// the body.
func RespondWithErrorCode(w http.ResponseWriter, r *http.Request, errorCode string) {
	respondWithEnvelope(w, http.StatusOK, Envelope{ErrorCode: errorCode, Data: nil})
}

// RespondUnauthorized writes a 401 envelope for requests without a valid
// session.
func RespondUnauthorized(w http.ResponseWriter, r *http.Request) {
	respondWithEnvelope(w, http.StatusUnauthorized, Envelope{ErrorCode: "unauthorized", Data: nil})
}

// RespondBadRequest writes a 400 envelope for malformed or invalid
// request payloads.
func RespondBadRequest(w http.ResponseWriter, r *http.Request) {
	respondWithEnvelope(w, http.StatusBadRequest, Envelope{ErrorCode: "bad_request", Data: nil})
}

// RespondServerError logs the underlying error with the request's trace ID
// and writes a 500 envelope. The error detail never reaches the client and
// is redacted before it reaches the logs.
func RespondServerError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed",
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.String("error", redact.Error(err)),
		slog.String("error_type", fmt.Sprintf("%T", err)))

	respondWithEnvelope(w, http.StatusInternalServerError, Envelope{ErrorCode: "server_error", Data: nil})
}

func respondWithEnvelope(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
