package api

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in ErrorResponse.Code.
const (
	codeBadRequest    = "BAD_REQUEST"
	codeUnknownType   = "UNKNOWN_TYPE"
	codeInvalidConfig = "INVALID_CONFIG"
	codeNotFound      = "NOT_FOUND"
	codeNotConfigured = "AI_NOT_CONFIGURED"
	codeUpstream      = "UPSTREAM_ERROR"
	codeInternal      = "INTERNAL_ERROR"
)

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decode reads a JSON request body into v. Unknown fields are rejected so
// typos in client payloads surface as 400s.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
