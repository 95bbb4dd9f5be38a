package handlers

import (
	"errors"
	"io"
	"net/http"
	"scenic-seat-service/internal/api/dto"
	"scenic-seat-service/internal/platform/logging"

	"github.com/goccy/go-json"
)

// Wire error codes.
const (
	CodePolarDay         = "POLAR_DAY"
	CodeUndefinedSun     = "UNDEFINED_SUN"
	CodeValidation       = "VALIDATION"
	CodeGeoError         = "GEO_ERROR"
	CodeInternal         = "INTERNAL"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMITED"
)

// Bodies larger than this are rejected; a route map screenshot fits comfortably.
const maxBodyBytes = 10 << 20

var errBodyNotSingleObject = errors.New("body must contain only one JSON object")

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("encode failed")
	}
}

// WriteError writes the JSON error envelope.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: code, Message: msg})
}

// decodeJSON reads exactly one JSON object with no unknown fields into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errBodyNotSingleObject
	}
	return nil
}

// NotFound is the router's fallback for unknown paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusNotFound, CodeNotFound, "route not found")
}

// MethodNotAllowed is the router's fallback for known paths hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
}
