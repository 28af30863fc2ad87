// internal/handlers/response.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/pkg/logger"
)

const maxBodyBytes = 1 << 20

// statusFor maps an error kind onto an HTTP status
func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindAlreadyExists, domain.KindCapacityExceeded, domain.KindConstraintViolation:
		return http.StatusConflict
	case domain.KindConnectivity:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(ctx context.Context, log *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.ErrorContext(ctx, "failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, status int, message string) {
	body := map[string]string{"error": message}
	if id := logger.RequestID(ctx); id != "" {
		body["request_id"] = id
	}
	respondJSON(ctx, log, w, status, body)
}

// respondFailure logs err and writes it with the status of its kind. Server
// side failures hide the message.
func respondFailure(ctx context.Context, log *slog.Logger, w http.ResponseWriter, msg string, err error) {
	status := statusFor(err)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	log.Log(ctx, level, msg,
		slog.String("kind", string(domain.KindOf(err))),
		slog.String("error", err.Error()),
	)

	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		message = msg
	case http.StatusServiceUnavailable:
		message = "database unavailable"
	}
	respondError(ctx, log, w, status, message)
}

// decodeJSON reads a single JSON object from the request body
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return domain.NewError(domain.KindValidation, "decode", "invalid request body: %v", err)
	}
	return nil
}

// decodePatch reads a column patch. JSON numbers become int64 when integral
// and decimal.Decimal otherwise.
func decodePatch(w http.ResponseWriter, r *http.Request) (domain.Patch, error) {
	var raw map[string]any
	if err := decodeJSON(w, r, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, domain.NewError(domain.KindValidation, "decode", "patch must name at least one column")
	}

	patch := make(domain.Patch, len(raw))
	for col, v := range raw {
		n, ok := v.(json.Number)
		if !ok {
			patch[col] = v
			continue
		}
		if i, err := n.Int64(); err == nil {
			patch[col] = i
			continue
		}
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return nil, domain.NewError(domain.KindValidation, "decode", "invalid number for %s", col)
		}
		patch[col] = d
	}
	return patch, nil
}

// queryInt parses an optional positive integer query parameter
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.NewError(domain.KindValidation, "query", "%s must be an integer", name)
	}
	return n, nil
}

func notFound(op, what, key string) error {
	return domain.NewError(domain.KindNotFound, op, "%s %q not found", what, key)
}
