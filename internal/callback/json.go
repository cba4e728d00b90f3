package callback

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the JSON body returned for rejected redirects.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSONError writes a JSON error response with the given status code.
func writeJSONError(ctx context.Context, w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		slog.ErrorContext(ctx, "failed to encode JSON response", "error", err)
	}
}
