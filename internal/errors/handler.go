package errors

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// ErrorHandler writes APIErrors as JSON and logs them with request
// context. Non-APIError values are masked as a generic internal error so
// no internal detail leaks to callers.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates an error handler with the given logger.
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{logger: logger}
}

// HandleError renders err to the response. Client errors log at warn,
// server errors at error.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, ok := err.(*APIError)
	if !ok {
		h.logger.ErrorContext(r.Context(), "unhandled error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		apiErr = ErrInternal("")
	} else if apiErr.StatusCode >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Int("status", apiErr.StatusCode),
			slog.String("error", apiErr.Message),
		)
	} else {
		h.logger.WarnContext(r.Context(), "request rejected",
			slog.String("path", r.URL.Path),
			slog.Int("status", apiErr.StatusCode),
			slog.String("error", apiErr.Message),
		)
	}

	render.Status(r, apiErr.StatusCode)
	render.JSON(w, r, apiErr)
}
