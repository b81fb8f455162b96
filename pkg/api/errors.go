package api

import (
	"errors"
	"net/http"

	"github.com/leminhohoho/movie-lens/api/pkg/service"
)

// errorResponse writes {message}. detail is only exposed in development.
func (a *API) errorResponse(w http.ResponseWriter, status int, message string, detail error) {
	body := envelope{"message": message}

	if detail != nil && a.cfg.IsDevelopment() {
		body["error"] = detail.Error()
	}

	a.writeJSON(w, status, body)
}

// serviceError maps a service error onto a status code. Anything that is
// neither a validation nor a not-found error is logged and answered with
// the generic message for the operation.
func (a *API) serviceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var ve *service.ValidationError

	switch {
	case errors.As(err, &ve):
		a.errorResponse(w, http.StatusBadRequest, ve.Message, nil)
	case errors.Is(err, service.ErrNotFound):
		a.errorResponse(w, http.StatusNotFound, err.Error(), nil)
	default:
		a.logger.ErrorContext(r.Context(), message,
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestIDFrom(r.Context()),
		)
		a.errorResponse(w, http.StatusInternalServerError, message, err)
	}
}

func (a *API) serverError(w http.ResponseWriter, r *http.Request, err error) {
	a.logger.ErrorContext(r.Context(), "internal server error",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", requestIDFrom(r.Context()),
	)
	a.errorResponse(w, http.StatusInternalServerError, "Internal server error", err)
}

func (a *API) routeNotFound(w http.ResponseWriter, r *http.Request) {
	a.errorResponse(w, http.StatusNotFound, "Route not found", nil)
}

func (a *API) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	a.errorResponse(w, http.StatusMethodNotAllowed, "Method "+r.Method+" not allowed", nil)
}
