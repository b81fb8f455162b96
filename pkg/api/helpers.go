package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/leminhohoho/movie-lens/api/pkg/service"
)

const maxBodyBytes = 1 << 20

type envelope map[string]interface{}

func (a *API) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		a.logger.Error("failed to encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// readBody returns the request body, rejecting oversized payloads.
func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, service.NewValidationError("Failed to read request body")
	}

	if len(body) > maxBodyBytes {
		return nil, service.NewValidationError("Request body must not be larger than %d bytes", maxBodyBytes)
	}

	return body, nil
}

// readJSON decodes a JSON object into dst. An empty body decodes as {}.
func readJSON(r *http.Request, dst interface{}) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return service.NewValidationError("Invalid value for field %q", typeErr.Field)
		}

		return service.NewValidationError("Invalid JSON body")
	}

	return nil
}

// readIDs decodes a JSON array of integer ids. Any other body yields nil,
// which the movie service reports as a validation error.
func readIDs(r *http.Request) ([]int64, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return nil, nil
	}

	ids := []int64{}
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, nil
	}

	return ids, nil
}

// readIDParam parses the :id route parameter. Anything that is not a
// positive integer cannot name a record, so it is answered with 404.
func (a *API) readIDParam(w http.ResponseWriter, r *http.Request, resource string) (uint, bool) {
	params := httprouter.ParamsFromContext(r.Context())

	id, err := strconv.ParseUint(params.ByName("id"), 10, 64)
	if err != nil || id == 0 {
		a.errorResponse(w, http.StatusNotFound, fmt.Sprintf("%s not found", resource), nil)
		return 0, false
	}

	return uint(id), true
}
