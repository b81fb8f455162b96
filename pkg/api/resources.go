package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type crudService[T any] interface {
	Resource() string
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, in *T) (*T, error)
	Update(ctx context.Context, id uint, in *T) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// resourceHandlers serves the five CRUD routes of one resource.
// decode turns a request body into the storage model; summarize, when set,
// reshapes the list response.
type resourceHandlers[T any] struct {
	api       *API
	svc       crudService[T]
	name      string
	decode    func(r *http.Request) (*T, error)
	summarize func([]T) interface{}
}

func registerResource[T any](a *API, router *httprouter.Router, path string, h *resourceHandlers[T]) {
	item := path + "/:id"

	a.handle(router, http.MethodGet, path, a.requireStore(h.list))
	a.handle(router, http.MethodPost, path, a.requireStore(h.create))
	a.handle(router, http.MethodGet, item, a.requireStore(h.get))
	a.handle(router, http.MethodPut, item, a.requireStore(h.update))
	a.handle(router, http.MethodDelete, item, a.requireStore(h.delete))
}

func (h *resourceHandlers[T]) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		h.api.serviceError(w, r, err, fmt.Sprintf("Error fetching %ss", h.name))
		return
	}

	var body interface{} = records
	if h.summarize != nil {
		body = h.summarize(records)
	}

	h.api.writeJSON(w, http.StatusOK, body)
}

func (h *resourceHandlers[T]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.api.readIDParam(w, r, h.svc.Resource())
	if !ok {
		return
	}

	record, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.api.serviceError(w, r, err, fmt.Sprintf("Error fetching %s", h.name))
		return
	}

	h.api.writeJSON(w, http.StatusOK, record)
}

func (h *resourceHandlers[T]) create(w http.ResponseWriter, r *http.Request) {
	in, err := h.decode(r)
	if err != nil {
		h.api.serviceError(w, r, err, fmt.Sprintf("Error creating %s", h.name))
		return
	}

	record, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.api.serviceError(w, r, err, fmt.Sprintf("Error creating %s", h.name))
		return
	}

	h.api.writeJSON(w, http.StatusCreated, record)
}

func (h *resourceHandlers[T]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.api.readIDParam(w, r, h.svc.Resource())
	if !ok {
		return
	}

	in, err := h.decode(r)
	if err != nil {
		h.api.serviceError(w, r, err, fmt.Sprintf("Error updating %s", h.name))
		return
	}

	record, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		h.api.serviceError(w, r, err, fmt.Sprintf("Error updating %s", h.name))
		return
	}

	h.api.writeJSON(w, http.StatusOK, record)
}

func (h *resourceHandlers[T]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.api.readIDParam(w, r, h.svc.Resource())
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.api.serviceError(w, r, err, fmt.Sprintf("Error deleting %s", h.name))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
