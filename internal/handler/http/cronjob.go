package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/paracal/paracal-backend-go/internal/domain/cronjob"
	"github.com/paracal/paracal-backend-go/internal/handler/http/response"
)

type CronjobHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Test(w http.ResponseWriter, r *http.Request)
}

type cronjobHandlerImpl struct {
	cronjobService cronjob.CronjobService
}

func NewCronjobHandler(cronjobService cronjob.CronjobService) CronjobHandler {
	return &cronjobHandlerImpl{cronjobService: cronjobService}
}

// List handles GET /cronjobs
func (h *cronjobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	configs, err := h.cronjobService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cronjob.ToResponses(configs))
}

// Status handles GET /cronjobs/status
func (h *cronjobHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.cronjobService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, statuses)
}

// Get handles GET /cronjobs/{id}
func (h *cronjobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	cfg, err := h.cronjobService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cronjob.ToResponse(cfg))
}

// Create handles POST /cronjobs
func (h *cronjobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req cronjob.CreateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.cronjobService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create cronjob config error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Cronjob config created successfully", cronjob.ToResponse(created))
}

// Update handles PUT /cronjobs/{id}
func (h *cronjobHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req cronjob.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.cronjobService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Cronjob config updated successfully", cronjob.ToResponse(updated))
}

// Delete handles DELETE /cronjobs/{id}
func (h *cronjobHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.cronjobService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Cronjob config deleted successfully", nil)
}

// Test handles POST /cronjobs/{id}/test. The body is optional.
func (h *cronjobHandlerImpl) Test(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req cronjob.TestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.cronjobService.Test(r.Context(), id, req.CustomMessage)
	if err != nil {
		slog.Error("Test notification failed", "config_id", id, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Test notification sent", result)
}
