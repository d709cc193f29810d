package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/handler/http/response"
	"github.com/paracal/paracal-backend-go/internal/pkg/validator"
)

type EventHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByDateRange(w http.ResponseWriter, r *http.Request)
	ListByEmployeeID(w http.ResponseWriter, r *http.Request)
	ListByEmployeeName(w http.ResponseWriter, r *http.Request)
	ListByLeaveType(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Upcoming(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)

	BulkDeleteByMonth(w http.ResponseWriter, r *http.Request)
	BulkDeleteByYear(w http.ResponseWriter, r *http.Request)
	BulkDeleteAll(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &eventHandlerImpl{eventService: eventService}
}

func writeEvents(w http.ResponseWriter, events []event.LeaveEvent, err error) {
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, event.ToResponses(events))
}

// List handles GET /events
func (h *eventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	writeEvents(w, events, err)
}

// Get handles GET /events/{id}
func (h *eventHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	e, err := h.eventService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, event.ToResponse(e))
}

// Create handles POST /events
func (h *eventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req event.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.eventService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Event created successfully", event.ToResponse(created))
}

// Update handles PUT /events/{id}
func (h *eventHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req event.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.eventService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Event updated successfully", event.ToResponse(updated))
}

// Delete handles DELETE /events/{id}
func (h *eventHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Event deleted successfully", nil)
}

// ListByDate handles GET /events/date/{date}
func (h *eventHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r, "date")
	if !ok {
		return
	}
	events, err := h.eventService.ListByDate(r.Context(), date)
	writeEvents(w, events, err)
}

// ListByDateRange handles GET /events/date-range/{start}/{end}
func (h *eventHandlerImpl) ListByDateRange(w http.ResponseWriter, r *http.Request) {
	start, ok := dateParam(w, r, "start")
	if !ok {
		return
	}
	end, ok := dateParam(w, r, "end")
	if !ok {
		return
	}
	events, err := h.eventService.ListByDateRange(r.Context(), start, end)
	writeEvents(w, events, err)
}

// ListByEmployeeID handles GET /events/employee/{employeeId}
func (h *eventHandlerImpl) ListByEmployeeID(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := idParam(w, r, "employeeId")
	if !ok {
		return
	}
	events, err := h.eventService.ListByEmployeeID(r.Context(), employeeID)
	writeEvents(w, events, err)
}

// ListByEmployeeName handles GET /events/employee?employeeName=&startDate=&endDate=
func (h *eventHandlerImpl) ListByEmployeeName(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("employeeName")

	var errs validator.ValidationErrors
	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{Field: "employeeName", Message: "employeeName is required"})
	}
	from := validator.ParseOptionalDate("startDate", q.Get("startDate"), &errs)
	to := validator.ParseOptionalDate("endDate", q.Get("endDate"), &errs)
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	events, err := h.eventService.ListByEmployeeName(r.Context(), name, from, to)
	writeEvents(w, events, err)
}

// ListByLeaveType handles GET /events/leave-type/{leaveType}
func (h *eventHandlerImpl) ListByLeaveType(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListByLeaveType(r.Context(), chi.URLParam(r, "leaveType"))
	writeEvents(w, events, err)
}

// ListByMonth handles GET /events/month/{year}/{month}
func (h *eventHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	month, ok := monthParam(w, r)
	if !ok {
		return
	}
	events, err := h.eventService.ListByMonth(r.Context(), year, month)
	writeEvents(w, events, err)
}

// Search handles GET /events/search/{query}
func (h *eventHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.Search(r.Context(), chi.URLParam(r, "query"))
	writeEvents(w, events, err)
}

// Upcoming handles GET /events/upcoming and GET /events/upcoming/{days}
func (h *eventHandlerImpl) Upcoming(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := chi.URLParam(r, "days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.BadRequest(w, "Invalid days", nil)
			return
		}
		days = n
	}
	events, err := h.eventService.Upcoming(r.Context(), days)
	writeEvents(w, events, err)
}

// Stats handles GET /events/stats/overview
func (h *eventHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.eventService.Stats(r.Context())
	if err != nil {
		slog.Error("Event stats error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// BulkDeleteByMonth handles DELETE /events/bulk/month/{year}/{month}
func (h *eventHandlerImpl) BulkDeleteByMonth(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	deleted, err := h.eventService.BulkDeleteByMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Events deleted successfully", event.BulkDeleteResponse{Deleted: deleted})
}

// BulkDeleteByYear handles DELETE /events/bulk/year/{year}
func (h *eventHandlerImpl) BulkDeleteByYear(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	deleted, err := h.eventService.BulkDeleteByYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Events deleted successfully", event.BulkDeleteResponse{Deleted: deleted})
}

// BulkDeleteAll handles DELETE /events/bulk/all
func (h *eventHandlerImpl) BulkDeleteAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.eventService.BulkDeleteAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "All events deleted successfully", event.BulkDeleteResponse{Deleted: deleted})
}
