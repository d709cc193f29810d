package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/paracal/paracal-backend-go/internal/domain/holiday"
	"github.com/paracal/paracal-backend-go/internal/handler/http/response"
	"github.com/paracal/paracal-backend-go/internal/pkg/utils"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByYear(w http.ResponseWriter, r *http.Request)
	ListByRange(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)

	Create(w http.ResponseWriter, r *http.Request)
	CreateBulk(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteAll(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

func writeHolidays(w http.ResponseWriter, hs []holiday.CompanyHoliday, err error) {
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, holiday.ToResponses(hs))
}

// List handles GET /company-holidays
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	hs, err := h.holidayService.List(r.Context())
	writeHolidays(w, hs, err)
}

// ListByYear handles GET /company-holidays/{year}
func (h *holidayHandlerImpl) ListByYear(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	hs, err := h.holidayService.ListByYear(r.Context(), year)
	writeHolidays(w, hs, err)
}

// ListByRange handles GET /company-holidays/range/{start}/{end}
func (h *holidayHandlerImpl) ListByRange(w http.ResponseWriter, r *http.Request) {
	start, ok := dateParam(w, r, "start")
	if !ok {
		return
	}
	end, ok := dateParam(w, r, "end")
	if !ok {
		return
	}
	hs, err := h.holidayService.ListByRange(r.Context(), start, end)
	writeHolidays(w, hs, err)
}

// Get handles GET /company-holidays/holiday/{id}
func (h *holidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	found, err := h.holidayService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, holiday.ToResponse(found))
}

// Check handles GET /company-holidays/check/{date}
func (h *holidayHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r, "date")
	if !ok {
		return
	}

	isHoliday, err := h.holidayService.IsHoliday(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, holiday.CheckResponse{Date: utils.FormatDate(date), IsHoliday: isHoliday})
}

// Create handles POST /company-holidays
func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create company holiday error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Company holiday created successfully", holiday.ToResponse(created))
}

// CreateBulk handles POST /company-holidays/bulk
func (h *holidayHandlerImpl) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var req holiday.BulkCreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.CreateBulk(r.Context(), req)
	if err != nil {
		slog.Error("Bulk create company holidays error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Company holidays created successfully", holiday.ToResponses(created))
}

// Update handles PUT /company-holidays/{id}
func (h *holidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req holiday.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.holidayService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company holiday updated successfully", holiday.ToResponse(updated))
}

// Delete handles DELETE /company-holidays/{id}
func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company holiday deleted successfully", nil)
}

// DeleteAll handles DELETE /company-holidays/clear-all
func (h *holidayHandlerImpl) DeleteAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.holidayService.DeleteAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company holidays cleared", map[string]int64{"deleted": deleted})
}
