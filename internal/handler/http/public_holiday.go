package http

import (
	"net/http"

	"github.com/paracal/paracal-backend-go/internal/domain/publicholiday"
	"github.com/paracal/paracal-backend-go/internal/handler/http/response"
	"github.com/paracal/paracal-backend-go/internal/pkg/utils"
)

type PublicHolidayHandler interface {
	ListByYear(w http.ResponseWriter, r *http.Request)
	ListByRange(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
}

type publicHolidayHandlerImpl struct {
	publicHolidayService publicholiday.PublicHolidayService
}

func NewPublicHolidayHandler(publicHolidayService publicholiday.PublicHolidayService) PublicHolidayHandler {
	return &publicHolidayHandlerImpl{publicHolidayService: publicHolidayService}
}

// ListByYear handles GET /holidays/{year}
func (h *publicHolidayHandlerImpl) ListByYear(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	hs, err := h.publicHolidayService.ListByYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, publicholiday.ToResponses(hs))
}

// ListByRange handles GET /holidays/range/{start}/{end}
func (h *publicHolidayHandlerImpl) ListByRange(w http.ResponseWriter, r *http.Request) {
	start, ok := dateParam(w, r, "start")
	if !ok {
		return
	}
	end, ok := dateParam(w, r, "end")
	if !ok {
		return
	}

	hs, err := h.publicHolidayService.ListByRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, publicholiday.ToResponses(hs))
}

// Check handles GET /holidays/check/{date}
func (h *publicHolidayHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParam(w, r, "date")
	if !ok {
		return
	}

	isHoliday, err := h.publicHolidayService.IsHoliday(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, publicholiday.CheckResponse{Date: utils.FormatDate(date), IsHoliday: isHoliday})
}
