package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/paracal/paracal-backend-go/internal/handler/http/response"
	"github.com/paracal/paracal-backend-go/internal/pkg/validator"
)

// idParam parses a positive integer URL parameter. It writes a 400 and returns false otherwise.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// dateParam parses a YYYY-MM-DD URL parameter. It writes a 422 and returns false otherwise.
func dateParam(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	d, ok := validator.IsValidDate(chi.URLParam(r, name))
	if !ok {
		response.ValidationError(w, map[string]string{name: "must be a date in YYYY-MM-DD format"})
		return time.Time{}, false
	}
	return d, true
}

func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if !validator.IsNumeric(raw) || err != nil || year < 1 || year > 9999 {
		response.BadRequest(w, "Invalid year", nil)
		return 0, false
	}
	return year, true
}

func monthParam(w http.ResponseWriter, r *http.Request) (time.Month, bool) {
	raw := chi.URLParam(r, "month")
	month, err := strconv.Atoi(raw)
	if !validator.IsNumeric(raw) || err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Invalid month", nil)
		return 0, false
	}
	return time.Month(month), true
}
