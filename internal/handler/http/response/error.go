package response

import (
	"errors"
	"net/http"

	"github.com/paracal/paracal-backend-go/internal/domain/auth"
	"github.com/paracal/paracal-backend-go/internal/domain/cronjob"
	"github.com/paracal/paracal-backend-go/internal/domain/employee"
	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/domain/holiday"
	"github.com/paracal/paracal-backend-go/internal/domain/publicholiday"
	"github.com/paracal/paracal-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPIN):
		Unauthorized(w, "Invalid PIN")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidID):
		BadRequest(w, "Invalid employee ID", nil)

	// Event domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, event.ErrInvalidID):
		BadRequest(w, "Invalid event ID", nil)
	case errors.Is(err, event.ErrInvalidDateRange):
		BadRequest(w, "Start date must be on or before end date", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Company holiday not found")
	case errors.Is(err, holiday.ErrInvalidID):
		BadRequest(w, "Invalid holiday ID", nil)
	case errors.Is(err, holiday.ErrInvalidRange):
		BadRequest(w, "Start date must be on or before end date", nil)

	// Public holiday domain errors
	case errors.Is(err, publicholiday.ErrInvalidRange):
		BadRequest(w, "Start date must be on or before end date", nil)
	case errors.Is(err, publicholiday.ErrRangeTooLarge):
		BadRequest(w, "Date range may span at most 5 calendar years", nil)

	// Cronjob domain errors
	case errors.Is(err, cronjob.ErrConfigNotFound):
		NotFound(w, "Cronjob config not found")
	case errors.Is(err, cronjob.ErrInvalidID):
		BadRequest(w, "Invalid cronjob config ID", nil)
	case errors.Is(err, cronjob.ErrConfigNameExists):
		Conflict(w, "Cronjob config name already exists")
	case errors.Is(err, cronjob.ErrDeliveryFailed):
		BadGateway(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
