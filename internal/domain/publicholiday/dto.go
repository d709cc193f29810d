package publicholiday

import "github.com/paracal/paracal-backend-go/internal/pkg/validator"

type PublicHolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func ToResponses(hs []PublicHoliday) []PublicHolidayResponse {
	out := make([]PublicHolidayResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, PublicHolidayResponse{Date: h.Date.Format(validator.DateLayout), Name: h.Name, Type: string(h.Type)})
	}
	return out
}

type CheckResponse struct {
	Date      string `json:"date"`
	IsHoliday bool   `json:"isHoliday"`
}
