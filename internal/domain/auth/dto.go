package auth

import "github.com/paracal/paracal-backend-go/internal/pkg/validator"

type LoginRequest struct {
	PIN string `json:"pin"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin is required",
		})
	}
	if len(r.PIN) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must not exceed 72 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresAt   int64  `json:"expiresAt"`
}
