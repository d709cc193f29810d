package cronjob

import "errors"

var (
	ErrConfigNotFound   = errors.New("cronjob config not found")
	ErrConfigNameExists = errors.New("cronjob config name already exists")
	ErrInvalidID        = errors.New("invalid cronjob config id")
	ErrDeliveryFailed   = errors.New("webhook delivery failed")
)
