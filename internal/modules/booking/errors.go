package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrOwnEquipment      = errors.New("cannot book your own equipment")
	ErrNotAvailable      = errors.New("equipment not available")
	ErrPastStart         = errors.New("start date is in the past")
	ErrInvalidRange      = errors.New("end date must be after start date")
	ErrMinDuration       = errors.New("booking must be at least one day")
)
