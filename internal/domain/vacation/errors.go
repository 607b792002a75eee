package vacation

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrRequestNotFound     = errors.New("vacation request not found")
	ErrInvalidRange        = errors.New("end date must be after start date")
	ErrInvalidStatus       = errors.New("status must be approved or rejected")
	ErrInsufficientBalance = errors.New("not enough remaining vacation days")
	ErrNotManager          = errors.New("not a manager")
	ErrAlreadyProcessed    = errors.New("request has already been processed")
)
