package payroll

import "errors"

// Payroll domain errors
var (
	ErrRecordNotFound      = errors.New("payroll record not found")
	ErrRecordAlreadyExists = errors.New("payroll record already exists for this staff and period")
	ErrStaffNotResolved    = errors.New("payroll staff does not exist")
)
