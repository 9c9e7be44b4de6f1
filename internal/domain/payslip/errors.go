package payslip

import "errors"

var (
	// ErrInvalidPeriod rejects a period whose end precedes its start or
	// lies in the future.
	ErrInvalidPeriod = errors.New("invalid payslip period")
	// ErrZeroWorkingDays is raised when a month with zero working days
	// is encountered during proration.
	ErrZeroWorkingDays     = errors.New("month has zero working days")
	ErrPayslipNotFound     = errors.New("payslip not found")
	ErrPayslipExists       = errors.New("payslip already exists for this period")
	ErrUnsupportedWageType = errors.New("unsupported wage type")
)
