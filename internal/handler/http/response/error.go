package response

import (
	"errors"
	"net/http"

	"github.com/hriscore/payroll-engine-go/internal/domain/contract"
	"github.com/hriscore/payroll-engine-go/internal/domain/employee"
	"github.com/hriscore/payroll-engine-go/internal/domain/paycomponent"
	"github.com/hriscore/payroll-engine-go/internal/domain/payslip"
	"github.com/hriscore/payroll-engine-go/internal/domain/tax"
	"github.com/hriscore/payroll-engine-go/internal/pkg/validator"
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
	// Employee and contract domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, contract.ErrNoActiveContract):
		BadRequest(w, "Employee has no active contract", nil)

	// Payslip domain errors
	case errors.Is(err, payslip.ErrInvalidPeriod):
		BadRequest(w, "Invalid payslip period", nil)
	case errors.Is(err, payslip.ErrZeroWorkingDays):
		BadRequest(w, "Period contains a month with zero working days", nil)
	case errors.Is(err, payslip.ErrUnsupportedWageType):
		BadRequest(w, "Unsupported wage type on contract", nil)
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrPayslipExists):
		Conflict(w, "Payslip already exists for this period")

	// Pay component domain errors
	case errors.Is(err, paycomponent.ErrComponentNotFound):
		NotFound(w, "Pay component not found")
	case errors.Is(err, paycomponent.ErrComponentNameExists):
		Conflict(w, "Pay component title already exists")
	case errors.Is(err, paycomponent.ErrInvalidBasis):
		BadRequest(w, "Invalid pay component basis", nil)

	// Tax domain errors
	case errors.Is(err, tax.ErrFilingStatusNotFound):
		NotFound(w, "Filing status not found")
	case errors.Is(err, tax.ErrTaxBracketGap):
		BadRequest(w, "Tax brackets have a gap or overlap", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
