package employee

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

// Employee carries the attributes pay-component eligibility conditions
// can reference. The employee directory owns the full record; payslip
// computation only reads this projection.
type Employee struct {
	ID            string
	Code          *string
	FirstName     string
	LastName      string
	Gender        Gender
	MaritalStatus *MaritalStatus
	Children      *int
	Country       *string
	State         *string
	Department    *string
	JobPosition   *string
	HireDate      *time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ExperienceMonths is tenure in whole months as of asOf, zero when the
// hire date is unknown or in the future.
func (e Employee) ExperienceMonths(asOf time.Time) int {
	if e.HireDate == nil {
		return 0
	}
	hire := *e.HireDate

	years := asOf.Year() - hire.Year()
	months := int(asOf.Month()) - int(hire.Month())
	total := years*12 + months
	if asOf.Day() < hire.Day() {
		total--
	}
	if total < 0 {
		total = 0
	}
	return total
}
