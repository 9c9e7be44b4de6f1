package tax

import "errors"

var (
	ErrFilingStatusNotFound = errors.New("filing status not found")
	ErrTaxBracketGap        = errors.New("tax brackets have a gap or overlap")
)
