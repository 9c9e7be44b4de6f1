package paycomponent

import "errors"

var (
	ErrComponentNotFound   = errors.New("pay component not found")
	ErrComponentNameExists = errors.New("pay component title already exists")
	ErrInvalidBasis        = errors.New("invalid pay component basis")
	ErrInvalidOperator     = errors.New("invalid condition operator")
)
