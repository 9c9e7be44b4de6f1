package contract

import "errors"

var (
	ErrNoActiveContract = errors.New("employee has no active contract")
	ErrContractNotFound = errors.New("contract not found")
)
