package common

import (
	"errors"
	"fmt"
)

// Guard errors. These are resolved locally: the action is refused before any
// write and the caller is told why.
var (
	ErrNotFound              = errors.New("record not found")
	ErrAlreadyProcessed      = errors.New("request already processed")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrMissingOwnerReference = errors.New("charge request has no owner reference")
	ErrInvalidAmount         = errors.New("invalid amount")

	// ErrTransientIO wraps store or network failures. Safe to retry only for
	// reads or for writes protected by a status precondition.
	ErrTransientIO = errors.New("transient store failure")
)

// PartialFailureError reports that a primary mutation committed but a
// compensating mutation failed. It carries the exact amount and account so a
// human can reconcile manually; it is never swallowed.
type PartialFailureError struct {
	Amount   int64
	UserId   string
	Nickname string
	Reason   error
}

func (e *PartialFailureError) Error() string {
	who := e.UserId
	if e.Nickname != "" {
		who = e.Nickname
	}
	return fmt.Sprintf("primary action committed but compensation failed: %dP for user %s needs manual correction: %v", e.Amount, who, e.Reason)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Reason
}
