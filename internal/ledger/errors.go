package ledger

import "fmt"

// ValidationError reports bad user input: empty fields, a non-positive
// amount, a missing selection, or an unparseable date. The ledger is left
// unchanged when one is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IntegrityError reports an operation that would leave the ledger's
// invariants violated, such as an expense referencing an unknown friend.
// The operation is rejected wholesale.
type IntegrityError struct {
	Msg string
}

func (e *IntegrityError) Error() string { return e.Msg }

func integrityErrorf(format string, args ...any) error {
	return &IntegrityError{Msg: fmt.Sprintf(format, args...)}
}
