package ledger

import "fmt"

// ErrorKind names the reason a transaction was rejected.
type ErrorKind string

const (
	KindInvalidAmount  ErrorKind = "InvalidAmount"
	KindSameAccount    ErrorKind = "SameAccount"
	KindUnknownAccount ErrorKind = "UnknownAccount"
)

// ValidationError is returned when RecordTransaction rejects its input.
// Nothing has been changed when it is returned.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Field)
}

// Is matches any ValidationError of the same kind, so errors.Is works
// against the sentinels below.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidAmount  = &ValidationError{Kind: KindInvalidAmount, Message: "amount must be greater than zero"}
	ErrSameAccount    = &ValidationError{Kind: KindSameAccount, Message: "debit and credit accounts must differ"}
	ErrUnknownAccount = &ValidationError{Kind: KindUnknownAccount, Message: "account is not in the chart"}
)

func invalid(kind ErrorKind, field, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}
