package auth

import "fmt"

// StoreError reports an account store failure. Message is safe to show to
// clients; Err is not.
type StoreError struct {
	Op      string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("auth: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// InsertRejectedError is returned when the database refuses a new account
// for a reason other than a duplicate email.
type InsertRejectedError struct {
	Detail string
	Err    error
}

func (e *InsertRejectedError) Error() string {
	return "auth: insert rejected: " + e.Detail
}

func (e *InsertRejectedError) Unwrap() error { return e.Err }
