package store

import "fmt"

// ValidationError reports a question rejected at create time because required
// content fields are missing or malformed.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid question: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid question: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NotFoundError reports an operation against an id the bank does not hold.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("question %d not found", e.ID)
}

// EmptyStoreError reports analytics requested against a bank with no questions.
type EmptyStoreError struct{}

func (e *EmptyStoreError) Error() string {
	return "no questions in the bank"
}

// SaveError reports a failed write of the bank document.
type SaveError struct {
	Path  string
	Cause error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save question bank %s: %v", e.Path, e.Cause)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
