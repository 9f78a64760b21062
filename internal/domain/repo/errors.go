package repo

import "fmt"

// Error codes
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeUpstreamToken   = "UPSTREAM_TOKEN_ERROR"
	CodeUpstreamListing = "UPSTREAM_LISTING_ERROR"
	CodeResponseSchema  = "RESPONSE_SCHEMA_ERROR"
)

// Domain errors

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Predefined domain errors

func ErrValidation(field string, err error) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("invalid %s", field),
		Err:     err,
	}
}

// ErrUpstreamToken reports a failed authorization code exchange.
func ErrUpstreamToken(err error) *DomainError {
	return &DomainError{
		Code:    CodeUpstreamToken,
		Message: "failed to obtain access token from GitHub",
		Err:     err,
	}
}

// ErrUpstreamListing reports a failed starred repositories request.
func ErrUpstreamListing(err error) *DomainError {
	return &DomainError{
		Code:    CodeUpstreamListing,
		Message: "failed to fetch starred repositories from GitHub",
		Err:     err,
	}
}

// ErrResponseSchema reports upstream data that does not fit the response schema.
// The message names the offending field and is safe to show to clients.
func ErrResponseSchema(field string, err error) *DomainError {
	msg := fmt.Sprintf("invalid field %s", field)
	if err != nil {
		msg = fmt.Sprintf("invalid field %s: %v", field, err)
	}
	return &DomainError{
		Code:    CodeResponseSchema,
		Message: msg,
		Err:     err,
	}
}
