package aion

import "fmt"

// APIError is returned when the platform responds with a non-success HTTP
// status. Body carries the raw response body, which the platform usually
// fills with a JSON error description.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Status)
}

// DecodeError is returned when a response body cannot be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
