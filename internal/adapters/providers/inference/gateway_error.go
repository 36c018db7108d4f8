package inference

import "fmt"

// ErrorKind classifies gateway failures.
type ErrorKind string

const (
	// ErrorKindTimeout indicates the external service did not respond in time.
	ErrorKindTimeout ErrorKind = "TIMEOUT"

	// ErrorKindHTTP indicates a transport failure or a non-2xx response.
	ErrorKindHTTP ErrorKind = "HTTP_ERROR"

	// ErrorKindMalformed indicates a response missing expected fields.
	ErrorKindMalformed ErrorKind = "MALFORMED_RESPONSE"
)

// GatewayError describes a failed call to the external inference service.
type GatewayError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("inference %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("inference %s: %s", e.Op, e.Kind)
}

// Unwrap implements the unwrap interface.
func (e *GatewayError) Unwrap() error {
	return e.Err
}
