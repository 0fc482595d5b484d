package instantanswer

import "fmt"

// TransportError reports a failed HTTP exchange with the API, either a
// network error or a non-2xx status code.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("instant answer request failed: %v", e.Err)
	}
	return fmt.Sprintf("instant answer request failed: status code %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid instant answer response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
