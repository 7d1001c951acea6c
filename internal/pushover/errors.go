package pushover

import "fmt"

// TransportError is returned when the provider could not be reached or its
// response could not be read or decoded. Provider rejections are not
// transport errors; they are reported through Result.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pushover %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
