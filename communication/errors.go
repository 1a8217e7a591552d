package communication

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedKind  = errors.New("unexpected record")
	ErrMalformedRecord = errors.New("malformed record")
)

// ProtocolError is fatal to the round: the stream is closed, a record could
// not be decoded, or it was not the record the protocol expected.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol: %s: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// Fail wraps err as a ProtocolError of op, unless it already is one.
func Fail(op string, err error) error {
	var pe *ProtocolError
	if errors.As(err, &pe) {
		return err
	}
	return &ProtocolError{Op: op, Err: err}
}
