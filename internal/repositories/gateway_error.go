package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup or update that matched no record.
var ErrNotFound = errors.New("record not found")

// GatewayError wraps a failure talking to the record store. Callers surface
// it as a user-visible, non-fatal notification; no retries happen below this
// layer.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("store gateway: %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func gatewayErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &GatewayError{Op: op, Err: err}
}
