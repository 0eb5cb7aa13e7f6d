// Package netx classifies transport errors returned by net/http.
package netx

import (
	"context"
	"errors"
	"net"
)

// IsTimeout reports whether err is a deadline expiry, either from a context
// or from a net.Error that timed out.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// IsCanceled reports whether err comes from a canceled context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
