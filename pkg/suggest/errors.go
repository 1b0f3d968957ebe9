package suggest

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrStale is returned for a completion that was overtaken by a newer call on
// the same Source. Its result must not be applied.
var ErrStale = errors.New("suggest: stale response")

// NetworkError reports a transport failure or a non-2xx status.
type NetworkError struct {
	URL  string
	Code int
	Err  error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("suggest: fetch %s: %v", e.URL, e.Err)
	case e.Code > 0:
		return fmt.Sprintf("suggest: fetch %s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
	default:
		return fmt.Sprintf("suggest: fetch %s failed", e.URL)
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status, or 0 when no response was received.
func (e *NetworkError) StatusCode() int { return e.Code }

// ProtocolError reports a response that does not match the suggestion envelope.
type ProtocolError struct {
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("suggest: malformed response: %s: %v", e.Reason, e.Err)
	}
	return "suggest: malformed response: " + e.Reason
}

func (e *ProtocolError) Unwrap() error { return e.Err }
