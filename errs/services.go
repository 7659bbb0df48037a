package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Upstream service errors
var (
	ErrUpstreamAI    = errors.New("AI request failed")
	ErrConfigMissing = errors.New("configuration missing")
)

// NewUpstreamAIError reports a non-success response from the external
// completion API. The upstream body travels in Details so the operator can
// see what the provider actually said; callers never retry.
func NewUpstreamAIError(details string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrUpstreamAI,
		Details:    details,
		Cause:      cause,
	}
}

// NewConfigError reports a missing or unusable configuration value, named
// so the operator knows which variable to fix.
func NewConfigError(name string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("Configuration error for %s", name),
		Cause:      cause,
	}
}

func IsUpstreamAIError(err error) bool {
	return errors.Is(err, ErrUpstreamAI)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}
