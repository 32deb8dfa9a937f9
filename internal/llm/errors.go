package llm

import (
	"errors"
	"strings"
)

var (
	// ErrTransient marks failures worth a per-call heuristic fallback:
	// timeouts, quota and rate limits, malformed responses.
	ErrTransient = errors.New("transient llm failure")

	// ErrPermanent marks failures that will repeat on every call, such as
	// a model name the vendor does not serve. Callers should stop calling
	// the provider for the rest of the run.
	ErrPermanent = errors.New("permanent llm failure")
)

// Classify wraps err so callers can test errors.Is against ErrTransient or
// ErrPermanent. Already-classified errors pass through unchanged; model
// not-found class errors are permanent, everything else is transient.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTransient) || errors.Is(err, ErrPermanent) {
		return err
	}
	if IsModelNotFound(err) {
		return &classified{class: ErrPermanent, err: err}
	}
	return &classified{class: ErrTransient, err: err}
}

// IsModelNotFound reports whether err looks like the vendor rejecting the
// configured model name. Matching is on message text since the SDKs
// surface these as opaque API errors.
func IsModelNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "notfound"):
		return true
	case strings.Contains(msg, "not found") && strings.Contains(msg, "model"):
		return true
	case strings.Contains(msg, "unsupported model"):
		return true
	case strings.Contains(msg, "404") && strings.Contains(msg, "model"):
		return true
	}
	return false
}

// classified carries the original error alongside its class sentinel so
// both remain visible to errors.Is.
type classified struct {
	class error
	err   error
}

func (c *classified) Error() string {
	return c.err.Error()
}

func (c *classified) Unwrap() []error {
	return []error{c.class, c.err}
}
