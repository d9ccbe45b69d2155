package scoring

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfDomain indicates a raw metric outside realistic physical
	// bounds. Always surfaced to the caller, never retried or clamped.
	ErrOutOfDomain = errors.New("metric out of domain")
	// ErrMissingMetric indicates a required metric was absent.
	ErrMissingMetric = errors.New("missing required metric")
	// ErrUnknownProfile indicates an unrecognized scoring profile name.
	ErrUnknownProfile = errors.New("unknown scoring profile")
)

// OutOfDomainError names the offending metric and its valid domain.
type OutOfDomainError struct {
	Metric   string
	Value    float64
	Min, Max float64
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("%s: %s=%g outside [%g, %g]", ErrOutOfDomain, e.Metric, e.Value, e.Min, e.Max)
}

func (e *OutOfDomainError) Unwrap() error { return ErrOutOfDomain }

// MissingMetricError names the absent metric key(s).
type MissingMetricError struct {
	Metrics []string
}

func (e *MissingMetricError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingMetric, strings.Join(e.Metrics, ", "))
}

func (e *MissingMetricError) Unwrap() error { return ErrMissingMetric }
