package aegis

import (
	"errors"
	"fmt"
)

// Kind classifies a computation failure so callers can react without
// string matching. Validation kinds are fatal to the request and never
// retried here; the two ephemeris kinds are transient by nature and a
// caller may retry later.
type Kind uint8

const (
	// KindUnknown is the zero value and never returned deliberately.
	KindUnknown Kind = iota
	// KindMissingElements: a required orbital element key is absent.
	KindMissingElements
	// KindInvalidEpoch: the epoch did not parse as a finite number.
	KindInvalidEpoch
	// KindEpochOutOfRange: the epoch is outside the supported 1900-2100 window.
	KindEpochOutOfRange
	// KindInvalidSemiMajorAxis: a <= 0.
	KindInvalidSemiMajorAxis
	// KindInvalidEccentricity: e outside [0,1).
	KindInvalidEccentricity
	// KindInvalidInclination: i outside [0,180] degrees.
	KindInvalidInclination
	// KindInvalidArgument: caller misuse of an engine entry point.
	KindInvalidArgument
	// KindInvalidPointCount: grid point count outside [2,10000].
	KindInvalidPointCount
	// KindInvalidTimeRange: grid end does not lie after its start.
	KindInvalidTimeRange
	// KindNonFiniteElement: NaN or Inf reached the propagator. A bug if seen.
	KindNonFiniteElement
	// KindSynchronizationFailure: trajectory lengths diverged. A bug if seen.
	KindSynchronizationFailure
	// KindEarthPositionUnavailable: primary ephemeris and fallback both failed.
	KindEarthPositionUnavailable
	// KindEphemerisDegraded: the fallback served more than half of the grid.
	KindEphemerisDegraded
	// KindInvalidImpactParameter: out-of-domain physical input.
	KindInvalidImpactParameter
	// KindElementsNotFound: the identifier did not resolve in the element source.
	KindElementsNotFound
	// KindDeflectionFailed: element fetch or initial propagation of a
	// deflection request failed.
	KindDeflectionFailed
)

func (k Kind) String() string {
	switch k {
	case KindMissingElements:
		return "missing elements"
	case KindInvalidEpoch:
		return "invalid epoch"
	case KindEpochOutOfRange:
		return "epoch out of range"
	case KindInvalidSemiMajorAxis:
		return "invalid semi-major axis"
	case KindInvalidEccentricity:
		return "invalid eccentricity"
	case KindInvalidInclination:
		return "invalid inclination"
	case KindInvalidArgument:
		return "invalid argument"
	case KindInvalidPointCount:
		return "invalid point count"
	case KindInvalidTimeRange:
		return "invalid time range"
	case KindNonFiniteElement:
		return "non-finite element"
	case KindSynchronizationFailure:
		return "synchronization failure"
	case KindEarthPositionUnavailable:
		return "earth position unavailable"
	case KindEphemerisDegraded:
		return "ephemeris degraded"
	case KindInvalidImpactParameter:
		return "invalid impact parameter"
	case KindElementsNotFound:
		return "elements not found"
	case KindDeflectionFailed:
		return "deflection failed"
	default:
		return "unknown"
	}
}

// Error carries a Kind alongside the usual message and optional cause.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// errf builds a kinded error with a formatted message.
func errf(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// wrapf builds a kinded error around a cause.
func wrapf(k Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf extracts the Kind from anywhere in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
