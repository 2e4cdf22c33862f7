package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeUnknownConnection = "unknown_connection"
	ErrCodeNotJoined         = "not_joined"
	ErrCodeTargetUnreachable = "target_unreachable"
	ErrCodeBadRequest        = "bad_request"
)

var (
	// ErrUnknownConnection means an operation referenced a connection id
	// that is not registered. It never reaches a client; it indicates an
	// internal inconsistency.
	ErrUnknownConnection = errors.New("unknown connection")
	ErrBadRequest        = errors.New("bad request")
)

// DeliveryResult reports what happened to a send request. The network
// boundary stays silent on drops; the result exists so callers and tests
// can observe the outcome.
type DeliveryResult int

const (
	// Delivered means the frame was handed to at least the intended
	// recipient set. Individual slow consumers may still have dropped it.
	Delivered DeliveryResult = iota
	// DroppedNotJoined means the sender had no identity or room yet.
	DroppedNotJoined
	// DroppedUnknownTarget means a private message addressed a connection
	// that is no longer present.
	DroppedUnknownTarget
	// DroppedUnknownConnection means the acting connection itself is not
	// registered; treated as a logic fault and logged, never surfaced.
	DroppedUnknownConnection
)

func (d DeliveryResult) String() string {
	switch d {
	case Delivered:
		return "delivered"
	case DroppedNotJoined:
		return "dropped_not_joined"
	case DroppedUnknownTarget:
		return "dropped_unknown_target"
	case DroppedUnknownConnection:
		return "dropped_unknown_connection"
	default:
		return "unknown"
	}
}
