// Package beacon composes outbound beacon reports from fused aircraft state
// and delivers them to an APRS-IS style sink.
package beacon

import "errors"

// ErrRejected is returned when the delivery sink refused a report. Under the
// current policy a rejection is fatal to the pipeline.
var ErrRejected = errors.New("report rejected by delivery sink")

// Sink accepts one composed report at a time. Submit must not return until
// the report has been handed to the transport; a non-nil error means the
// report was not accepted.
type Sink interface {
	Submit(report string) error
}
