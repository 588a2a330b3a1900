package model

import "time"

// BarrierState tracks one pre-start readiness check.
type BarrierState int8

const (
	// BarrierNotChecked is the initial state of every boot.
	BarrierNotChecked BarrierState = iota
	// BarrierArtifactPresent releases the barrier; the artifact exists.
	BarrierArtifactPresent
	// BarrierWaitingForProducer polls for the artifact while producer
	// services run detached.
	BarrierWaitingForProducer
	// BarrierTimedOut is reached when the attempt budget is exhausted.
	// It is logged, never fatal.
	BarrierTimedOut
)

func (s BarrierState) String() string {
	switch s {
	case BarrierNotChecked:
		return "not_checked"
	case BarrierArtifactPresent:
		return "artifact_present"
	case BarrierWaitingForProducer:
		return "waiting_for_producer"
	case BarrierTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// BarrierResult is the outcome of one await pass.
type BarrierResult struct {
	State    BarrierState
	Artifact string // trimmed artifact contents when present
	Attempts int
	Elapsed  time.Duration
}

// Released reports whether the gated services may start.
func (r BarrierResult) Released() bool {
	return r.State == BarrierArtifactPresent
}
