package composer

// Phase is the composition session's lifecycle state.
//
//	Idle → LocationPending → LocationResolved | LocationFailed
//	                      → Submitting → Submitted | SubmitFailed
//
// Recording and file attachment are permitted from both location
// outcomes; only Submit is gated on a resolved location. Submitted is
// terminal; SubmitFailed permits re-entering Submitting.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseLocationPending  Phase = "location_pending"
	PhaseLocationResolved Phase = "location_resolved"
	PhaseLocationFailed   Phase = "location_failed"
	PhaseSubmitting       Phase = "submitting"
	PhaseSubmitted        Phase = "submitted"
	PhaseSubmitFailed     Phase = "submit_failed"
)
