package timeline

import "github.com/evergrid/contract-timeline-backend/internal/types"

// Rejection messages for transition violations. These are part of the API
// surface; callers return them verbatim.
const (
	MsgRestartAfterTermination = "Component cannot be restarted after termination."
	MsgStartAfterEnd           = "Start event cannot occur after end event."
	MsgEndWithoutStart         = "End event requires a start event first."
	MsgEndBeforeStart          = "End event cannot occur before start event."
)

// CheckTransition decides whether a candidate event is consistent with the
// component's current state. It returns ok=true when the event may be
// appended, or ok=false with the rejection message.
//
// Rules for a Start candidate, in order:
//   - a terminated component (start and end both set) can never be
//     restarted, regardless of the candidate date;
//   - otherwise the candidate date must not lie after an existing end date.
//
// Rules for an End candidate, in order:
//   - a start date must already exist;
//   - the candidate date must not lie before it.
func CheckTransition(state ComponentState, polarity Polarity, date types.Date) (bool, string) {
	if polarity == PolarityStart {
		if state.Terminated() {
			return false, MsgRestartAfterTermination
		}
		if state.End != nil && date.After(state.End.Time) {
			return false, MsgStartAfterEnd
		}
		return true, ""
	}
	if state.Start == nil {
		return false, MsgEndWithoutStart
	}
	if date.Before(state.Start.Time) {
		return false, MsgEndBeforeStart
	}
	return true, ""
}
