package timeline

import "github.com/evergrid/contract-timeline-backend/internal/types"

// Event is an already-parsed lifecycle fact, ready for folding.
type Event struct {
	Component     Component
	Polarity      Polarity
	EffectiveDate types.Date
}

// ComponentState is the derived start/end window for one component. Both
// fields are nil until an event of the matching polarity has been folded.
type ComponentState struct {
	Start *types.Date
	End   *types.Date
}

// Terminated reports whether the component has both dates set and is
// therefore closed for restarts.
func (s ComponentState) Terminated() bool {
	return s.Start != nil && s.End != nil
}

// Build folds an ordered event sequence into per-component state.
//
// The input must already be sorted by submission time ascending; Build does
// not sort. Each Start overwrites the component's start date and each End
// its end date, so the latest event per field wins. Components never
// mentioned are absent from the result. Pure and deterministic.
func Build(events []Event) map[Component]ComponentState {
	states := make(map[Component]ComponentState)
	for _, ev := range events {
		st := states[ev.Component]
		d := ev.EffectiveDate
		switch ev.Polarity {
		case PolarityStart:
			st.Start = &d
		case PolarityEnd:
			st.End = &d
		default:
			continue
		}
		states[ev.Component] = st
	}
	return states
}
