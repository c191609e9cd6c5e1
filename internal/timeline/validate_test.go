package timeline

import (
	"testing"

	"github.com/evergrid/contract-timeline-backend/internal/types"
)

func ptr(d types.Date) *types.Date { return &d }

func TestCheckTransition(t *testing.T) {
	cases := []struct {
		name     string
		state    ComponentState
		polarity Polarity
		date     types.Date
		wantOK   bool
		wantMsg  string
	}{
		{
			name:     "start_on_fresh_component",
			state:    ComponentState{},
			polarity: PolarityStart,
			date:     date(2024, 2, 1),
			wantOK:   true,
		},
		{
			name:     "start_overwrite_while_active",
			state:    ComponentState{Start: ptr(date(2024, 2, 1))},
			polarity: PolarityStart,
			date:     date(2024, 2, 10),
			wantOK:   true,
		},
		{
			name:     "restart_after_termination",
			state:    ComponentState{Start: ptr(date(2024, 2, 1)), End: ptr(date(2024, 3, 1))},
			polarity: PolarityStart,
			date:     date(2024, 2, 15),
			wantOK:   false,
			wantMsg:  MsgRestartAfterTermination,
		},
		{
			// Termination wins over the date-ordering check even though the
			// candidate also lies after the end date.
			name:     "restart_after_termination_with_late_date",
			state:    ComponentState{Start: ptr(date(2024, 2, 1)), End: ptr(date(2024, 3, 1))},
			polarity: PolarityStart,
			date:     date(2024, 4, 1),
			wantOK:   false,
			wantMsg:  MsgRestartAfterTermination,
		},
		{
			name:     "start_after_existing_end",
			state:    ComponentState{End: ptr(date(2024, 3, 1))},
			polarity: PolarityStart,
			date:     date(2024, 3, 2),
			wantOK:   false,
			wantMsg:  MsgStartAfterEnd,
		},
		{
			name:     "start_on_end_date",
			state:    ComponentState{End: ptr(date(2024, 3, 1))},
			polarity: PolarityStart,
			date:     date(2024, 3, 1),
			wantOK:   true,
		},
		{
			name:     "end_without_start",
			state:    ComponentState{},
			polarity: PolarityEnd,
			date:     date(2024, 3, 1),
			wantOK:   false,
			wantMsg:  MsgEndWithoutStart,
		},
		{
			name:     "end_before_start",
			state:    ComponentState{Start: ptr(date(2024, 2, 1))},
			polarity: PolarityEnd,
			date:     date(2024, 1, 15),
			wantOK:   false,
			wantMsg:  MsgEndBeforeStart,
		},
		{
			name:     "end_on_start_date",
			state:    ComponentState{Start: ptr(date(2024, 2, 1))},
			polarity: PolarityEnd,
			date:     date(2024, 2, 1),
			wantOK:   true,
		},
		{
			name:     "end_overwrite_while_terminated",
			state:    ComponentState{Start: ptr(date(2024, 2, 1)), End: ptr(date(2024, 3, 1))},
			polarity: PolarityEnd,
			date:     date(2024, 4, 1),
			wantOK:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, msg := CheckTransition(tc.state, tc.polarity, tc.date)
			if ok != tc.wantOK {
				t.Fatalf("CheckTransition ok=%v, want %v (msg=%q)", ok, tc.wantOK, msg)
			}
			if msg != tc.wantMsg {
				t.Fatalf("CheckTransition msg=%q, want %q", msg, tc.wantMsg)
			}
		})
	}
}
