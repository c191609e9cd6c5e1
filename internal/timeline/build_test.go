package timeline

import (
	"reflect"
	"testing"
)

func TestBuildEmpty(t *testing.T) {
	states := Build(nil)
	if len(states) != 0 {
		t.Fatalf("Build(nil) produced %d states, want 0", len(states))
	}
}

func TestBuildStartAndEnd(t *testing.T) {
	events := []Event{
		{Component: ComponentEnergySupply, Polarity: PolarityStart, EffectiveDate: date(2024, 2, 1)},
		{Component: ComponentEnergySupply, Polarity: PolarityEnd, EffectiveDate: date(2024, 3, 1)},
	}

	states := Build(events)
	st, ok := states[ComponentEnergySupply]
	if !ok {
		t.Fatalf("expected state for energy_supply")
	}
	if st.Start == nil || st.Start.String() != "2024-02-01" {
		t.Fatalf("start=%v, want 2024-02-01", st.Start)
	}
	if st.End == nil || st.End.String() != "2024-03-01" {
		t.Fatalf("end=%v, want 2024-03-01", st.End)
	}
	if !st.Terminated() {
		t.Fatalf("component with both dates should be terminated")
	}
}

func TestBuildLastWriteWinsPerField(t *testing.T) {
	events := []Event{
		{Component: ComponentBatteryOptimization, Polarity: PolarityStart, EffectiveDate: date(2024, 2, 1)},
		{Component: ComponentBatteryOptimization, Polarity: PolarityStart, EffectiveDate: date(2024, 2, 15)},
		{Component: ComponentBatteryOptimization, Polarity: PolarityEnd, EffectiveDate: date(2024, 6, 1)},
		{Component: ComponentBatteryOptimization, Polarity: PolarityEnd, EffectiveDate: date(2024, 5, 1)},
	}

	st := Build(events)[ComponentBatteryOptimization]
	if st.Start == nil || st.Start.String() != "2024-02-15" {
		t.Fatalf("start=%v, want later start 2024-02-15", st.Start)
	}
	if st.End == nil || st.End.String() != "2024-05-01" {
		t.Fatalf("end=%v, want later end 2024-05-01", st.End)
	}
}

func TestBuildComponentsIndependent(t *testing.T) {
	events := []Event{
		{Component: ComponentEnergySupply, Polarity: PolarityStart, EffectiveDate: date(2024, 1, 1)},
		{Component: ComponentHeatpumpOptimization, Polarity: PolarityStart, EffectiveDate: date(2024, 4, 1)},
		{Component: ComponentEnergySupply, Polarity: PolarityEnd, EffectiveDate: date(2024, 2, 1)},
	}

	states := Build(events)
	if len(states) != 2 {
		t.Fatalf("got %d states, want 2", len(states))
	}
	if st := states[ComponentHeatpumpOptimization]; st.End != nil {
		t.Fatalf("heatpump end=%v, want nil", st.End)
	}
	if _, ok := states[ComponentBatteryOptimization]; ok {
		t.Fatalf("unmentioned component must be absent from the result")
	}
}

func TestBuildIdempotent(t *testing.T) {
	events := []Event{
		{Component: ComponentEnergySupply, Polarity: PolarityStart, EffectiveDate: date(2024, 2, 1)},
		{Component: ComponentEnergySupply, Polarity: PolarityEnd, EffectiveDate: date(2024, 3, 1)},
		{Component: ComponentBatteryOptimization, Polarity: PolarityStart, EffectiveDate: date(2024, 2, 10)},
	}

	first := Build(events)
	second := Build(events)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Build is not idempotent: %v vs %v", first, second)
	}
}

func TestBuildSkipsUnknownPolarity(t *testing.T) {
	events := []Event{
		{Component: ComponentEnergySupply, Polarity: Polarity("pause"), EffectiveDate: date(2024, 2, 1)},
	}
	if states := Build(events); len(states) != 0 {
		t.Fatalf("event with unknown polarity must be skipped, got %v", states)
	}
}
