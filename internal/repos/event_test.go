package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/evergrid/contract-timeline-backend/internal/repos/testutil"
	"github.com/evergrid/contract-timeline-backend/internal/types"
)

func TestEventRepoOrdersBySubmissionTime(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewEventRepo(db, testutil.Logger(t))

	testutil.SeedContract(t, ctx, tx, "C-200", []string{"energy_supply"})
	testutil.SeedContract(t, ctx, tx, "C-201", []string{"energy_supply"})

	base := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	// Insert out of submission order; the listing must sort, not trust
	// insertion order.
	testutil.SeedEvent(t, ctx, tx, "C-200", "energy_supply", "supply_energy_end", types.NewDate(2024, 3, 1), base.Add(2*time.Hour))
	testutil.SeedEvent(t, ctx, tx, "C-200", "energy_supply", "supply_energy_start", types.NewDate(2024, 2, 1), base)
	testutil.SeedEvent(t, ctx, tx, "C-201", "energy_supply", "supply_energy_start", types.NewDate(2024, 2, 5), base.Add(time.Hour))

	rows, err := repo.ListByContract(ctx, tx, "C-200")
	if err != nil {
		t.Fatalf("ListByContract: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ListByContract len=%d, want 2 (no cross-contract rows)", len(rows))
	}
	if rows[0].Type != "supply_energy_start" || rows[1].Type != "supply_energy_end" {
		t.Fatalf("wrong order: %s, %s", rows[0].Type, rows[1].Type)
	}
	if rows[0].Date.String() != "2024-02-01" {
		t.Fatalf("date roundtrip: got %s, want 2024-02-01", rows[0].Date)
	}
}

func TestEventRepoCreate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewEventRepo(db, testutil.Logger(t))
	testutil.SeedContract(t, ctx, tx, "C-210", []string{"battery_optimization"})

	ev := &types.Event{
		ContractNumber: "C-210",
		ComponentName:  "battery_optimization",
		Type:           "battery_optimization_start",
		Date:           types.NewDate(2024, 2, 1),
		CreatedAt:      time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	created, err := repo.Create(ctx, tx, ev)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}

	rows, err := repo.ListByContract(ctx, tx, "C-210")
	if err != nil || len(rows) != 1 {
		t.Fatalf("ListByContract: err=%v len=%d", err, len(rows))
	}
	if rows[0].ComponentName != "battery_optimization" {
		t.Fatalf("component tag lost: %s", rows[0].ComponentName)
	}
}
