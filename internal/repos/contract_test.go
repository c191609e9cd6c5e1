package repos

import (
	"context"
	"testing"

	"github.com/evergrid/contract-timeline-backend/internal/repos/testutil"
)

func TestContractRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewContractRepo(db, testutil.Logger(t))

	seeded := testutil.SeedContract(t, ctx, tx, "C-100", []string{"energy_supply", "battery_optimization"})

	got, err := repo.GetByNumber(ctx, tx, "C-100")
	if err != nil {
		t.Fatalf("GetByNumber: %v", err)
	}
	if got == nil || got.ID != seeded.ID {
		t.Fatalf("GetByNumber: got=%v, want id %s", got, seeded.ID)
	}
	if !got.HasComponent("energy_supply") || got.HasComponent("heatpump_optimization") {
		t.Fatalf("component set decoded wrong: %s", got.Components)
	}

	if missing, err := repo.GetByNumber(ctx, tx, "C-404"); err != nil || missing != nil {
		t.Fatalf("GetByNumber on unknown contract: got=%v err=%v, want nil,nil", missing, err)
	}

	if err := repo.DeleteByNumber(ctx, tx, "C-100"); err != nil {
		t.Fatalf("DeleteByNumber: %v", err)
	}
	if got, err := repo.GetByNumber(ctx, tx, "C-100"); err != nil || got != nil {
		t.Fatalf("after delete GetByNumber: got=%v err=%v", got, err)
	}
}
