package testutil

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/evergrid/contract-timeline-backend/internal/types"
)

func SeedContract(tb testing.TB, ctx context.Context, tx *gorm.DB, contractNumber string, components []string) *types.Contract {
	tb.Helper()
	raw, err := json.Marshal(components)
	if err != nil {
		tb.Fatalf("marshal components: %v", err)
	}
	c := &types.Contract{
		ID:             uuid.New(),
		ContractNumber: contractNumber,
		Components:     datatypes.JSON(raw),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed contract: %v", err)
	}
	return c
}

func SeedEvent(tb testing.TB, ctx context.Context, tx *gorm.DB, contractNumber, componentName, eventType string, date types.Date, submittedAt time.Time) *types.Event {
	tb.Helper()
	e := &types.Event{
		ID:             uuid.New(),
		ContractNumber: contractNumber,
		ComponentName:  componentName,
		Type:           eventType,
		Date:           date,
		CreatedAt:      submittedAt,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed event: %v", err)
	}
	return e
}
