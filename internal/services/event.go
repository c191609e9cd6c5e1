package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/evergrid/contract-timeline-backend/internal/pkg/logger"
	"github.com/evergrid/contract-timeline-backend/internal/repos"
	"github.com/evergrid/contract-timeline-backend/internal/timeline"
	"github.com/evergrid/contract-timeline-backend/internal/types"
)

const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type SubmitEventInput struct {
	EventType      string
	ContractNumber string
	Date           types.Date
	SubmittedAt    time.Time
}

// SubmitEventResult is the business outcome of a submission. Rejections are
// values, not errors; an error from Submit means the store failed.
type SubmitEventResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ComponentTimeline struct {
	Start *types.Date `json:"start"`
	End   *types.Date `json:"end"`
}

type ContractTimeline struct {
	ContractNumber string                       `json:"contract_number"`
	Components     map[string]ComponentTimeline `json:"components"`
}

type EventService interface {
	Submit(ctx context.Context, input SubmitEventInput) (SubmitEventResult, error)
	Timeline(ctx context.Context, contractNumber string) (*ContractTimeline, error)
}

type eventService struct {
	db           *gorm.DB
	log          *logger.Logger
	catalog      *timeline.Catalog
	contractRepo repos.ContractRepo
	eventRepo    repos.EventRepo
	cache        *TimelineCache
	locks        keyedLocks
}

func NewEventService(db *gorm.DB, baseLog *logger.Logger, catalog *timeline.Catalog, contractRepo repos.ContractRepo, eventRepo repos.EventRepo, cache *TimelineCache) EventService {
	return &eventService{
		db:           db,
		log:          baseLog.With("service", "EventService"),
		catalog:      catalog,
		contractRepo: contractRepo,
		eventRepo:    eventRepo,
		cache:        cache,
	}
}

func rejected(format string, args ...interface{}) SubmitEventResult {
	return SubmitEventResult{Status: StatusRejected, Message: fmt.Sprintf(format, args...)}
}

// Submit validates one candidate event against the accumulated state of its
// contract and appends it on acceptance. The checks run in a fixed order
// and each produces its own rejection message; nothing is persisted on any
// rejection path.
func (s *eventService) Submit(ctx context.Context, input SubmitEventInput) (SubmitEventResult, error) {
	s.log.Info("Processing event", "type", input.EventType, "contract_number", input.ContractNumber)

	if !s.catalog.ValidEventType(input.EventType) {
		s.log.Warn("Invalid event type", "type", input.EventType)
		return rejected("Invalid event type: %s", input.EventType), nil
	}

	component, polarity, ok := s.catalog.ParseEventType(input.EventType)
	if !ok {
		s.log.Warn("Unsupported component for event type", "type", input.EventType)
		return rejected("Unsupported component for event type: %s", input.EventType), nil
	}

	// Serialize read-validate-append per (contract, component) so two
	// concurrent submissions cannot both pass validation against the same
	// stale state.
	unlock := s.locks.Lock(input.ContractNumber + "/" + string(component))
	defer unlock()

	contract, err := s.contractRepo.GetByNumber(ctx, nil, input.ContractNumber)
	if err != nil {
		return SubmitEventResult{}, fmt.Errorf("load contract %s: %w", input.ContractNumber, err)
	}
	if contract == nil {
		s.log.Warn("Contract not found", "contract_number", input.ContractNumber)
		return rejected("Contract %s not found.", input.ContractNumber), nil
	}

	if !contract.HasComponent(string(component)) {
		s.log.Warn("Component not available in contract", "component", component, "contract_number", input.ContractNumber)
		return rejected("Component '%s' is not available in contract %s.", component, input.ContractNumber), nil
	}

	history, err := s.eventRepo.ListByContract(ctx, nil, input.ContractNumber)
	if err != nil {
		return SubmitEventResult{}, fmt.Errorf("load events for %s: %w", input.ContractNumber, err)
	}

	state := timeline.Build(s.parseHistory(history))[component]

	if ok, msg := timeline.CheckTransition(state, polarity, input.Date); !ok {
		s.log.Warn("Event rejected by timeline state", "type", input.EventType, "contract_number", input.ContractNumber, "reason", msg)
		return SubmitEventResult{Status: StatusRejected, Message: msg}, nil
	}

	event := &types.Event{
		ContractNumber: input.ContractNumber,
		ComponentName:  string(component),
		Type:           input.EventType,
		Date:           input.Date,
		CreatedAt:      input.SubmittedAt,
	}
	if _, err := s.eventRepo.Create(ctx, nil, event); err != nil {
		return SubmitEventResult{}, fmt.Errorf("persist event: %w", err)
	}

	s.cache.Invalidate(ctx, input.ContractNumber)

	s.log.Info("Event accepted", "type", input.EventType, "contract_number", input.ContractNumber, "component", component)
	return SubmitEventResult{Status: StatusAccepted, Message: "Event processed successfully."}, nil
}

// Timeline rebuilds the per-component windows for every component the
// contract declares. Declared components with no history get null dates.
func (s *eventService) Timeline(ctx context.Context, contractNumber string) (*ContractTimeline, error) {
	if cached, ok := s.cache.Get(ctx, contractNumber); ok {
		return cached, nil
	}

	var (
		contract *types.Contract
		history  []*types.Event
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contract, err = s.contractRepo.GetByNumber(gctx, nil, contractNumber)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.eventRepo.ListByContract(gctx, nil, contractNumber)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load timeline inputs for %s: %w", contractNumber, err)
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}

	states := timeline.Build(s.parseHistory(history))

	components := make(map[string]ComponentTimeline)
	for _, name := range contract.ComponentNames() {
		st := states[timeline.Component(name)]
		components[name] = ComponentTimeline{Start: st.Start, End: st.End}
	}

	result := &ContractTimeline{ContractNumber: contractNumber, Components: components}
	s.cache.Set(ctx, result)
	return result, nil
}

// parseHistory maps stored rows to fold input. Rows whose type no longer
// parses (catalog drift) are skipped rather than failing the fold.
func (s *eventService) parseHistory(rows []*types.Event) []timeline.Event {
	events := make([]timeline.Event, 0, len(rows))
	for _, row := range rows {
		component, polarity, ok := s.catalog.ParseEventType(row.Type)
		if !ok {
			s.log.Warn("Skipping stored event with unparseable type", "type", row.Type, "event_id", row.ID)
			continue
		}
		events = append(events, timeline.Event{
			Component:     component,
			Polarity:      polarity,
			EffectiveDate: row.Date,
		})
	}
	return events
}
