package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/evergrid/contract-timeline-backend/internal/pkg/logger"
	"github.com/evergrid/contract-timeline-backend/internal/repos"
	"github.com/evergrid/contract-timeline-backend/internal/types"
)

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrContractExists   = errors.New("contract number already exists")
)

const pgUniqueViolation = "23505"

type CreateContractInput struct {
	ContractNumber string
	Components     []string
}

type ContractService interface {
	Create(ctx context.Context, input CreateContractInput) (*types.Contract, error)
	Get(ctx context.Context, contractNumber string) (*types.Contract, error)
	Delete(ctx context.Context, contractNumber string) error
}

type contractService struct {
	db           *gorm.DB
	log          *logger.Logger
	contractRepo repos.ContractRepo
	cache        *TimelineCache
}

func NewContractService(db *gorm.DB, baseLog *logger.Logger, contractRepo repos.ContractRepo, cache *TimelineCache) ContractService {
	return &contractService{
		db:           db,
		log:          baseLog.With("service", "ContractService"),
		contractRepo: contractRepo,
		cache:        cache,
	}
}

func (s *contractService) Create(ctx context.Context, input CreateContractInput) (*types.Contract, error) {
	s.log.Info("Creating contract", "contract_number", input.ContractNumber)

	raw, err := json.Marshal(input.Components)
	if err != nil {
		return nil, fmt.Errorf("encode components: %w", err)
	}
	contract := &types.Contract{
		ContractNumber: input.ContractNumber,
		Components:     datatypes.JSON(raw),
	}

	created, err := s.contractRepo.Create(ctx, nil, contract)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrContractExists
		}
		return nil, fmt.Errorf("persist contract %s: %w", input.ContractNumber, err)
	}

	s.log.Info("Contract created", "contract_number", created.ContractNumber, "id", created.ID)
	return created, nil
}

func (s *contractService) Get(ctx context.Context, contractNumber string) (*types.Contract, error) {
	contract, err := s.contractRepo.GetByNumber(ctx, nil, contractNumber)
	if err != nil {
		return nil, fmt.Errorf("load contract %s: %w", contractNumber, err)
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}
	return contract, nil
}

// Delete removes a contract and, through the FK cascade, its whole event
// log. The timeline cache entry goes with it.
func (s *contractService) Delete(ctx context.Context, contractNumber string) error {
	s.log.Info("Deleting contract", "contract_number", contractNumber)

	contract, err := s.contractRepo.GetByNumber(ctx, nil, contractNumber)
	if err != nil {
		return fmt.Errorf("load contract %s: %w", contractNumber, err)
	}
	if contract == nil {
		return ErrContractNotFound
	}

	if err := s.contractRepo.DeleteByNumber(ctx, nil, contractNumber); err != nil {
		return fmt.Errorf("delete contract %s: %w", contractNumber, err)
	}

	s.cache.Invalidate(ctx, contractNumber)
	s.log.Info("Contract deleted", "contract_number", contractNumber)
	return nil
}
