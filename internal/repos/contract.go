package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/evergrid/contract-timeline-backend/internal/pkg/logger"
	"github.com/evergrid/contract-timeline-backend/internal/types"
)

type ContractRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contract *types.Contract) (*types.Contract, error)
	GetByNumber(ctx context.Context, tx *gorm.DB, contractNumber string) (*types.Contract, error)
	DeleteByNumber(ctx context.Context, tx *gorm.DB, contractNumber string) error
}

type contractRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContractRepo(db *gorm.DB, baseLog *logger.Logger) ContractRepo {
	repoLog := baseLog.With("repo", "ContractRepo")
	return &contractRepo{db: db, log: repoLog}
}

func (r *contractRepo) Create(ctx context.Context, tx *gorm.DB, contract *types.Contract) (*types.Contract, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(contract).Error; err != nil {
		return nil, err
	}
	return contract, nil
}

// GetByNumber returns (nil, nil) when no contract matches.
func (r *contractRepo) GetByNumber(ctx context.Context, tx *gorm.DB, contractNumber string) (*types.Contract, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Contract
	err := transaction.WithContext(ctx).
		Where("contract_number = ?", contractNumber).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *contractRepo) DeleteByNumber(ctx context.Context, tx *gorm.DB, contractNumber string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("contract_number = ?", contractNumber).
		Delete(&types.Contract{}).Error; err != nil {
		return err
	}
	return nil
}
