package app

import (
	"gorm.io/gorm"

	"github.com/evergrid/contract-timeline-backend/internal/pkg/logger"
	"github.com/evergrid/contract-timeline-backend/internal/repos"
)

type Repos struct {
	Contract repos.ContractRepo
	Event    repos.EventRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Contract: repos.NewContractRepo(db, log),
		Event:    repos.NewEventRepo(db, log),
	}
}
