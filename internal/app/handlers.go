package app

import (
	"github.com/evergrid/contract-timeline-backend/internal/handlers"
	"github.com/evergrid/contract-timeline-backend/internal/pkg/logger"
)

type Handlers struct {
	Contract *handlers.ContractHandler
	Event    *handlers.EventHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	return Handlers{
		Contract: handlers.NewContractHandler(log, serviceset.Contract),
		Event:    handlers.NewEventHandler(log, serviceset.Event),
	}
}
