package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/evergrid/contract-timeline-backend/internal/pkg/logger"
	"github.com/evergrid/contract-timeline-backend/internal/services"
	"github.com/evergrid/contract-timeline-backend/internal/types"
)

type SubmitEventRequest struct {
	Type           string         `json:"type" binding:"required"`
	ContractNumber string         `json:"contract_number" binding:"required"`
	Date           types.Date     `json:"date"`
	CreatedAt      types.DateTime `json:"created_at"`
}

type EventHandler struct {
	log          *logger.Logger
	eventService services.EventService
}

func NewEventHandler(log *logger.Logger, eventService services.EventService) *EventHandler {
	return &EventHandler{
		log:          log.With("handler", "EventHandler"),
		eventService: eventService,
	}
}

// Submit always answers HTTP 200 with {status, message} for business
// outcomes. Malformed bodies get the same rejection shape with a
// field-specific message, so clients never branch on the status code for
// anything but store failures.
func (h *EventHandler) Submit(c *gin.Context) {
	var req SubmitEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondOK(c, services.SubmitEventResult{
			Status:  services.StatusRejected,
			Message: bindErrorMessage(err),
		})
		return
	}
	if req.Date.IsZero() {
		RespondOK(c, services.SubmitEventResult{
			Status:  services.StatusRejected,
			Message: "Missing or invalid field 'date': expected YYYY-MM-DD.",
		})
		return
	}
	if req.CreatedAt.IsZero() {
		RespondOK(c, services.SubmitEventResult{
			Status:  services.StatusRejected,
			Message: "Missing or invalid field 'created_at': expected an ISO-8601 datetime.",
		})
		return
	}

	result, err := h.eventService.Submit(c.Request.Context(), services.SubmitEventInput{
		EventType:      req.Type,
		ContractNumber: req.ContractNumber,
		Date:           req.Date,
		SubmittedAt:    req.CreatedAt.Time,
	})
	if err != nil {
		h.log.Error("Submit failed", "error", err, "contract_number", req.ContractNumber)
		RespondError(c, http.StatusInternalServerError, "event_submit_failed", err)
		return
	}
	RespondOK(c, result)
}

func (h *EventHandler) Timeline(c *gin.Context) {
	contractNumber := c.Param("contract_number")

	tl, err := h.eventService.Timeline(c.Request.Context(), contractNumber)
	if errors.Is(err, services.ErrContractNotFound) {
		RespondError(c, http.StatusNotFound, "contract_not_found", fmt.Errorf("Contract %s not found.", contractNumber))
		return
	}
	if err != nil {
		h.log.Error("Timeline failed", "error", err, "contract_number", contractNumber)
		RespondError(c, http.StatusInternalServerError, "load_timeline_failed", err)
		return
	}
	RespondOK(c, tl)
}

// bindErrorMessage turns a gin binding failure into a human-readable
// description of the offending field.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := jsonFieldName(verrs[0].Field())
		return fmt.Sprintf("Missing or invalid field '%s'.", field)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("Invalid value for field '%s'.", typeErr.Field)
	}

	// Custom unmarshalers (date, created_at) already produce descriptive
	// messages.
	msg := err.Error()
	if msg == "" {
		return "Malformed request body."
	}
	return "Malformed request body: " + msg + "."
}

func jsonFieldName(structField string) string {
	switch structField {
	case "ContractNumber":
		return "contract_number"
	default:
		return strings.ToLower(structField)
	}
}
