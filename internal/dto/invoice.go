package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/rules"
)

// InvoiceIDsRequest targets a set of invoices.
type InvoiceIDsRequest struct {
	InvoiceIDs []string `json:"invoiceIDs" binding:"required,min=1,dive,required"`
}

// UpdateStatusRequest sets status and holding status on a set of invoices.
// An empty status or holding status keeps each invoice's current value.
type UpdateStatusRequest struct {
	InvoiceIDs       []string `json:"invoiceIDs" binding:"required,min=1,dive,required"`
	Status           string   `json:"status"`
	HoldingStatus    string   `json:"holdingStatus"`
	HoldingSubStatus string   `json:"holdingSubStatus"`
	Note             string   `json:"note" binding:"max=500"`
}

// ToStatusPayload parses the enum fields of the request.
func (r UpdateStatusRequest) ToStatusPayload() (rules.StatusPayload, error) {
	payload := rules.StatusPayload{Note: r.Note}
	if r.Status != "" {
		status, err := domain.ParseInvoiceStatus(r.Status)
		if err != nil {
			return payload, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		payload.Status = status
	}
	if strings.TrimSpace(r.HoldingStatus) != "" {
		holding, err := domain.ParseHoldingStatus(r.HoldingStatus)
		if err != nil {
			return payload, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		payload.HoldingStatus = holding
	}
	sub, err := domain.ParseHoldingSubStatus(r.HoldingSubStatus)
	if err != nil {
		return payload, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	payload.HoldingSubStatus = sub
	return payload, nil
}

// LinkEventRequest links a set of invoices to an existing event or to a new one.
type LinkEventRequest struct {
	InvoiceIDs          []string   `json:"invoiceIDs" binding:"required,min=1,dive,required"`
	Mode                string     `json:"mode" binding:"required,oneof=existing new"`
	EventID             string     `json:"eventID" binding:"required_if=Mode existing"`
	Title               string     `json:"title" binding:"required_if=Mode new"`
	Start               *time.Time `json:"start" binding:"required_if=Mode new"`
	EventType           string     `json:"eventType"`
	TaskType            string     `json:"taskType"`
	NotifiedCoworkerIDs []string   `json:"notifiedCoworkerIDs"`
}

// ToCommand parses the request into a link command. Empty event and task
// types are left for the service to default.
func (r LinkEventRequest) ToCommand() (portssvc.LinkEventCommand, error) {
	cmd := portssvc.LinkEventCommand{
		Mode:                domain.EventMode(r.Mode),
		EventID:             r.EventID,
		Title:               r.Title,
		NotifiedCoworkerIDs: r.NotifiedCoworkerIDs,
	}
	if r.Start != nil {
		cmd.Start = *r.Start
	}
	if r.EventType != "" {
		et, err := domain.ParseEventType(r.EventType)
		if err != nil {
			return cmd, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cmd.EventType = et
	}
	if r.TaskType != "" {
		tt, err := domain.ParseTaskType(r.TaskType)
		if err != nil {
			return cmd, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cmd.TaskType = tt
	}
	return cmd, nil
}

// DisputeRequest flags invoices as disputed.
type DisputeRequest struct {
	InvoiceIDs []string `json:"invoiceIDs" binding:"required,min=1,dive,required"`
	Reason     string   `json:"reason" binding:"required,max=500"`
}

// AuditRequest records an audit note on invoices.
type AuditRequest struct {
	InvoiceIDs []string `json:"invoiceIDs" binding:"required,min=1,dive,required"`
	Note       string   `json:"note" binding:"required,max=500"`
}

// InvoicesResponse lists the invoices touched by a bulk action.
type InvoicesResponse struct {
	Invoices []domain.Invoice `json:"invoices"`
	Count    int              `json:"count"`
}

// ToInvoicesResponse wraps updated invoices.
func ToInvoicesResponse(invoices []domain.Invoice) InvoicesResponse {
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return InvoicesResponse{Invoices: invoices, Count: len(invoices)}
}
