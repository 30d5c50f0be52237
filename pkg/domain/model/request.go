package model

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

type RequestStatus int

const (
	RequestStatusDraft RequestStatus = iota
	RequestStatusSubmitted
	RequestStatusApproved
	RequestStatusRejected
	RequestStatusCancelled
)

func (s RequestStatus) String() string {
	switch s {
	case RequestStatusDraft:
		return "draft"
	case RequestStatusSubmitted:
		return "submitted"
	case RequestStatusApproved:
		return "approved"
	case RequestStatusRejected:
		return "rejected"
	case RequestStatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("RequestStatus(%d)", int(s))
	}
}

// PurchaseRequestItem is a single line of a purchase request. The unit price
// is the requester's quote and may differ from the catalog unit cost.
type PurchaseRequestItem struct {
	ItemID    string
	Quantity  int
	UnitPrice float64
}

func (i PurchaseRequestItem) TotalPrice() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// PurchaseRequest is a requester's ask for items, moving from draft through
// submission to an approval decision. Cancellation of an approved request
// stamps RejectedAt; the entity carries no separate cancellation timestamp.
type PurchaseRequest struct {
	ID            string
	Requester     string
	Justification string
	Items         []PurchaseRequestItem
	Status        RequestStatus
	CreatedAt     time.Time
	SubmittedAt   *time.Time
	ApprovedAt    *time.Time
	RejectedAt    *time.Time
}

func (r *PurchaseRequest) TotalAmount() float64 {
	var total float64
	for _, item := range r.Items {
		total += item.TotalPrice()
	}
	return total
}

// ValidateRequestItems checks every line for a positive quantity and unit
// price. The whole list is validated before any item lookup happens, so a
// malformed line is reported ahead of an unknown one.
func ValidateRequestItems(items []PurchaseRequestItem) error {
	for _, item := range items {
		if item.Quantity <= 0 {
			return errors.Wrapf(ErrInvalidInput, "quantity for item %s must be positive", item.ItemID)
		}
		if item.UnitPrice <= 0 {
			return errors.Wrapf(ErrInvalidInput, "unit price for item %s must be positive", item.ItemID)
		}
	}
	return nil
}
