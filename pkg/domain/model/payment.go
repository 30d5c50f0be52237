package model

import (
	"fmt"
	"time"
)

type PaymentStatus int

const (
	PaymentStatusDraft PaymentStatus = iota
	PaymentStatusSubmitted
	PaymentStatusApproved
	PaymentStatusRejected
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusDraft:
		return "draft"
	case PaymentStatusSubmitted:
		return "submitted"
	case PaymentStatusApproved:
		return "approved"
	case PaymentStatusRejected:
		return "rejected"
	default:
		return fmt.Sprintf("PaymentStatus(%d)", int(s))
	}
}

// PaymentRequest asks for money against an approved purchase order. Its
// amount may cover the order partially but never exceeds the order total.
// Submitting a draft payment clears ApprovedAt.
type PaymentRequest struct {
	ID              string
	PurchaseOrderID string
	Amount          float64
	Payee           string
	Status          PaymentStatus
	CreatedAt       time.Time
	ApprovedAt      *time.Time
}
