package model

import (
	"fmt"
	"time"
)

type OrderStatus int

const (
	OrderStatusDraft OrderStatus = iota
	OrderStatusApprovalPending
	OrderStatusApproved
	OrderStatusRejected
	OrderStatusCancelled
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusDraft:
		return "draft"
	case OrderStatusApprovalPending:
		return "approval_pending"
	case OrderStatusApproved:
		return "approved"
	case OrderStatusRejected:
		return "rejected"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("OrderStatus(%d)", int(s))
	}
}

// PurchaseOrderItem is a single line of a purchase order.
type PurchaseOrderItem struct {
	ItemID    string
	Quantity  int
	UnitPrice float64
}

func (i PurchaseOrderItem) TotalPrice() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// PurchaseOrder is the commitment towards a supplier raised from an approved
// purchase request. ApprovedAt records the terminal decision whatever it was;
// rejection and cancellation stamp it too.
type PurchaseOrder struct {
	ID         string
	RequestID  string
	Supplier   string
	Items      []PurchaseOrderItem
	Status     OrderStatus
	CreatedAt  time.Time
	ApprovedAt *time.Time
}

func (o *PurchaseOrder) TotalAmount() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.TotalPrice()
	}
	return total
}

// CloneRequestItems copies a request's lines into order lines, so later edits
// to either side cannot leak into the other.
func CloneRequestItems(request *PurchaseRequest) []PurchaseOrderItem {
	items := make([]PurchaseOrderItem, 0, len(request.Items))
	for _, line := range request.Items {
		items = append(items, PurchaseOrderItem{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return items
}
