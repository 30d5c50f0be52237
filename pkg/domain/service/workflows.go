package service

import (
	"time"

	"github.com/rengerhu/Procurement/pkg/domain/model"
	"github.com/rengerhu/Procurement/pkg/domain/workflow"
)

type requestTransition = workflow.Transition[model.RequestStatus, *model.PurchaseRequest]
type orderTransition = workflow.Transition[model.OrderStatus, *model.PurchaseOrder]
type paymentTransition = workflow.Transition[model.PaymentStatus, *model.PaymentRequest]

func timestamp() *time.Time {
	now := time.Now().UTC()
	return &now
}

// newRequestWorkflow builds the purchase request lifecycle. Cancelling an
// approved request stamps RejectedAt; the entity has no cancellation
// timestamp of its own.
func newRequestWorkflow() *workflow.Workflow[model.RequestStatus, *model.PurchaseRequest] {
	return workflow.New(
		requestTransition{
			Source: model.RequestStatusDraft,
			Target: model.RequestStatusSubmitted,
			PostAction: func(request *model.PurchaseRequest) {
				request.SubmittedAt = timestamp()
			},
		},
		requestTransition{
			Source: model.RequestStatusSubmitted,
			Target: model.RequestStatusApproved,
			PostAction: func(request *model.PurchaseRequest) {
				request.ApprovedAt = timestamp()
			},
		},
		requestTransition{
			Source: model.RequestStatusSubmitted,
			Target: model.RequestStatusRejected,
			PostAction: func(request *model.PurchaseRequest) {
				request.RejectedAt = timestamp()
			},
		},
		requestTransition{
			Source: model.RequestStatusApproved,
			Target: model.RequestStatusCancelled,
			PostAction: func(request *model.PurchaseRequest) {
				request.RejectedAt = timestamp()
			},
		},
	)
}

// newOrderWorkflow builds the purchase order lifecycle. ApprovedAt records
// whichever terminal decision was taken, so rejection and cancellation stamp
// it as well.
func newOrderWorkflow() *workflow.Workflow[model.OrderStatus, *model.PurchaseOrder] {
	return workflow.New(
		orderTransition{
			Source: model.OrderStatusDraft,
			Target: model.OrderStatusApprovalPending,
		},
		orderTransition{
			Source: model.OrderStatusApprovalPending,
			Target: model.OrderStatusApproved,
			PostAction: func(order *model.PurchaseOrder) {
				order.ApprovedAt = timestamp()
			},
		},
		orderTransition{
			Source: model.OrderStatusApprovalPending,
			Target: model.OrderStatusRejected,
			PostAction: func(order *model.PurchaseOrder) {
				order.ApprovedAt = timestamp()
			},
		},
		orderTransition{
			Source: model.OrderStatusApproved,
			Target: model.OrderStatusCancelled,
			PostAction: func(order *model.PurchaseOrder) {
				order.ApprovedAt = timestamp()
			},
		},
	)
}

// newPaymentWorkflow builds the payment request lifecycle. Submitting a draft
// clears any approval timestamp left on it.
func newPaymentWorkflow() *workflow.Workflow[model.PaymentStatus, *model.PaymentRequest] {
	return workflow.New(
		paymentTransition{
			Source: model.PaymentStatusDraft,
			Target: model.PaymentStatusSubmitted,
			PostAction: func(payment *model.PaymentRequest) {
				payment.ApprovedAt = nil
			},
		},
		paymentTransition{
			Source: model.PaymentStatusSubmitted,
			Target: model.PaymentStatusApproved,
			PostAction: func(payment *model.PaymentRequest) {
				payment.ApprovedAt = timestamp()
			},
		},
		paymentTransition{
			Source: model.PaymentStatusSubmitted,
			Target: model.PaymentStatusRejected,
			PostAction: func(payment *model.PaymentRequest) {
				payment.ApprovedAt = timestamp()
			},
		},
	)
}
