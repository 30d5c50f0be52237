package service

import (
	"time"

	"github.com/pkg/errors"

	"github.com/rengerhu/Procurement/pkg/domain/model"
	"github.com/rengerhu/Procurement/pkg/domain/workflow"
)

type Event interface {
	Type() string
}

type EventDispatcher interface {
	Dispatch(event Event) error
}

// ProcurementService is the command surface of the procurement core: master
// data registration plus the three entity lifecycles. Commands either
// complete every effect or fail before any state changes; the one exception
// is a ledger failure after a status transition already took, which the
// caller observes as the error of an otherwise applied command. The service
// assumes a single logical actor and performs no locking.
type ProcurementService interface {
	CreateCategory(id, name, description string) (*model.ProductCategory, error)
	CreateItem(id, categoryID, name string, unitCost float64, description string) (*model.ProductItem, error)
	ConfigureBudget(id, categoryID string, amount float64) (*model.BudgetRecord, error)

	CreatePurchaseRequest(id, requester, justification string, items []model.PurchaseRequestItem) (*model.PurchaseRequest, error)
	SubmitPurchaseRequest(id string) (*model.PurchaseRequest, error)
	ApprovePurchaseRequest(id string) (*model.PurchaseRequest, error)
	RejectPurchaseRequest(id string) (*model.PurchaseRequest, error)
	CancelPurchaseRequest(id string) (*model.PurchaseRequest, error)

	CreatePurchaseOrder(id, requestID, supplier string, items []model.PurchaseOrderItem) (*model.PurchaseOrder, error)
	SubmitPurchaseOrder(id string) (*model.PurchaseOrder, error)
	ApprovePurchaseOrder(id string) (*model.PurchaseOrder, error)
	RejectPurchaseOrder(id string) (*model.PurchaseOrder, error)

	CreatePaymentRequest(id, purchaseOrderID string, amount float64, payee string) (*model.PaymentRequest, error)
	SubmitPaymentRequest(id string) (*model.PaymentRequest, error)
	ApprovePaymentRequest(id string) (*model.PaymentRequest, error)
	RejectPaymentRequest(id string) (*model.PaymentRequest, error)
}

func NewProcurementService(repo model.ProcurementRepository, dispatcher EventDispatcher) ProcurementService {
	return &procurementService{
		repo:       repo,
		budget:     NewBudgetController(repo),
		dispatcher: dispatcher,
		requests:   newRequestWorkflow(),
		orders:     newOrderWorkflow(),
		payments:   newPaymentWorkflow(),
	}
}

type procurementService struct {
	repo       model.ProcurementRepository
	budget     *BudgetController
	dispatcher EventDispatcher
	requests   *workflow.Workflow[model.RequestStatus, *model.PurchaseRequest]
	orders     *workflow.Workflow[model.OrderStatus, *model.PurchaseOrder]
	payments   *workflow.Workflow[model.PaymentStatus, *model.PaymentRequest]
}

// ensureID keeps a caller-chosen id or mints one when none was given.
func (s *procurementService) ensureID(id string) string {
	if id == "" {
		return s.repo.NextID()
	}
	return id
}

func (s *procurementService) CreateCategory(id, name, description string) (*model.ProductCategory, error) {
	category := &model.ProductCategory{
		ID:          s.ensureID(id),
		Name:        name,
		Description: description,
	}
	if err := s.repo.AddCategory(category); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.CategoryCreated{CategoryID: category.ID, Name: name})
	return category, nil
}

func (s *procurementService) CreateItem(id, categoryID, name string, unitCost float64, description string) (*model.ProductItem, error) {
	if unitCost <= 0 {
		return nil, errors.Wrap(model.ErrInvalidInput, "unit cost must be positive")
	}
	item := &model.ProductItem{
		ID:          s.ensureID(id),
		CategoryID:  categoryID,
		Name:        name,
		UnitCost:    unitCost,
		Description: description,
	}
	if err := s.repo.AddItem(item); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.ItemCreated{ItemID: item.ID, CategoryID: categoryID, UnitCost: unitCost})
	return item, nil
}

func (s *procurementService) ConfigureBudget(id, categoryID string, amount float64) (*model.BudgetRecord, error) {
	if amount <= 0 {
		return nil, errors.Wrap(model.ErrInvalidInput, "budget amount must be positive")
	}
	budget := &model.BudgetRecord{
		ID:         s.ensureID(id),
		CategoryID: categoryID,
		Allocated:  amount,
	}
	if err := s.repo.AddBudget(budget); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.BudgetConfigured{BudgetID: budget.ID, CategoryID: categoryID, Allocated: amount})
	return budget, nil
}

func (s *procurementService) CreatePurchaseRequest(id, requester, justification string, items []model.PurchaseRequestItem) (*model.PurchaseRequest, error) {
	if err := model.ValidateRequestItems(items); err != nil {
		return nil, err
	}
	for _, line := range items {
		if _, err := s.repo.GetItem(line.ItemID); err != nil {
			return nil, errors.Wrapf(err, "unknown product item %s", line.ItemID)
		}
	}
	request := &model.PurchaseRequest{
		ID:            s.ensureID(id),
		Requester:     requester,
		Justification: justification,
		Items:         append([]model.PurchaseRequestItem(nil), items...),
		Status:        model.RequestStatusDraft,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.SavePurchaseRequest(request); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.RequestCreated{
		RequestID:   request.ID,
		Requester:   requester,
		TotalAmount: request.TotalAmount(),
	})
	return request, nil
}

func (s *procurementService) SubmitPurchaseRequest(id string) (*model.PurchaseRequest, error) {
	request, err := s.repo.GetPurchaseRequest(id)
	if err != nil {
		return nil, err
	}
	if request.Status != model.RequestStatusDraft {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "only draft requests can be submitted")
	}
	if err := s.requests.Transition(request, request.Status, model.RequestStatusSubmitted); err != nil {
		return nil, err
	}
	request.Status = model.RequestStatusSubmitted
	if err := s.repo.SavePurchaseRequest(request); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.RequestSubmitted{RequestID: request.ID})
	return request, nil
}

func (s *procurementService) ApprovePurchaseRequest(id string) (*model.PurchaseRequest, error) {
	request, err := s.repo.GetPurchaseRequest(id)
	if err != nil {
		return nil, err
	}
	if request.Status != model.RequestStatusSubmitted {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "only submitted requests can be approved")
	}
	if err := s.budget.ValidateRequestAffordability(request); err != nil {
		return nil, err
	}
	if err := s.requests.Transition(request, request.Status, model.RequestStatusApproved); err != nil {
		return nil, err
	}
	request.Status = model.RequestStatusApproved
	if err := s.budget.ReserveForRequest(request); err != nil {
		return nil, err
	}
	if err := s.repo.SavePurchaseRequest(request); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.RequestApproved{RequestID: request.ID, TotalAmount: request.TotalAmount()})
	return request, nil
}

func (s *procurementService) RejectPurchaseRequest(id string) (*model.PurchaseRequest, error) {
	request, err := s.repo.GetPurchaseRequest(id)
	if err != nil {
		return nil, err
	}
	if request.Status != model.RequestStatusSubmitted {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "only submitted requests can be rejected")
	}
	if err := s.requests.Transition(request, request.Status, model.RequestStatusRejected); err != nil {
		return nil, err
	}
	request.Status = model.RequestStatusRejected
	if err := s.repo.SavePurchaseRequest(request); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.RequestRejected{RequestID: request.ID})
	return request, nil
}

func (s *procurementService) CancelPurchaseRequest(id string) (*model.PurchaseRequest, error) {
	request, err := s.repo.GetPurchaseRequest(id)
	if err != nil {
		return nil, err
	}
	if request.Status != model.RequestStatusApproved {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "only approved requests can be cancelled")
	}
	if err := s.requests.Transition(request, request.Status, model.RequestStatusCancelled); err != nil {
		return nil, err
	}
	request.Status = model.RequestStatusCancelled
	if err := s.budget.ReleaseForRequest(request); err != nil {
		return nil, err
	}
	if err := s.repo.SavePurchaseRequest(request); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.RequestCancelled{RequestID: request.ID, TotalAmount: request.TotalAmount()})
	return request, nil
}

func (s *procurementService) CreatePurchaseOrder(id, requestID, supplier string, items []model.PurchaseOrderItem) (*model.PurchaseOrder, error) {
	request, err := s.repo.GetPurchaseRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != model.RequestStatusApproved {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "purchase orders can only be created from approved requests")
	}
	orderItems := items
	if orderItems == nil {
		orderItems = model.CloneRequestItems(request)
	} else {
		orderItems = append([]model.PurchaseOrderItem(nil), items...)
	}
	order := &model.PurchaseOrder{
		ID:        s.ensureID(id),
		RequestID: requestID,
		Supplier:  supplier,
		Items:     orderItems,
		Status:    model.OrderStatusDraft,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.SavePurchaseOrder(order); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.OrderCreated{OrderID: order.ID, RequestID: requestID, Supplier: supplier})
	return order, nil
}

func (s *procurementService) SubmitPurchaseOrder(id string) (*model.PurchaseOrder, error) {
	order, err := s.repo.GetPurchaseOrder(id)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusDraft {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "only draft orders can be submitted")
	}
	if err := s.orders.Transition(order, order.Status, model.OrderStatusApprovalPending); err != nil {
		return nil, err
	}
	order.Status = model.OrderStatusApprovalPending
	if err := s.repo.SavePurchaseOrder(order); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.OrderSubmitted{OrderID: order.ID})
	return order, nil
}

func (s *procurementService) ApprovePurchaseOrder(id string) (*model.PurchaseOrder, error) {
	order, err := s.repo.GetPurchaseOrder(id)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusApprovalPending {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "only pending orders can be approved")
	}
	if err := s.orders.Transition(order, order.Status, model.OrderStatusApproved); err != nil {
		return nil, err
	}
	order.Status = model.OrderStatusApproved
	if err := s.budget.SpendForOrder(order); err != nil {
		return nil, err
	}
	if err := s.repo.SavePurchaseOrder(order); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.OrderApproved{OrderID: order.ID, RequestID: order.RequestID})
	return order, nil
}

func (s *procurementService) RejectPurchaseOrder(id string) (*model.PurchaseOrder, error) {
	order, err := s.repo.GetPurchaseOrder(id)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusApprovalPending {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "only pending orders can be rejected")
	}
	if err := s.orders.Transition(order, order.Status, model.OrderStatusRejected); err != nil {
		return nil, err
	}
	order.Status = model.OrderStatusRejected
	if err := s.repo.SavePurchaseOrder(order); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.OrderRejected{OrderID: order.ID})
	return order, nil
}

func (s *procurementService) CreatePaymentRequest(id, purchaseOrderID string, amount float64, payee string) (*model.PaymentRequest, error) {
	order, err := s.repo.GetPurchaseOrder(purchaseOrderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusApproved {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "payments can only be created for approved orders")
	}
	if amount <= 0 {
		return nil, errors.Wrap(model.ErrInvalidInput, "payment amount must be positive")
	}
	if amount > order.TotalAmount()+model.Epsilon {
		return nil, errors.Wrapf(model.ErrInvalidInput,
			"payment amount %.2f exceeds order total %.2f", amount, order.TotalAmount())
	}
	payment := &model.PaymentRequest{
		ID:              s.ensureID(id),
		PurchaseOrderID: purchaseOrderID,
		Amount:          amount,
		Payee:           payee,
		Status:          model.PaymentStatusDraft,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.SavePaymentRequest(payment); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.PaymentRequested{PaymentID: payment.ID, PurchaseOrderID: purchaseOrderID, Amount: amount})
	return payment, nil
}

func (s *procurementService) SubmitPaymentRequest(id string) (*model.PaymentRequest, error) {
	payment, err := s.repo.GetPaymentRequest(id)
	if err != nil {
		return nil, err
	}
	if payment.Status != model.PaymentStatusDraft {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "only draft payments can be submitted")
	}
	if err := s.payments.Transition(payment, payment.Status, model.PaymentStatusSubmitted); err != nil {
		return nil, err
	}
	payment.Status = model.PaymentStatusSubmitted
	if err := s.repo.SavePaymentRequest(payment); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.PaymentSubmitted{PaymentID: payment.ID})
	return payment, nil
}

func (s *procurementService) ApprovePaymentRequest(id string) (*model.PaymentRequest, error) {
	payment, err := s.repo.GetPaymentRequest(id)
	if err != nil {
		return nil, err
	}
	if payment.Status != model.PaymentStatusSubmitted {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "only submitted payments can be approved")
	}
	if err := s.payments.Transition(payment, payment.Status, model.PaymentStatusApproved); err != nil {
		return nil, err
	}
	payment.Status = model.PaymentStatusApproved
	if err := s.repo.SavePaymentRequest(payment); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.PaymentApproved{PaymentID: payment.ID, Amount: payment.Amount})
	return payment, nil
}

func (s *procurementService) RejectPaymentRequest(id string) (*model.PaymentRequest, error) {
	payment, err := s.repo.GetPaymentRequest(id)
	if err != nil {
		return nil, err
	}
	if payment.Status != model.PaymentStatusSubmitted {
		return nil, errors.Wrap(workflow.ErrInvalidTransition, "only submitted payments can be rejected")
	}
	if err := s.payments.Transition(payment, payment.Status, model.PaymentStatusRejected); err != nil {
		return nil, err
	}
	payment.Status = model.PaymentStatusRejected
	if err := s.repo.SavePaymentRequest(payment); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Dispatch(model.PaymentRejected{PaymentID: payment.ID})
	return payment, nil
}
