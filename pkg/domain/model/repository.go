package model

// ProcurementRepository is the storage surface the procurement core consumes.
// Categories, items and budgets are insert-once; requests, orders and
// payments are saved with upsert semantics. Lookups return the stored
// entities themselves, so callers mutate them in place. Implementations are
// not required to be safe for concurrent use.
type ProcurementRepository interface {
	NextID() string

	AddCategory(category *ProductCategory) error
	AddItem(item *ProductItem) error
	AddBudget(budget *BudgetRecord) error
	GetItem(id string) (*ProductItem, error)
	GetBudgetByCategory(categoryID string) (*BudgetRecord, error)

	SavePurchaseRequest(request *PurchaseRequest) error
	GetPurchaseRequest(id string) (*PurchaseRequest, error)
	SavePurchaseOrder(order *PurchaseOrder) error
	GetPurchaseOrder(id string) (*PurchaseOrder, error)
	SavePaymentRequest(payment *PaymentRequest) error
	GetPaymentRequest(id string) (*PaymentRequest, error)
	ListPurchaseOrdersForRequest(requestID string) []*PurchaseOrder
}
