// Package memory provides the map-backed storage the procurement core runs
// against. Entities are stored by reference: lookups hand back the stored
// pointer, and the core mutates entities in place.
package memory

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rengerhu/Procurement/pkg/domain/model"
)

// Repository keeps every procurement entity in plain maps. It honours the
// core's single-actor contract and performs no locking; hosts issuing
// commands from multiple goroutines must serialize access themselves.
type Repository struct {
	categories map[string]*model.ProductCategory
	items      map[string]*model.ProductItem
	budgets    map[string]*model.BudgetRecord
	requests   map[string]*model.PurchaseRequest
	orders     map[string]*model.PurchaseOrder
	payments   map[string]*model.PaymentRequest

	// budgetsByCategory and orderIDs keep insertion order, so the first
	// budget configured for a category stays the one lookups resolve and
	// order listings come back in creation order.
	budgetsByCategory map[string][]string
	orderIDs          []string
}

func NewRepository() *Repository {
	return &Repository{
		categories:        make(map[string]*model.ProductCategory),
		items:             make(map[string]*model.ProductItem),
		budgets:           make(map[string]*model.BudgetRecord),
		requests:          make(map[string]*model.PurchaseRequest),
		orders:            make(map[string]*model.PurchaseOrder),
		payments:          make(map[string]*model.PaymentRequest),
		budgetsByCategory: make(map[string][]string),
	}
}

func (r *Repository) NextID() string {
	return uuid.NewString()
}

func (r *Repository) AddCategory(category *model.ProductCategory) error {
	if _, exists := r.categories[category.ID]; exists {
		return errors.Wrapf(model.ErrDuplicateID, "category %s", category.ID)
	}
	r.categories[category.ID] = category
	return nil
}

func (r *Repository) AddItem(item *model.ProductItem) error {
	if _, exists := r.categories[item.CategoryID]; !exists {
		return errors.Wrapf(model.ErrNotFound, "category %s", item.CategoryID)
	}
	if _, exists := r.items[item.ID]; exists {
		return errors.Wrapf(model.ErrDuplicateID, "item %s", item.ID)
	}
	r.items[item.ID] = item
	return nil
}

func (r *Repository) AddBudget(budget *model.BudgetRecord) error {
	if _, exists := r.categories[budget.CategoryID]; !exists {
		return errors.Wrapf(model.ErrNotFound, "category %s", budget.CategoryID)
	}
	if _, exists := r.budgets[budget.ID]; exists {
		return errors.Wrapf(model.ErrDuplicateID, "budget %s", budget.ID)
	}
	r.budgets[budget.ID] = budget
	r.budgetsByCategory[budget.CategoryID] = append(r.budgetsByCategory[budget.CategoryID], budget.ID)
	return nil
}

func (r *Repository) GetItem(id string) (*model.ProductItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, errors.Wrapf(model.ErrNotFound, "item %s", id)
	}
	return item, nil
}

// GetBudgetByCategory resolves the budget for a category. When several
// budgets were configured for the same category, the first one wins.
func (r *Repository) GetBudgetByCategory(categoryID string) (*model.BudgetRecord, error) {
	ids := r.budgetsByCategory[categoryID]
	if len(ids) == 0 {
		return nil, errors.Wrapf(model.ErrNotFound, "budget for category %s", categoryID)
	}
	return r.budgets[ids[0]], nil
}

func (r *Repository) SavePurchaseRequest(request *model.PurchaseRequest) error {
	r.requests[request.ID] = request
	return nil
}

func (r *Repository) GetPurchaseRequest(id string) (*model.PurchaseRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, errors.Wrapf(model.ErrNotFound, "purchase request %s", id)
	}
	return request, nil
}

func (r *Repository) SavePurchaseOrder(order *model.PurchaseOrder) error {
	if _, exists := r.orders[order.ID]; !exists {
		r.orderIDs = append(r.orderIDs, order.ID)
	}
	r.orders[order.ID] = order
	return nil
}

func (r *Repository) GetPurchaseOrder(id string) (*model.PurchaseOrder, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.Wrapf(model.ErrNotFound, "purchase order %s", id)
	}
	return order, nil
}

func (r *Repository) SavePaymentRequest(payment *model.PaymentRequest) error {
	r.payments[payment.ID] = payment
	return nil
}

func (r *Repository) GetPaymentRequest(id string) (*model.PaymentRequest, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, errors.Wrapf(model.ErrNotFound, "payment request %s", id)
	}
	return payment, nil
}

func (r *Repository) ListPurchaseOrdersForRequest(requestID string) []*model.PurchaseOrder {
	var matches []*model.PurchaseOrder
	for _, id := range r.orderIDs {
		if order := r.orders[id]; order.RequestID == requestID {
			matches = append(matches, order)
		}
	}
	return matches
}
