package service

import (
	"github.com/pkg/errors"

	"github.com/rengerhu/Procurement/pkg/domain/model"
)

// categoryTotal pairs a category with the amount a request needs from it.
type categoryTotal struct {
	categoryID string
	total      float64
}

// BudgetController maps a request's line items to per-category totals and
// drives the ledger arithmetic on the matching budget records.
type BudgetController struct {
	repo model.ProcurementRepository
}

func NewBudgetController(repo model.ProcurementRepository) *BudgetController {
	return &BudgetController{repo: repo}
}

// totalsByCategory resolves every line's item and aggregates line totals per
// category. Totals keep the first-appearance order of the request's lines so
// ledger effects apply in a deterministic order.
func (c *BudgetController) totalsByCategory(request *model.PurchaseRequest) ([]categoryTotal, error) {
	totals := make([]categoryTotal, 0, len(request.Items))
	index := make(map[string]int, len(request.Items))
	for _, line := range request.Items {
		item, err := c.repo.GetItem(line.ItemID)
		if err != nil {
			return nil, errors.Wrapf(err, "request %s references unknown item", request.ID)
		}
		position, ok := index[item.CategoryID]
		if !ok {
			position = len(totals)
			index[item.CategoryID] = position
			totals = append(totals, categoryTotal{categoryID: item.CategoryID})
		}
		totals[position].total += line.TotalPrice()
	}
	return totals, nil
}

// ValidateRequestAffordability checks that every category the request touches
// has a budget with enough available headroom for the category's total. The
// ledger is not modified.
func (c *BudgetController) ValidateRequestAffordability(request *model.PurchaseRequest) error {
	totals, err := c.totalsByCategory(request)
	if err != nil {
		return err
	}
	for _, entry := range totals {
		record, err := c.repo.GetBudgetByCategory(entry.categoryID)
		if err != nil {
			return errors.Wrapf(model.ErrNoBudget, "category %s requires %.2f", entry.categoryID, entry.total)
		}
		if record.Available() < entry.total-model.Epsilon {
			return errors.Wrapf(model.ErrOverdraft,
				"budget %s for category %s has %.2f available, request needs %.2f",
				record.ID, entry.categoryID, record.Available(), entry.total)
		}
	}
	return nil
}

// ReserveForRequest commits every category total against its budget. Callers
// validate affordability first; the ledger's own overdraft check remains the
// final guard.
func (c *BudgetController) ReserveForRequest(request *model.PurchaseRequest) error {
	totals, err := c.totalsByCategory(request)
	if err != nil {
		return err
	}
	for _, entry := range totals {
		record, err := c.repo.GetBudgetByCategory(entry.categoryID)
		if err != nil {
			return errors.Wrapf(model.ErrNoBudget, "category %s", entry.categoryID)
		}
		if err := record.Reserve(entry.total); err != nil {
			return err
		}
	}
	return nil
}

// ReleaseForRequest returns the request's reserved totals to their budgets.
// Categories whose budget has gone missing are skipped, so a reservation can
// still be released after losing its budget record.
func (c *BudgetController) ReleaseForRequest(request *model.PurchaseRequest) error {
	totals, err := c.totalsByCategory(request)
	if err != nil {
		return err
	}
	for _, entry := range totals {
		record, err := c.repo.GetBudgetByCategory(entry.categoryID)
		if err != nil {
			continue
		}
		if err := record.Release(entry.total); err != nil {
			return err
		}
	}
	return nil
}

// SpendForOrder converts the reservation behind order into spend. Totals are
// recomputed from the originating request's items, not from the order's own
// lines, so the spend always matches what was reserved.
func (c *BudgetController) SpendForOrder(order *model.PurchaseOrder) error {
	request, err := c.repo.GetPurchaseRequest(order.RequestID)
	if err != nil {
		return errors.Wrapf(err, "order %s has no originating request", order.ID)
	}
	totals, err := c.totalsByCategory(request)
	if err != nil {
		return err
	}
	for _, entry := range totals {
		record, err := c.repo.GetBudgetByCategory(entry.categoryID)
		if err != nil {
			return errors.Wrapf(model.ErrNoBudget, "category %s", entry.categoryID)
		}
		if err := record.Spend(entry.total); err != nil {
			return err
		}
	}
	return nil
}
