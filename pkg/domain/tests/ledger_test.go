package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rengerhu/Procurement/pkg/domain/model"
)

func assertLedgerInvariants(t *testing.T, record *model.BudgetRecord) {
	t.Helper()
	assert.GreaterOrEqual(t, record.Committed, -model.Epsilon)
	assert.GreaterOrEqual(t, record.Spent, -model.Epsilon)
	assert.LessOrEqual(t, record.Committed+record.Spent, record.Allocated+model.Epsilon)
}

func TestBudgetRecordAvailable(t *testing.T) {
	record := &model.BudgetRecord{ID: "budget-1", CategoryID: "office", Allocated: 500}
	assert.InDelta(t, 500.0, record.Available(), model.Epsilon)

	record.Committed = 120
	record.Spent = 80
	assert.InDelta(t, 300.0, record.Available(), model.Epsilon)
}

func TestBudgetRecordReserve(t *testing.T) {
	record := &model.BudgetRecord{ID: "budget-1", CategoryID: "office", Allocated: 500}

	t.Run("Success", func(t *testing.T) {
		err := record.Reserve(120)

		require.NoError(t, err)
		assert.InDelta(t, 120.0, record.Committed, model.Epsilon)
		assert.InDelta(t, 380.0, record.Available(), model.Epsilon)
		assertLedgerInvariants(t, record)
	})

	t.Run("Fail on negative amount", func(t *testing.T) {
		err := record.Reserve(-1)

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.InDelta(t, 120.0, record.Committed, model.Epsilon)
	})

	t.Run("Fail on overdraft", func(t *testing.T) {
		err := record.Reserve(380.01)

		assert.ErrorIs(t, err, model.ErrOverdraft)
		assert.InDelta(t, 120.0, record.Committed, model.Epsilon)
	})

	t.Run("Tolerates rounding noise within epsilon", func(t *testing.T) {
		err := record.Reserve(380 + 1e-10)

		require.NoError(t, err)
		assert.InDelta(t, 500.0, record.Committed, model.Epsilon)
		assertLedgerInvariants(t, record)
	})
}

func TestBudgetRecordRelease(t *testing.T) {
	record := &model.BudgetRecord{ID: "budget-1", CategoryID: "office", Allocated: 500}
	require.NoError(t, record.Reserve(200))

	t.Run("Success", func(t *testing.T) {
		err := record.Release(150)

		require.NoError(t, err)
		assert.InDelta(t, 50.0, record.Committed, model.Epsilon)
		assert.InDelta(t, 450.0, record.Available(), model.Epsilon)
		assertLedgerInvariants(t, record)
	})

	t.Run("Fail on negative amount", func(t *testing.T) {
		err := record.Release(-1)

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.InDelta(t, 50.0, record.Committed, model.Epsilon)
	})

	t.Run("Fail on more than committed", func(t *testing.T) {
		err := record.Release(50.01)

		assert.ErrorIs(t, err, model.ErrOverdraft)
		assert.InDelta(t, 50.0, record.Committed, model.Epsilon)
	})
}

func TestBudgetRecordSpend(t *testing.T) {
	record := &model.BudgetRecord{ID: "budget-1", CategoryID: "it", Allocated: 1000}
	require.NoError(t, record.Reserve(300))

	t.Run("Drains committed first", func(t *testing.T) {
		err := record.Spend(200)

		require.NoError(t, err)
		assert.InDelta(t, 100.0, record.Committed, model.Epsilon)
		assert.InDelta(t, 200.0, record.Spent, model.Epsilon)
		assertLedgerInvariants(t, record)
	})

	t.Run("Dips into available when committed is short", func(t *testing.T) {
		err := record.Spend(500)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, record.Committed, model.Epsilon)
		assert.InDelta(t, 700.0, record.Spent, model.Epsilon)
		assert.InDelta(t, 300.0, record.Available(), model.Epsilon)
		assertLedgerInvariants(t, record)
	})

	t.Run("Fail on exceeding what is left", func(t *testing.T) {
		err := record.Spend(400)

		assert.ErrorIs(t, err, model.ErrOverdraft)
		assert.InDelta(t, 700.0, record.Spent, model.Epsilon)
	})

	t.Run("Fail on negative amount", func(t *testing.T) {
		err := record.Spend(-1)

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.InDelta(t, 700.0, record.Spent, model.Epsilon)
	})
}
