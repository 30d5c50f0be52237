package model

// Domain events emitted by the procurement service, one per successful
// command. Events are dispatched after every state effect of the command has
// been applied.

type CategoryCreated struct {
	CategoryID string
	Name       string
}

func (e CategoryCreated) Type() string { return "CategoryCreated" }

type ItemCreated struct {
	ItemID     string
	CategoryID string
	UnitCost   float64
}

func (e ItemCreated) Type() string { return "ItemCreated" }

type BudgetConfigured struct {
	BudgetID   string
	CategoryID string
	Allocated  float64
}

func (e BudgetConfigured) Type() string { return "BudgetConfigured" }

type RequestCreated struct {
	RequestID   string
	Requester   string
	TotalAmount float64
}

func (e RequestCreated) Type() string { return "RequestCreated" }

type RequestSubmitted struct {
	RequestID string
}

func (e RequestSubmitted) Type() string { return "RequestSubmitted" }

type RequestApproved struct {
	RequestID   string
	TotalAmount float64
}

func (e RequestApproved) Type() string { return "RequestApproved" }

type RequestRejected struct {
	RequestID string
}

func (e RequestRejected) Type() string { return "RequestRejected" }

type RequestCancelled struct {
	RequestID   string
	TotalAmount float64
}

func (e RequestCancelled) Type() string { return "RequestCancelled" }

type OrderCreated struct {
	OrderID   string
	RequestID string
	Supplier  string
}

func (e OrderCreated) Type() string { return "OrderCreated" }

type OrderSubmitted struct {
	OrderID string
}

func (e OrderSubmitted) Type() string { return "OrderSubmitted" }

type OrderApproved struct {
	OrderID   string
	RequestID string
}

func (e OrderApproved) Type() string { return "OrderApproved" }

type OrderRejected struct {
	OrderID string
}

func (e OrderRejected) Type() string { return "OrderRejected" }

type PaymentRequested struct {
	PaymentID       string
	PurchaseOrderID string
	Amount          float64
}

func (e PaymentRequested) Type() string { return "PaymentRequested" }

type PaymentSubmitted struct {
	PaymentID string
}

func (e PaymentSubmitted) Type() string { return "PaymentSubmitted" }

type PaymentApproved struct {
	PaymentID string
	Amount    float64
}

func (e PaymentApproved) Type() string { return "PaymentApproved" }

type PaymentRejected struct {
	PaymentID string
}

func (e PaymentRejected) Type() string { return "PaymentRejected" }
