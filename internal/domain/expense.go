package domain

import "time"

type Category string

const (
	CategoryGroceries    Category = "groceries"
	CategoryUtilities    Category = "utilities"
	CategoryFoodDelivery Category = "food_delivery"
	CategoryCleaning     Category = "cleaning"
	CategoryInternet     Category = "internet"
	CategoryMaintenance  Category = "maintenance"
	CategoryOther        Category = "other"
)

// Valid reports whether c is one of the known expense categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryGroceries, CategoryUtilities, CategoryFoodDelivery,
		CategoryCleaning, CategoryInternet, CategoryMaintenance, CategoryOther:
		return true
	}
	return false
}

type ShareStatus string

const (
	ShareStatusPending ShareStatus = "pending"
	ShareStatusSettled ShareStatus = "settled"
)

// Share is one participant's portion of a shared expense. A share moves
// pending -> settled exactly once; there is no reverse transition. The
// payer's own share is created settled with no SettledAt stamp, since it
// never represents an outstanding debt.
type Share struct {
	UserID      string      `json:"user_id"`
	User        *Person     `json:"user,omitempty"`
	AmountPaise int64       `json:"amount_paise"`
	Status      ShareStatus `json:"status"`
	SettledAt   *time.Time  `json:"settled_at,omitempty"`
}

// Expense is an immutable shared-expense record. Core fields are frozen at
// creation; only the splits mutate, via settlement. TargetUPIID is copied
// from the payer at creation and never re-resolved, so a later change to the
// payer's default UPI id does not touch past expenses.
type Expense struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"room_id"`
	Description string    `json:"description"`
	AmountPaise int64     `json:"amount_paise"`
	Category    Category  `json:"category"`
	SpentOn     time.Time `json:"spent_on"`
	TargetUPIID string    `json:"target_upi_id"`
	PaidByID    string    `json:"paid_by_id"`
	PaidBy      *Person   `json:"paid_by,omitempty"`
	Splits      []Share   `json:"splits"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ShareOf returns the share belonging to userID, or nil.
func (e *Expense) ShareOf(userID string) *Share {
	for i := range e.Splits {
		if e.Splits[i].UserID == userID {
			return &e.Splits[i]
		}
	}
	return nil
}

// IsPayer reports whether userID fronted the money for this expense.
func (e *Expense) IsPayer(userID string) bool {
	return e.PaidByID == userID
}

// PendingDebtorShares returns the non-payer shares still pending.
func (e *Expense) PendingDebtorShares() []Share {
	var out []Share
	for _, s := range e.Splits {
		if s.UserID != e.PaidByID && s.Status == ShareStatusPending {
			out = append(out, s)
		}
	}
	return out
}
