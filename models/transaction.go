package models

import "time"

// Transaction is a single income or expense entry.
type Transaction struct {
	ID          ID        `json:"id,omitempty"`
	Amount      Money     `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Type        EntryType `json:"type"`
	AccountID   ID        `json:"accountId"`
	CategoryID  ID        `json:"categoryId"`
}

// SignedAmount returns the amount with the sign implied by the entry type:
// positive for income, negative for expense.
func (t Transaction) SignedAmount() Money {
	if t.Type == Expense {
		return -t.Amount.Abs()
	}
	return t.Amount.Abs()
}

// TransactionPage is one page of the paginated transaction listing.
type TransactionPage struct {
	// Page is the 1-based page number that was requested.
	Page int

	// Transactions are the records of this page in server order.
	Transactions []Transaction

	// HasMore tells whether a further page exists.
	HasMore bool
}
