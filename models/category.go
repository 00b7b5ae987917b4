package models

// EntryType tells income from expense. It applies to both categories and
// transactions.
type EntryType string

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	return t == Income || t == Expense
}

// Category groups transactions of one entry type.
type Category struct {
	ID   ID        `json:"id,omitempty"`
	Name string    `json:"name"`
	Type EntryType `json:"type"`
}
