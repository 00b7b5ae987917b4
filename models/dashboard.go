package models

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category Category
	Total    Money
}

// DashboardSummary aggregates what the dashboard screen shows. Amounts are
// plain sums of client copies; the backend stays authoritative.
type DashboardSummary struct {
	Accounts     []Account
	TotalBalance Money
	Income       Money
	Expense      Money

	// Recent holds the newest transactions, newest first.
	Recent []Transaction

	// Transactions is the whole page the summary was computed from.
	Transactions []Transaction

	// ExpenseByCategory is sorted by total, largest first.
	ExpenseByCategory []CategoryTotal
}

// Net returns income minus expense.
func (s DashboardSummary) Net() Money {
	return s.Income - s.Expense
}
