package modes

import (
	"tiny-ai/internal/expense"
	"tiny-ai/internal/session"
)

// Expenses records expenses and aggregates them for display.
type Expenses struct{}

// Add appends a valid entry. Invalid entries are silently dropped and added is false.
func (Expenses) Add(st session.State, category string, amount float64) (next session.State, added bool) {
	entry := expense.Entry{Category: category, Amount: amount}
	if entry.Validate() != nil {
		return st, false
	}
	next = st.Clone()
	next.Expenses = append(next.Expenses, entry)
	return next, true
}

// View aggregates the session's expenses in first-seen category order.
func (Expenses) View(st session.State) []expense.CategoryTotal {
	return expense.Aggregate(st.Expenses)
}
