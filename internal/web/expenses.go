package web

import (
	"net/http"
	"strconv"
	"strings"

	"tiny-ai/internal/app"
	"tiny-ai/internal/expense"
	"tiny-ai/internal/httputil"
	"tiny-ai/internal/modes"
	"tiny-ai/internal/session"
	"tiny-ai/internal/view"
)

func expensesPage(deps app.Deps) http.HandlerFunc {
	return withSession(deps, func(w http.ResponseWriter, r *http.Request, st session.State) session.State {
		render(deps, w, http.StatusOK, view.Page{Mode: modes.ModeExpenses, Totals: modes.Expenses{}.View(st)})
		return st
	})
}

// expensesAdd ignores invalid input without telling the user.
func expensesAdd(deps app.Deps) http.HandlerFunc {
	return withSession(deps, func(w http.ResponseWriter, r *http.Request, st session.State) session.State {
		category := r.FormValue("category")
		page := view.Page{Mode: modes.ModeExpenses, Category: category}

		next := st
		if amount, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("amount")), 64); err == nil {
			var added bool
			next, added = modes.Expenses{}.Add(st, category, amount)
			if added {
				page.Flash = &view.Flash{Kind: view.FlashSuccess, Text: "Expense added!"}
			}
		}
		page.Totals = modes.Expenses{}.View(next)
		render(deps, w, http.StatusOK, page)
		return next
	})
}

func expensesChart(deps app.Deps) http.HandlerFunc {
	return withSession(deps, func(w http.ResponseWriter, r *http.Request, st session.State) session.State {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := expense.RenderChart(w, modes.Expenses{}.View(st)); err != nil {
			deps.Log.Error("chart render failed", "err", err)
		}
		return st
	})
}

func expensesSummary(deps app.Deps) http.HandlerFunc {
	return withSession(deps, func(w http.ResponseWriter, r *http.Request, st session.State) session.State {
		totals := modes.Expenses{}.View(st)
		if totals == nil {
			totals = []expense.CategoryTotal{}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"categories": totals,
			"total":      expense.Sum(totals),
			"entries":    len(st.Expenses),
		})
		return st
	})
}
