// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/expense"
	"todo/internal/task"
)

// FormatTask formats a task line.
// Format: "{ID:>4}  {STATUS:<11}  {DESCRIPTION}\n"
func FormatTask(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "%4d  %-11s  %s\n", t.ID, t.Status, normalizeTitle(t.Description))
}

// FormatExpense formats an expense line.
// Format: "{ID:>4}  {DATE}  {AMOUNT:>10.2f}  {CATEGORY[/SUB]}  {DESCRIPTION}\n"
func FormatExpense(w io.Writer, e expense.Expense) {
	category := e.Category
	if e.SubCategory != "" {
		category += "/" + e.SubCategory
	}
	desc := strings.TrimSpace(foldNewlines(e.Description))
	line := fmt.Sprintf("%4d  %s  %10.2f  %s", e.ID, e.Date.Format(expense.DateLayout), e.Amount, category)
	if desc != "" {
		line += "  " + desc
	}
	fmt.Fprintln(w, line)
}

// normalizeTitle normalizes a description for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = foldNewlines(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func foldNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
