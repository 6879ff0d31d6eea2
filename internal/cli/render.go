package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/avolkovs/staffdir/internal/format"
	"github.com/avolkovs/staffdir/internal/models"
	"github.com/avolkovs/staffdir/internal/paging"
	"github.com/avolkovs/staffdir/internal/view"
)

func (a *App) renderPage() {
	fmt.Fprintf(a.out, "\nEmployees (page %d/%d, %s view)\n", a.page.Page, a.page.TotalPages, a.mode)

	if len(a.page.Records) == 0 {
		fmt.Fprintln(a.out, "No employees.")
	} else if a.mode == view.ModeCard {
		a.renderCards(a.page.Records)
	} else {
		a.renderTable(a.page.Records)
	}

	fmt.Fprintln(a.out, renderWindow(a.eng.Window(), a.page.Page))
}

func (a *App) renderTable(rows []models.Employee) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFirst Name\tLast Name\tEmployment\tBirth\tPhone\tEmail\tDepartment\tPosition")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.FirstName, r.LastName, r.EmploymentDate, r.BirthDate,
			format.FormatPhoneDisplay(r.Phone), r.Email, r.Department, r.Position)
	}
	w.Flush()
}

func (a *App) renderCards(rows []models.Employee) {
	rule := strings.Repeat("-", min(a.width, 40))
	for _, r := range rows {
		fmt.Fprintln(a.out, rule)
		fmt.Fprintf(a.out, "#%d %s\n", r.ID, r.FullName())
		fmt.Fprintf(a.out, "  Employment: %s   Birth: %s\n", r.EmploymentDate, r.BirthDate)
		fmt.Fprintf(a.out, "  Phone: %s   Email: %s\n", format.FormatPhoneDisplay(r.Phone), r.Email)
		fmt.Fprintf(a.out, "  %s / %s\n", r.Department, r.Position)
	}
	fmt.Fprintln(a.out, rule)
}

// renderWindow draws the bounded page indicator row, e.g.
// "« 1 … 3 4 [5] 6 7 … 10 »".
func renderWindow(items []paging.Item, current int) string {
	parts := make([]string, 0, len(items)+2)
	parts = append(parts, "«")
	for _, it := range items {
		switch {
		case it.Ellipsis:
			parts = append(parts, "…")
		case it.Page == current:
			parts = append(parts, fmt.Sprintf("[%d]", it.Page))
		default:
			parts = append(parts, fmt.Sprintf("%d", it.Page))
		}
	}
	parts = append(parts, "»")
	return strings.Join(parts, " ")
}
