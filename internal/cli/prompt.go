package cli

import (
	"context"
	"fmt"

	"github.com/avolkovs/staffdir/internal/engine"
	"github.com/avolkovs/staffdir/internal/validate"
)

// draftFields pairs each draft field key with its prompt label, in the same
// order validation reports them.
var draftFields = []struct{ key, label string }{
	{"firstName", "First name"},
	{"lastName", "Last name"},
	{"employment_date", "Date of employment (YYYY-MM-DD)"},
	{"birth_date", "Date of birth (YYYY-MM-DD)"},
	{"email", "Email"},
	{"phone", "Phone"},
	{"department", "Department (Tech/Analytics)"},
	{"position", "Position (Junior/Medior/Senior)"},
}

// promptDraft walks the user through every draft field, submits, and keeps
// re-prompting only the offending fields until the draft validates or the
// user aborts with ".". An empty answer keeps the field's current value.
func (a *App) promptDraft(ctx context.Context) {
	if !a.promptFields(ctx, nil) {
		return
	}

	for {
		a.lastErrors = nil
		a.eng.Dispatch(ctx, engine.Submit{})
		if a.lastErrors == nil {
			return
		}

		errs := a.lastErrors
		fmt.Fprintf(a.out, "%d field(s) need attention:\n", len(errs))
		for _, f := range validate.FieldOrder {
			if msg, ok := errs[f]; ok {
				fmt.Fprintf(a.out, "  %s: %s\n", f, msg)
			}
		}
		fmt.Fprintln(a.out, "Re-enter the fields above ('.' to abort).")
		if !a.promptFields(ctx, errs) {
			return
		}
	}
}

// promptFields asks for each field; when only is non-nil, fields without an
// error are skipped. Returns false when input ended or the user aborted.
func (a *App) promptFields(ctx context.Context, only validate.Errors) bool {
	draft := a.eng.Draft()
	for _, f := range draftFields {
		if only != nil {
			if _, ok := only[f.key]; !ok {
				continue
			}
		}
		current := draft.Get(f.key)
		if current != "" {
			fmt.Fprintf(a.out, "%s [%s]: ", f.label, current)
		} else {
			fmt.Fprintf(a.out, "%s: ", f.label)
		}

		line, ok := a.readLine()
		if !ok || line == "." {
			fmt.Fprintln(a.out, "Aborted.")
			return false
		}
		if line == "" {
			continue
		}
		a.eng.Dispatch(ctx, engine.FieldChanged{Key: f.key, Value: line})
	}
	return true
}
