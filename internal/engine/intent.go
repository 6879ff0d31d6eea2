package engine

import (
	"github.com/avolkovs/staffdir/internal/models"
	"github.com/avolkovs/staffdir/internal/view"
)

// Intent is a discrete user intention dispatched to the engine by a
// presentation surface. The set is closed: surfaces communicate through
// these values instead of reaching into engine state.
type Intent interface{ isIntent() }

// RequestAdd opens a blank draft for a new record.
type RequestAdd struct{}

// RequestEdit opens a draft prefilled from the given record; stored dates
// are converted to their ISO editing form.
type RequestEdit struct{ Record models.Employee }

// RequestDelete asks for confirmation before removing the given record.
type RequestDelete struct{ Record models.Employee }

// Confirm proceeds with the pending edit or delete.
type Confirm struct{}

// Cancel discards the pending edit or delete without side effects.
type Cancel struct{}

// ChangePage moves to a 1-based page; out-of-range targets are ignored.
type ChangePage struct{ Target int }

// ChangePageSize changes how many records a page holds.
type ChangePageSize struct{ Size int }

// ChangeView switches between list and card display.
type ChangeView struct{ Mode view.Mode }

// FieldChanged updates one draft field (key is the field's json name) and
// clears that field's remembered validation error.
type FieldChanged struct{ Key, Value string }

// Submit validates the draft and starts the save workflow.
type Submit struct{}

func (RequestAdd) isIntent() {}

func (RequestEdit) isIntent() {}

func (RequestDelete) isIntent() {}

func (Confirm) isIntent() {}

func (Cancel) isIntent() {}

func (ChangePage) isIntent() {}

func (ChangePageSize) isIntent() {}

func (ChangeView) isIntent() {}

func (FieldChanged) isIntent() {}

func (Submit) isIntent() {}
