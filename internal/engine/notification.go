package engine

import (
	"github.com/avolkovs/staffdir/internal/models"
	"github.com/avolkovs/staffdir/internal/paging"
	"github.com/avolkovs/staffdir/internal/validate"
	"github.com/avolkovs/staffdir/internal/view"
)

// Notification is derived view data emitted by the engine for presentation
// surfaces to render.
type Notification interface{ isNotification() }

// Action names the destructive step awaiting confirmation.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// PageData carries the current page slice; emitted whenever the page, the
// page size or the underlying collection changes.
type PageData struct {
	Page       int
	TotalPages int
	Records    []models.Employee
}

// RecordSaved announces a completed save. Durable is false when the write
// only reached the local export at ExportPath.
type RecordSaved struct {
	Record     models.Employee
	Durable    bool
	ExportPath string
}

// ValidationFailed carries the field-keyed errors for a rejected submit;
// First is the field that should receive input focus.
type ValidationFailed struct {
	Errors validate.Errors
	First  string
}

// ViewChanged announces a display-mode switch.
type ViewChanged struct{ Mode view.Mode }

// ConfirmRequested asks the surface to confirm or cancel a destructive
// action against the named person.
type ConfirmRequested struct {
	Action     Action
	PersonName string
}

func (PageData) isNotification() {}

func (RecordSaved) isNotification() {}

func (ValidationFailed) isNotification() {}

func (ViewChanged) isNotification() {}

func (ConfirmRequested) isNotification() {}

func pageData(s paging.Slice) PageData {
	return PageData{Page: s.Page, TotalPages: s.TotalPages, Records: s.Rows}
}
