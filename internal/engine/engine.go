// Package engine implements the record lifecycle workflow. It owns the full
// in-memory collection, turns intents from presentation surfaces into
// validate → normalize → confirm → persist sequences, and reconciles the
// outcome back into the collection before notifying listeners.
package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/avolkovs/staffdir/internal/format"
	"github.com/avolkovs/staffdir/internal/logging"
	"github.com/avolkovs/staffdir/internal/models"
	"github.com/avolkovs/staffdir/internal/paging"
	"github.com/avolkovs/staffdir/internal/remote"
	"github.com/avolkovs/staffdir/internal/validate"
	"github.com/avolkovs/staffdir/internal/view"
)

type pendingAction struct {
	action    Action
	candidate models.Employee
}

// Engine serializes all state mutation behind one lock; within a session,
// mutating workflows cannot interleave. The remote resource itself stays
// unlocked between load and replace, so concurrent sessions race with
// last-writer-wins semantics.
type Engine struct {
	mu        sync.Mutex
	log       logging.Logger
	client    remote.Client
	pager     *paging.Pager
	views     *view.Controller
	col       collection
	draft     models.Draft
	draftErrs validate.Errors
	editing   bool
	editKey   string
	pending   *pendingAction
	navigate  func()
	subs      []func(Notification)
}

// Option configures an Engine.
type Option func(*Engine)

// WithNavigator installs the hook invoked when a save workflow returns the
// user to the record listing. It always runs before the RecordSaved
// notification: navigation happens-before the announcement.
func WithNavigator(fn func()) Option {
	return func(e *Engine) { e.navigate = fn }
}

func New(client remote.Client, pageSize int, log logging.Logger, opts ...Option) *Engine {
	e := &Engine{
		client: client,
		pager:  paging.New(pageSize),
		views:  view.NewController(),
		log:    log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe registers a listener for notifications. Listeners must not
// dispatch intents synchronously from the callback.
func (e *Engine) Subscribe(fn func(Notification)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// Start loads the collection once and emits the initial page. A failed load
// is logged and leaves the collection empty rather than failing startup.
func (e *Engine) Start(ctx context.Context) {
	list, err := e.client.LoadAll(ctx)
	if err != nil {
		e.log.Error(ctx, "initial load failed, starting empty", "err", err)
		list = nil
	}

	e.mu.Lock()
	e.col.set(list)
	notes := []Notification{pageData(e.pager.SetRows(e.col.snapshot()))}
	e.mu.Unlock()
	e.emit(notes)
}

// Dispatch handles one intent. Notifications produced by it are delivered
// before Dispatch returns.
func (e *Engine) Dispatch(ctx context.Context, it Intent) {
	e.mu.Lock()
	var notes []Notification

	switch v := it.(type) {
	case RequestAdd:
		e.draft = models.Draft{}
		e.draftErrs = nil
		e.editing = false
		e.editKey = ""

	case RequestEdit:
		e.draft = models.NewDraft(v.Record)
		e.draftErrs = nil
		e.editing = true
		e.editKey = v.Record.Key()

	case RequestDelete:
		e.pending = &pendingAction{action: ActionDelete, candidate: v.Record}
		notes = append(notes, ConfirmRequested{Action: ActionDelete, PersonName: v.Record.FullName()})

	case FieldChanged:
		value := v.Value
		if v.Key == "phone" {
			value = format.FormatPhoneInput(value)
		}
		if e.draft.Set(v.Key, value) {
			delete(e.draftErrs, v.Key)
		}

	case Submit:
		errs, ok := validate.Check(e.draft)
		if !ok {
			e.draftErrs = errs
			notes = append(notes, ValidationFailed{Errors: errs, First: errs.First()})
			break
		}
		candidate := e.draft.Employee()
		if e.editing {
			e.pending = &pendingAction{action: ActionEdit, candidate: candidate}
			notes = append(notes, ConfirmRequested{Action: ActionEdit, PersonName: candidate.FullName()})
			break
		}
		notes = append(notes, e.save(ctx, candidate, false)...)

	case Confirm:
		if e.pending == nil {
			break
		}
		p := *e.pending
		e.pending = nil
		switch p.action {
		case ActionEdit:
			notes = append(notes, e.save(ctx, p.candidate, true)...)
		case ActionDelete:
			notes = append(notes, e.delete(ctx, p.candidate)...)
		}

	case Cancel:
		e.pending = nil

	case ChangePage:
		if s, ok := e.pager.ChangePage(v.Target); ok {
			notes = append(notes, pageData(s))
		}

	case ChangePageSize:
		if v.Size > 0 {
			notes = append(notes, pageData(e.pager.SetPageSize(v.Size)))
		}

	case ChangeView:
		if e.views.Set(v.Mode) {
			notes = append(notes, ViewChanged{Mode: v.Mode})
		}
	}

	e.mu.Unlock()
	e.emit(notes)
}

// save runs the load-modify-write cycle for a create or a confirmed edit.
// Caller holds the lock.
func (e *Engine) save(ctx context.Context, candidate models.Employee, isEdit bool) []Notification {
	log := e.log.With("op", uuid.NewString())

	list, err := e.client.LoadAll(ctx)
	if err != nil {
		// Nothing was written; the collection and the views stay as they were.
		log.Error(ctx, "load before save failed", "err", err)
		return nil
	}

	if isEdit {
		if i := indexByKey(list, e.editKey); i >= 0 {
			candidate.ID = list[i].ID
			list[i] = candidate
		} else {
			log.Warn(ctx, "record under edit vanished remotely, appending", "key", e.editKey)
			if candidate.ID == 0 {
				candidate.ID = models.NextID(list)
			}
			list = append(list, candidate)
		}
	} else {
		candidate.ID = models.NextID(list)
		list = append(list, candidate)
	}

	ack, err := e.client.ReplaceAll(ctx, list)
	if err != nil {
		// Both the replace and the export failed; the record still lives in
		// this session's collection so the user can retry.
		log.Error(ctx, "replace failed", "err", err)
	} else if !ack.Durable {
		log.Warn(ctx, "saved to local export only", "path", ack.ExportPath)
	}

	if e.navigate != nil {
		e.navigate()
	}

	e.col.upsert(candidate)
	e.draft = models.Draft{}
	e.draftErrs = nil
	e.editing = false
	e.editKey = ""

	return []Notification{
		RecordSaved{Record: candidate, Durable: ack.Durable, ExportPath: ack.ExportPath},
		pageData(e.pager.SetRows(e.col.snapshot())),
	}
}

// delete removes the record remotely and locally. When the remote collection
// cannot be loaded the removal still happens in this session, so the views
// stay consistent with what the user asked for. Caller holds the lock.
func (e *Engine) delete(ctx context.Context, rec models.Employee) []Notification {
	log := e.log.With("op", uuid.NewString())
	key := rec.Key()

	list, err := e.client.LoadAll(ctx)
	if err != nil {
		log.Warn(ctx, "load before delete failed, removing locally only", "err", err)
	} else {
		ack, err := e.client.ReplaceAll(ctx, removeByKey(list, key))
		if err != nil {
			log.Error(ctx, "replace after delete failed", "err", err)
		} else if !ack.Durable {
			log.Warn(ctx, "delete reached local export only", "path", ack.ExportPath)
		}
	}

	e.col.removeByKey(key)
	return []Notification{pageData(e.pager.SetRows(e.col.snapshot()))}
}

func (e *Engine) emit(notes []Notification) {
	if len(notes) == 0 {
		return
	}
	e.mu.Lock()
	subs := make([]func(Notification), len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()

	for _, n := range notes {
		for _, fn := range subs {
			fn(n)
		}
	}
}

// Records returns a snapshot of the full collection.
func (e *Engine) Records() []models.Employee {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.col.snapshot()
}

// Current returns the current page without changing state.
func (e *Engine) Current() PageData {
	e.mu.Lock()
	defer e.mu.Unlock()
	return pageData(e.pager.Current())
}

// Window returns the page indicator sequence for the current position.
func (e *Engine) Window() []paging.Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	return paging.Window(e.pager.Page(), e.pager.TotalPages())
}

// Mode returns the current display mode.
func (e *Engine) Mode() view.Mode {
	return e.views.Mode()
}

// Draft returns the draft currently being edited.
func (e *Engine) Draft() models.Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// DraftErrors returns the remembered validation errors for the draft.
func (e *Engine) DraftErrors() validate.Errors {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(validate.Errors, len(e.draftErrs))
	for k, v := range e.draftErrs {
		out[k] = v
	}
	return out
}
