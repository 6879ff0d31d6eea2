// Package cli is the terminal presentation surface: a REPL that turns typed
// commands into engine intents and renders the notifications coming back.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/avolkovs/staffdir/internal/config"
	"github.com/avolkovs/staffdir/internal/engine"
	"github.com/avolkovs/staffdir/internal/logging"
	"github.com/avolkovs/staffdir/internal/models"
	"github.com/avolkovs/staffdir/internal/remote"
	"github.com/avolkovs/staffdir/internal/validate"
	"github.com/avolkovs/staffdir/internal/view"
)

const fallbackWidth = 80

// App owns the engine and the terminal state of the session.
type App struct {
	log     logging.Logger
	eng     *engine.Engine
	out     io.Writer
	scanner *bufio.Scanner

	page       engine.PageData
	mode       view.Mode
	confirm    *engine.ConfirmRequested
	lastErrors validate.Errors
	width      int
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	a := &App{
		log:     log,
		out:     os.Stdout,
		scanner: bufio.NewScanner(os.Stdin),
		mode:    view.ModeList,
		width:   fallbackWidth,
	}

	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			a.width = w
		}
	}

	exporter := remote.NewExporter(cfg.ExportDir)
	client := remote.NewHTTPClient(cfg.ResourceURL, cfg.RequestTimeout, exporter, log)
	a.eng = engine.New(client, cfg.PageSize, log,
		engine.WithNavigator(func() {
			fmt.Fprintln(a.out, "-- back to employee list --")
		}),
	)
	a.eng.Subscribe(a.onNotification)
	return a
}

// Run loads the collection and hands control to the REPL until EOF, exit or
// context cancellation.
func (a *App) Run(ctx context.Context) {
	a.eng.Start(ctx)
	runREPL(ctx, a, a.scanner)
}

func (a *App) onNotification(n engine.Notification) {
	switch v := n.(type) {
	case engine.PageData:
		a.page = v
		a.renderPage()
	case engine.ViewChanged:
		a.mode = v.Mode
		a.renderPage()
	case engine.RecordSaved:
		fmt.Fprintf(a.out, "Saved %s (id %d).\n", v.Record.FullName(), v.Record.ID)
		if !v.Durable {
			fmt.Fprintf(a.out, "Server unavailable: collection exported to %s instead.\n", v.ExportPath)
		}
	case engine.ValidationFailed:
		a.lastErrors = v.Errors
	case engine.ConfirmRequested:
		a.confirm = &v
		switch v.Action {
		case engine.ActionEdit:
			fmt.Fprintf(a.out, "Save changes to %s? (yes/no)\n", v.PersonName)
		case engine.ActionDelete:
			fmt.Fprintf(a.out, "Delete %s? (yes/no)\n", v.PersonName)
		}
	}
}

func (a *App) Help() {
	fmt.Fprintln(a.out, "Commands: list, card, page N, next, prev, size N, add, edit ID, delete ID, yes, no, show, help, exit")
}

func (a *App) Show(ctx context.Context) { a.renderPage() }

func (a *App) List(ctx context.Context) {
	a.eng.Dispatch(ctx, engine.ChangeView{Mode: view.ModeList})
}

func (a *App) Card(ctx context.Context) {
	a.eng.Dispatch(ctx, engine.ChangeView{Mode: view.ModeCard})
}

func (a *App) Page(ctx context.Context, target int) {
	a.eng.Dispatch(ctx, engine.ChangePage{Target: target})
}

func (a *App) Next(ctx context.Context) { a.Page(ctx, a.page.Page+1) }
func (a *App) Prev(ctx context.Context) { a.Page(ctx, a.page.Page-1) }

func (a *App) Size(ctx context.Context, n int) {
	a.eng.Dispatch(ctx, engine.ChangePageSize{Size: n})
}

func (a *App) Add(ctx context.Context) {
	a.eng.Dispatch(ctx, engine.RequestAdd{})
	a.promptDraft(ctx)
}

func (a *App) Edit(ctx context.Context, id int) {
	rec, ok := a.findByID(id)
	if !ok {
		fmt.Fprintf(a.out, "No employee with id %d.\n", id)
		return
	}
	a.eng.Dispatch(ctx, engine.RequestEdit{Record: rec})
	a.promptDraft(ctx)
}

func (a *App) Delete(ctx context.Context, id int) {
	rec, ok := a.findByID(id)
	if !ok {
		fmt.Fprintf(a.out, "No employee with id %d.\n", id)
		return
	}
	a.eng.Dispatch(ctx, engine.RequestDelete{Record: rec})
}

func (a *App) Confirm(ctx context.Context) {
	if a.confirm == nil {
		fmt.Fprintln(a.out, "Nothing to confirm.")
		return
	}
	a.confirm = nil
	a.eng.Dispatch(ctx, engine.Confirm{})
}

func (a *App) Cancel(ctx context.Context) {
	if a.confirm == nil {
		fmt.Fprintln(a.out, "Nothing to cancel.")
		return
	}
	a.confirm = nil
	a.eng.Dispatch(ctx, engine.Cancel{})
	fmt.Fprintln(a.out, "Cancelled.")
}

func (a *App) findByID(id int) (models.Employee, bool) {
	for _, e := range a.eng.Records() {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

func (a *App) readLine() (string, bool) {
	if !a.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.scanner.Text()), true
}
