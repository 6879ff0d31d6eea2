// Package remote reads and replaces the employee collection against the
// single remote resource that holds it. There is no partial update: every
// write substitutes the whole collection. A failed replace falls back to
// exporting the payload locally so no data is silently lost.
package remote

import (
	"context"
	"errors"

	"github.com/avolkovs/staffdir/internal/models"
)

// Sentinel errors, matched with errors.Is.
var (
	// ErrLoad means the collection could not be retrieved or decoded.
	ErrLoad = errors.New("load collection")
	// ErrReplace means the collection could not be written remotely and the
	// local export fallback failed as well.
	ErrReplace = errors.New("replace collection")
)

// Ack reports the outcome of a replace. Durable is false when the write fell
// back to the local export: the workflow may continue, but the data only
// lives in the file at ExportPath, not on the server.
type Ack struct {
	Durable    bool
	ExportPath string
}

// Client is the persistence boundary of the record lifecycle engine.
type Client interface {
	LoadAll(ctx context.Context) ([]models.Employee, error)
	ReplaceAll(ctx context.Context, list []models.Employee) (Ack, error)
}
