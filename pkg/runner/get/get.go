// Package get lists stored notes or shows a single one.
package get

import (
	"context"
	"errors"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/printers"
)

// Get fetches notes.
type Get struct {
	ID string

	Service *app.Service
}

// Do prints one note when ID is set, otherwise the full listing.
func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.New()

	if n.ID != "" {
		e, err := n.Service.Note(ctx, n.ID)
		if err != nil {
			return err
		}
		pp.Note(e)
		return nil
	}

	entries, err := n.Service.Notes(ctx)
	if err != nil {
		return err
	}
	pp.Title("Notes")
	pp.NoteList(entries...)
	return nil
}
