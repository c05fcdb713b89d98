// Package add creates a new journal note.
package add

import (
	"context"
	"errors"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/note"
	"tableflip.dev/selah/pkg/printers"
)

// Add creates a note from command-line input.
type Add struct {
	Title    string
	Message  string
	Category string

	Service *app.Service
}

// Do stores the note and prints the resulting listing.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	e, err := n.Service.AddNote(n.Title, n.Message, note.ParseCategory(n.Category))
	if err != nil {
		return err
	}

	pp := printers.New()
	pp.Note(e)
	return nil
}
