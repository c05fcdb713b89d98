// Package search finds notes by keyword.
package search

import (
	"context"
	"errors"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/printers"
)

// Search queries notes by title and content keywords.
type Search struct {
	Query string

	Service *app.Service
}

// Do prints matching notes.
func (n *Search) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not search, no service")
	}

	entries, err := n.Service.Search(ctx, n.Query)
	if err != nil {
		return err
	}

	pp := printers.New()
	pp.Title("Search: " + n.Query)
	pp.NoteList(entries...)
	return nil
}
