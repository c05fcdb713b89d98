// Package rm deletes a stored note.
package rm

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/selah/pkg/app"
)

// Rm removes the note with ID.
type Rm struct {
	ID string

	Service *app.Service
}

func (n *Rm) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if n.ID == "" {
		return errors.New("can not remove, no id")
	}

	if err := n.Service.DeleteNote(n.ID); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
