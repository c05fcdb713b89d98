// Package watch tails store change events.
package watch

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/store"
)

// Watch streams bucket-level change events until the context ends.
type Watch struct {
	Service *app.Service
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not watch, no service")
	}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}

	fmt.Println("watching for changes, ctrl-c to stop")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Type {
			case store.EventNotesChanged:
				fmt.Println("notes changed")
			case store.EventHistoryChanged:
				fmt.Println("history changed")
			case store.EventSettingsChanged:
				fmt.Println("settings changed")
			case store.EventInvalidated:
				fmt.Println("store invalidated")
			}
		}
	}
}
