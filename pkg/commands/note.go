package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/selah/pkg/commands/options"
	"tableflip.dev/selah/pkg/runner/add"
	"tableflip.dev/selah/pkg/runner/get"
	"tableflip.dev/selah/pkg/runner/rm"
	"tableflip.dev/selah/pkg/runner/search"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Manage journal notes",
		Example: `
selah note add "Morning" this is a note
selah note get
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNoteAdd(cmd)
	addNoteGet(cmd)
	addNoteRm(cmd)
	addNoteSearch(cmd)

	topLevel.AddCommand(cmd)
}

func addNoteAdd(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	var title, message string

	cmd := &cobra.Command{
		Use:   "add [title] [body...]",
		Short: "Add a note",
		Example: `
selah note add "Morning" woke up grateful
selah note add "Dream" --category dream saw the sea
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = args[0]
			message = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Add{
				Title:    title,
				Message:  message,
				Category: co.Category,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addNoteGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "List notes or show one",
		Example: `
selah note get
selah note get 1a2b3c4d5
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				io.ID = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := get.Get{
				ID:      io.ID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addNoteRm(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a note",
		Example: `
selah note rm 1a2b3c4d5
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 && io.ID == "" {
				return errors.New("requires an id")
			}
			if len(args) > 0 {
				io.ID = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := rm.Rm{
				ID:      io.ID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addNoteSearch(topLevel *cobra.Command) {
	var query string

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search notes by keyword",
		Example: `
selah note search молитва
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a query")
			}
			query = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := search.Search{
				Query:   query,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
