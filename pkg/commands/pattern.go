package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/selah/pkg/commands/options"
	"tableflip.dev/selah/pkg/runner/pattern"
)

func addPattern(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Manage the custom reading pattern",
		Example: `
selah pattern show
selah pattern set --book=Псалтирь
selah pattern clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPatternSet(cmd)
	addPatternClear(cmd)
	addPatternShow(cmd)

	topLevel.AddCommand(cmd)
}

func addPatternSet(topLevel *cobra.Command) {
	po := &options.PatternOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the custom pattern",
		Example: `
selah pattern set --book=Псалтирь --chapter=23
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if po.Book == "" {
				return errors.New("requires --book")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := pattern.Pattern{
				Book:    po.Book,
				Chapter: po.Chapter,
				Verse:   po.Verse,
				Label:   po.Label,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddPatternArgs(cmd, po)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addPatternClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the custom pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := pattern.Pattern{
				Clear:   true,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addPatternShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := pattern.Pattern{
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
