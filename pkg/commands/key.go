package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/selah/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the symbol legend",
		Example: `
selah key
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := key.Key{}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
