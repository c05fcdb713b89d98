package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/selah/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse daily readings interactively",
		Example: `
selah ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			return tui.Run(context.Background(), svc)
		},
	}

	topLevel.AddCommand(cmd)
}
