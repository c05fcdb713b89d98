package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/selah/pkg/commands/options"
	"tableflip.dev/selah/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	achievements := false

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show reading statistics and achievements",
		Example: `
selah stats
selah stats --achievements
selah stats --window=2w
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := stats.Stats{
				Window:           wo.Window,
				ShowAchievements: achievements,
				Service:          svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&achievements, "achievements", "a", false,
		"Include the achievement table.")
	options.AddWindowArgs(cmd, wo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
