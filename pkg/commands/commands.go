// Package commands wires the CLI surface onto the runner layer.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/bible"
	"tableflip.dev/selah/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "selah",
		Short: base.Wrap80("Bible reading and journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addNote(topLevel)
	addDaily(topLevel)
	addRead(topLevel)
	addStreak(topLevel)
	addStats(topLevel)
	addCalendar(topLevel)
	addPattern(topLevel)
	addWatch(topLevel)
	addUI(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}

// loadService builds the app service from config. The corpus is
// optional for note-only commands but required for reading commands,
// so a load failure surfaces there, not here.
func loadService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	svc := &app.Service{Persistence: p}

	root, err := store.CorpusPath()
	if err != nil {
		return nil, err
	}
	if corpus, err := bible.Open(root); err == nil {
		svc.Corpus = corpus
	}
	return svc, nil
}
