package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slatedeck/GreenLight-Intelligence/internal/application/reporting"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

func newHistoryCommand(a *app) *cobra.Command {
	var project string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show a project's saved version history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, err := a.devsvc.History(cmd.Context(), common.ProjectID(project))
			if err != nil {
				return err
			}
			if a.flags.jsonOut {
				return printJSON(history)
			}
			fmt.Print(reporting.HistoryMarkdown(history))
			return nil
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "project id")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newSaveCommand(a *app) *cobra.Command {
	var cf conceptFlags
	var project, message string
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Score a concept and append it to a project's version history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cf.load()
			if err != nil {
				return err
			}
			outcome, err := a.devsvc.SaveVersion(cmd.Context(), common.ProjectID(project), c, message, a.options())
			if err != nil {
				return err
			}
			if a.flags.jsonOut {
				return printJSON(outcome)
			}
			delta := ""
			if outcome.Version.ScoreDelta != nil {
				delta = fmt.Sprintf(" (%+d)", *outcome.Version.ScoreDelta)
			}
			fmt.Printf("Saved version %d of %s: score %d%s, %s\n",
				outcome.Version.VersionNumber, project, outcome.Version.Score, delta, outcome.Version.Verdict)
			if !outcome.Persisted {
				fmt.Println("warning: version store unavailable, this version was not persisted")
			}
			return nil
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVar(&project, "project", "", "project id")
	cmd.Flags().StringVarP(&message, "message", "m", "", "change description")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
