package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slatedeck/GreenLight-Intelligence/internal/application/development"
)

func newWhatIfCommand(a *app) *cobra.Command {
	var cf conceptFlags
	var field string
	cmd := &cobra.Command{
		Use:   "whatif",
		Short: "Re-score the concept across alternatives of one field",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cf.load()
			if err != nil {
				return err
			}
			scenarios, err := a.devsvc.WhatIf(cmd.Context(), c, development.ScenarioField(field), a.options())
			if err != nil {
				return err
			}
			if a.flags.jsonOut {
				return printJSON(scenarios)
			}
			for _, s := range scenarios {
				fmt.Printf("%s: %q -> %q  %d -> %d (%+d)\n",
					s.Field, s.OriginalValue, s.AlternateValue, s.OriginalScore, s.AlternateScore, s.ScoreDelta)
				fmt.Printf("  %s\n", s.Recommendation)
			}
			return nil
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVar(&field, "field", "genre", "field to vary: genre, format, budget, audience")
	return cmd
}

func newRewriteCommand(a *app) *cobra.Command {
	var cf conceptFlags
	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Suggest a stronger logline for weak dimensions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cf.load()
			if err != nil {
				return err
			}
			suggestion, err := a.devsvc.Rewrite(cmd.Context(), c, a.options())
			if err != nil {
				return err
			}
			if a.flags.jsonOut {
				return printJSON(suggestion)
			}
			fmt.Printf("Original:  %s\n", suggestion.Original)
			fmt.Printf("Rewritten: %s\n", suggestion.Rewritten)
			if len(suggestion.AddressedDimensions) > 0 {
				fmt.Printf("Addressed: %v\n", suggestion.AddressedDimensions)
			}
			fmt.Println(suggestion.Note)
			return nil
		},
	}
	cf.register(cmd)
	return cmd
}
