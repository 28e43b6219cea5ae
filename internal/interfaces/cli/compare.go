package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

func loadConceptFile(path string) (concept.Concept, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return concept.Concept{}, fmt.Errorf("read %s: %w", path, err)
	}
	var c concept.Concept
	if err := json.Unmarshal(raw, &c); err != nil {
		return concept.Concept{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return c, nil
}

func newCompareCommand(a *app) *cobra.Command {
	var fileA, fileB string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "A/B compare two concept files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ca, err := loadConceptFile(fileA)
			if err != nil {
				return err
			}
			cb, err := loadConceptFile(fileB)
			if err != nil {
				return err
			}
			cmp, err := a.devsvc.Compare(cmd.Context(), ca, cb, a.options())
			if err != nil {
				return err
			}
			if a.flags.jsonOut {
				return printJSON(cmp)
			}
			fmt.Printf("A: %d  B: %d  (difference %d)\n", cmp.ResultA.FinalScore, cmp.ResultB.FinalScore, cmp.ScoreDifference)
			fmt.Printf("Winner: %s\n\n", cmp.Winner)
			for _, d := range cmp.Dimensions {
				fmt.Printf("%-18s A=%-28s B=%-28s -> %s\n", d.Name, d.ValueA, d.ValueB, d.Winner)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fileA, "a", "", "concept A JSON file")
	cmd.Flags().StringVar(&fileB, "b", "", "concept B JSON file")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}
