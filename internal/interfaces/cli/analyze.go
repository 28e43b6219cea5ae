package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slatedeck/GreenLight-Intelligence/internal/application/reporting"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// conceptFlags collects the concept fields exposed as command-line flags.
type conceptFlags struct {
	file           string
	logline        string
	synopsis       string
	genre          string
	format         string
	secondaryGenre string
	tone           string
	audience       string
	budget         string
	setting        string
	protagonist    string
	comparables    []string
}

func (f *conceptFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "file", "", "read the concept from a JSON file instead of flags")
	cmd.Flags().StringVar(&f.logline, "logline", "", "one-sentence premise")
	cmd.Flags().StringVar(&f.synopsis, "synopsis", "", "story synopsis")
	cmd.Flags().StringVar(&f.genre, "genre", "Drama", "primary genre")
	cmd.Flags().StringVar(&f.format, "format", "Feature Film", "production format")
	cmd.Flags().StringVar(&f.secondaryGenre, "secondary-genre", "", "secondary genre")
	cmd.Flags().StringVar(&f.tone, "tone", "", "declared tone")
	cmd.Flags().StringVar(&f.audience, "audience", "", "target audience")
	cmd.Flags().StringVar(&f.budget, "budget", "", "budget tier (Micro/Low/Medium/High/Tentpole)")
	cmd.Flags().StringVar(&f.setting, "setting", "", "setting period")
	cmd.Flags().StringVar(&f.protagonist, "protagonist", "", "protagonist type")
	cmd.Flags().StringSliceVar(&f.comparables, "comp", nil, "comparable title (repeatable, up to 3)")
}

// load builds a Concept from --file or from the individual flags.
func (f *conceptFlags) load() (concept.Concept, error) {
	if f.file != "" {
		raw, err := os.ReadFile(f.file)
		if err != nil {
			return concept.Concept{}, fmt.Errorf("read concept file: %w", err)
		}
		var c concept.Concept
		if err := json.Unmarshal(raw, &c); err != nil {
			return concept.Concept{}, fmt.Errorf("decode concept file: %w", err)
		}
		return c, nil
	}
	return concept.Concept{
		Logline:          f.logline,
		Synopsis:         f.synopsis,
		Genre:            concept.Genre(f.genre),
		Format:           concept.Format(f.format),
		SecondaryGenre:   concept.Genre(f.secondaryGenre),
		Tone:             f.tone,
		TargetAudience:   f.audience,
		BudgetTier:       concept.BudgetTier(f.budget),
		SettingPeriod:    f.setting,
		ProtagonistType:  f.protagonist,
		ComparableTitles: f.comparables,
	}, nil
}

func newAnalyzeCommand(a *app) *cobra.Command {
	var cf conceptFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a concept and print the full assessment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cf.load()
			if err != nil {
				return err
			}
			result, err := a.analyzer.Analyze(cmd.Context(), c, a.options())
			if err != nil {
				return err
			}
			if a.flags.jsonOut {
				return printJSON(result)
			}
			fmt.Print(reporting.Markdown(result))
			return nil
		},
	}
	cf.register(cmd)
	return cmd
}
