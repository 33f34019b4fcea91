package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gedgen/internal/cli/formatter"
	"github.com/alexanderramin/gedgen/internal/gen"
	"github.com/alexanderramin/gedgen/internal/service"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	cfg := gen.DefaultConfig()
	var out string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random family tree as GEDCOM",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without an explicit seed the run draws one; the summary
			// prints it so the tree stays reproducible after the fact.
			if !cmd.Flags().Changed("seed") {
				cfg.Seed = time.Now().UnixNano()
			}

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				if err := runGenerateWizard(&cfg, &out); err != nil {
					return err
				}
			}

			req := service.GenerateRequest{Config: cfg}
			if out == "" || out == "-" {
				req.Out = cmd.OutOrStdout()
			} else {
				req.OutPath = out
			}

			result, err := app.Generate.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			// When the tree itself goes to stdout, the summary moves to
			// stderr so the GEDCOM stream stays clean.
			summaryOut := cmd.OutOrStdout()
			if req.OutPath == "" {
				summaryOut = cmd.ErrOrStderr()
			}
			fmt.Fprint(summaryOut, formatter.FormatGenerateSummary(result))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.IndividualCount, "count", cfg.IndividualCount, "Target number of individuals")
	flags.IntVar(&cfg.FounderCount, "founders", cfg.FounderCount, "Number of root individuals without parents")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; the same seed reproduces the same tree")
	flags.Float64Var(&cfg.MarriageProbability, "marriage-prob", cfg.MarriageProbability, "Probability an adult forms a union")
	flags.Float64Var(&cfg.DeathProbability, "death-prob", cfg.DeathProbability, "Probability an individual has a death date")
	flags.IntVar(&cfg.ExpectedChildren, "expected-children", cfg.ExpectedChildren, "Expected number of children per union")
	flags.IntVar(&cfg.SecondNameChance, "second-name-chance", cfg.SecondNameChance, "Percent chance of a second given name")
	flags.IntVar(&cfg.Generations, "generations", cfg.Generations, "Maximum tree depth (0 derives it from --count)")
	flags.Var(newDateValue(cfg.FounderBirthStart, &cfg.FounderBirthStart), "start", "Earliest founder birth date (YYYY-MM-DD)")
	flags.Var(newDateValue(cfg.Reference, &cfg.Reference), "reference", "Present date; no generated date exceeds it (YYYY-MM-DD)")
	flags.StringVarP(&out, "out", "o", "", "Output file ('-' or empty for stdout)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Fill the configuration through a form")

	return cmd
}
