package cli

import (
	"fmt"

	"github.com/alexanderramin/gedgen/internal/cli/formatter"
	"github.com/alexanderramin/gedgen/internal/domain"
	"github.com/alexanderramin/gedgen/internal/importer"
	"github.com/alexanderramin/gedgen/internal/namebank"
	"github.com/alexanderramin/gedgen/internal/service"
	"github.com/spf13/cobra"
)

func newNamesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Manage the name bank the generator draws from",
	}

	cmd.AddCommand(
		newNamesImportCmd(app),
		newNamesStatsCmd(app),
	)

	return cmd
}

func newNamesImportCmd(app *App) *cobra.Command {
	var file, kind, sex string
	var nameCol, weightCol int
	var titleCase bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a weighted name list from a CSV statistics file",
		RunE: func(cmd *cobra.Command, args []string) error {
			k := namebank.Kind(kind)
			if !namebank.ValidKinds[k] {
				return fmt.Errorf("invalid kind %q (want given or surname)", kind)
			}
			s := domain.Sex(sex)
			if !s.CanPartner() {
				return fmt.Errorf("invalid sex %q (want M or F)", sex)
			}

			columns := importer.ColumnSpec{NameCol: nameCol, WeightCol: weightCol, TitleCase: titleCase}
			if !cmd.Flags().Changed("name-col") && !cmd.Flags().Changed("weight-col") {
				if k == namebank.KindGiven {
					columns = importer.DefaultGivenColumns
				} else {
					columns = importer.DefaultSurnameColumns
				}
				columns.TitleCase = titleCase
			}

			result, err := app.Names.Import(cmd.Context(), service.ImportRequest{
				Path:    file,
				Kind:    k,
				Sex:     s,
				Columns: columns,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d names (total weight %d) into %s/%s\n",
				result.Names, result.TotalWeight, k, s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file to import")
	cmd.Flags().StringVar(&kind, "kind", "", "Pool kind: given or surname")
	cmd.Flags().StringVar(&sex, "sex", "", "Pool sex: M or F")
	cmd.Flags().IntVar(&nameCol, "name-col", 0, "Zero-based column holding the name")
	cmd.Flags().IntVar(&weightCol, "weight-col", 1, "Zero-based column holding the weight")
	cmd.Flags().BoolVar(&titleCase, "title-case", true, "Rewrite upper-case names to title case")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("sex")

	return cmd
}

func newNamesStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show what the name bank currently holds",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Names.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPoolStats(stats))
			return nil
		},
	}
}
