package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/internal/cli"
	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/pkg/report"
	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/pkg/stats"
)

func main() {
	var (
		flags cli.Flags
		dump  bool
	)

	root := &cobra.Command{
		Use:           "show",
		Short:         "Print the population ranking of a World Bank indicator table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Config()
			if err != nil {
				return err
			}

			res, err := report.Summarize(cmd.Context(), cfg, flags.Logger(os.Stderr))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			stats.Summarize(res.Selection.Year, res.Countries, cfg.TopN).Print(out)
			if dump {
				stats.Dump(out, res.Top)
			}
			return nil
		},
	}
	flags.Register(root)
	root.Flags().BoolVar(&dump, "dump", false, "dump the ranked records for debugging")

	cli.Main(root)
}
