package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/internal/cli"
	"github.com/Alex-Mth/Data-Visualization-on-World-Bank-Population-Dataset/pkg/report"
)

func main() {
	var flags cli.Flags

	root := &cobra.Command{
		Use:           "plot",
		Short:         "Render population charts from a World Bank indicator table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Config()
			if err != nil {
				return err
			}
			logger := flags.Logger(os.Stderr)
			logger.Debug("configuration",
				"input", cfg.CSVPath,
				"year", cfg.YearString(),
				"top_n", cfg.TopN,
				"skip_rows", cfg.SkipRows)

			_, err = report.Run(cmd.Context(), cfg, logger)
			return err
		},
	}
	flags.Register(root)

	cli.Main(root)
}
