package cmd

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hoppxi/accents/internal/generator"
	"github.com/hoppxi/accents/internal/settings"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write accent themes, recolored icons and manifest entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		_, err = generate(cmd.Context(), cfg, dryRun)
		return err
	},
}

func generate(ctx context.Context, cfg settings.Settings, dryRun bool) (*generator.Report, error) {
	fsys := afero.NewOsFs()
	if dryRun {
		fsys = generator.DryRunFs(fsys)
		logger.Info("dry run, nothing will be written")
	}

	g, err := generator.New(cfg, fsys, logger)
	if err != nil {
		return nil, err
	}

	report, err := g.Run(ctx)
	if err != nil {
		logger.Error("failed to generate accent themes")
		return nil, err
	}

	if misses := report.Misses(); len(misses) > 0 {
		logger.Warn("%d icons had no fill color to replace", len(misses))
	}
	logger.Success("generated %d accent themes", len(report.Accents))
	return report, nil
}

func init() {
	generateCmd.Flags().Bool("dry-run", false, "generate in memory and report, without touching the disk")
}
