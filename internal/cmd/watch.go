package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hoppxi/accents/internal/generator"
	"github.com/hoppxi/accents/internal/settings"
	"github.com/hoppxi/accents/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever the base theme, palette, source icons or config change",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		g, err := generator.New(cfg, afero.NewOsFs(), logger)
		if err != nil {
			return err
		}
		in, err := g.Load()
		if err != nil {
			return err
		}

		// the watched set is fixed at start, restart after moving inputs
		paths := g.Sources(in)
		if f := settings.Config.ConfigFile(); f != "" {
			paths = append(paths, f)
		}
		w, err := watch.New(paths)
		if err != nil {
			return err
		}

		if _, err := generate(ctx, cfg, false); err != nil {
			logger.Error("%v", err)
		}

		delay, _ := cmd.Flags().GetDuration("delay")
		logger.Info("watching %d files, press Ctrl+C to stop", len(paths))

		err = w.Run(ctx, delay, func() {
			cfg, err := loadSettings()
			if err != nil {
				logger.Error("%v", err)
				return
			}
			if _, err := generate(ctx, cfg, false); err != nil {
				logger.Error("%v", err)
			}
		})
		logger.Info("stopped watching")
		return err
	},
}

func init() {
	watchCmd.Flags().Duration("delay", watch.DefaultDelay, "quiet period before regenerating")
}
