package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hoppxi/accents/internal/generator"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the base theme, palette, manifest and source icons",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}

		g, err := generator.New(cfg, afero.NewReadOnlyFs(afero.NewOsFs()), logger)
		if err != nil {
			return err
		}

		in, err := g.Check()
		if err != nil {
			logger.Error("check failed")
			return err
		}

		for _, a := range in.Palette.Accents {
			e := g.Entry(a.Name)
			logger.Step(a.Hex(), e.ID)
		}
		logger.Success("%d accents ready", in.Palette.Len())
		return nil
	},
}
