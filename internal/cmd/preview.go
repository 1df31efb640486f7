package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hoppxi/accents/internal/palette"
	"github.com/hoppxi/accents/internal/preview"
	"github.com/hoppxi/accents/internal/utils"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the accent palette to a PNG swatch sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}

		files, err := utils.NewTextFS(afero.NewOsFs(), cfg.Encoding)
		if err != nil {
			return err
		}
		data, err := files.ReadFile(cfg.Path(cfg.Palette))
		if err != nil {
			return err
		}
		pal, err := palette.Parse(data)
		if err != nil {
			return err
		}
		if pal.Len() == 0 {
			return palette.ErrEmpty
		}

		out, _ := cmd.Flags().GetString("output")
		scale, _ := cmd.Flags().GetInt("scale")

		f, err := os.Create(cfg.Path(out))
		if err != nil {
			return err
		}
		defer f.Close()

		if err := preview.Write(f, pal, scale); err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		logger.Success("wrote %s (%d accents)", out, pal.Len())
		return nil
	},
}

func init() {
	previewCmd.Flags().StringP("output", "o", "accents-preview.png", "output file, relative to the base directory")
	previewCmd.Flags().Int("scale", 2, "pixel scale factor")
}
