package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hoppxi/accents/config"
	"github.com/hoppxi/accents/internal/settings"
)

var setupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an accents.yaml for this project",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		baseDir, _ := cmd.Flags().GetString("base-dir")
		if baseDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			baseDir = wd
		}
		useDefaults, _ := cmd.Flags().GetBool("yes")
		withPalette, _ := cmd.Flags().GetBool("sample-palette")

		yamlPath := filepath.Join(baseDir, settings.ConfigName+".yaml")
		if _, err := os.Stat(yamlPath); err == nil && !useDefaults {
			if !confirm(reader, out, settings.ConfigName+".yaml already exists. Overwrite?") {
				return nil
			}
		}

		conf := settings.Defaults()
		if !useDefaults {
			conf = promptSettings(reader, out, conf)
		}
		if err := writeSettings(yamlPath, conf); err != nil {
			return err
		}
		logger.Success("wrote %s", yamlPath)

		if withPalette {
			palettePath := filepath.Join(baseDir, conf.Palette)
			if _, err := os.Stat(palettePath); err == nil {
				logger.Warn("%s exists, sample palette not written", conf.Palette)
				return nil
			}
			if err := os.MkdirAll(filepath.Dir(palettePath), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(palettePath, config.SamplePalette(), 0644); err != nil {
				return err
			}
			logger.Success("wrote sample palette %s", conf.Palette)
		}
		return nil
	},
}

func promptSettings(r *bufio.Reader, w io.Writer, conf settings.Settings) settings.Settings {
	conf.ThemesDir = prompt(r, w, "Themes directory", conf.ThemesDir)
	conf.IconsDir = prompt(r, w, "Icons root (icon paths are relative to it)", conf.IconsDir)
	conf.BaseTheme = prompt(r, w, "Base icon theme", conf.BaseTheme)
	conf.Palette = prompt(r, w, "Accent palette", conf.Palette)
	conf.Manifest = prompt(r, w, "Extension manifest", conf.Manifest)
	conf.Encoding = prompt(r, w, "File encoding", conf.Encoding)

	conf.Theme.ID = prompt(r, w, "Theme id", conf.Theme.ID)
	conf.Theme.Label = prompt(r, w, "Theme label", conf.Theme.Label)
	conf.Theme.FilePrefix = prompt(r, w, "Theme file prefix", conf.Theme.FilePrefix)
	return conf
}

func writeSettings(path string, conf settings.Settings) error {
	conf.BaseDir = ""
	d, err := yaml.Marshal(&conf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0644)
}

func prompt(r *bufio.Reader, w io.Writer, label, defaultValue string) string {
	fmt.Fprintf(w, "%s [%s]: ", label, defaultValue)
	input, _ := r.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}

func confirm(r *bufio.Reader, w io.Writer, message string) bool {
	fmt.Fprintf(w, "%s (y/N): ", message)
	input, _ := r.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}

func init() {
	setupCmd.Flags().BoolP("yes", "y", false, "accept all defaults without prompting")
	setupCmd.Flags().Bool("sample-palette", false, "also write the stock Material accent palette")
}
