package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hoppxi/accents/internal/settings"
	"github.com/hoppxi/accents/internal/ui"
)

var Version = "0.1.1"

var (
	cfgFile string
	logger  = ui.Default()
)

var rootCmd = &cobra.Command{
	Use:           "accents",
	Version:       Version,
	Short:         "Generate accent variants of an icon theme",
	Long:          "accents recolors the open folder icons of an icon theme once per palette accent and registers every variant in the extension manifest",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("%v", err)
		cancel()
		os.Exit(1)
	}
}

func loadSettings() (settings.Settings, error) {
	return settings.Config.Load(cfgFile)
}

func init() {
	v := settings.Config.Viper()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: accents.yaml in the base directory)")
	rootCmd.PersistentFlags().String("base-dir", "", "project root (default: current directory)")
	rootCmd.PersistentFlags().String("encoding", "", "text encoding of inputs and outputs (default: utf-8)")
	_ = v.BindPFlag("base_dir", rootCmd.PersistentFlags().Lookup("base-dir"))
	rootCmd.PersistentFlags().Bool("strict", false, "fail when an icon has no fill color to replace")
	_ = v.BindPFlag("encoding", rootCmd.PersistentFlags().Lookup("encoding"))
	_ = v.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(setupCmd)
}
