// Package cli wires the divinepl commands together.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/divinelang/divinepl/internal/model"
	"github.com/divinelang/divinepl/internal/render"
	"github.com/divinelang/divinepl/internal/sabbath"
)

var (
	cfgFile         string
	devMode         bool
	overrideSabbath bool
	verbose         bool
	noColor         bool
	noDelay         bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "divinepl",
	Short: "DivinePL - The divinely inspired programming language",
	Long: `DivinePL interprets, confesses, and prophesies over scripts written in
the liturgical programming language.

Scripts are classified line by line, checked against the commandments,
and judged. Sins are confessed rather than caught, functions are blessed
rather than declared, and all code rests on the Sabbath.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "help", "completion":
			return nil
		}
		if err := sabbath.Check(time.Now(), overrideSabbath, devMode); err != nil {
			console := render.NewConsole(os.Stderr, render.NewStyles(!noColor), false, false)
			console.Errorf("%v", err)
			console.Notef("The Lord commands rest on the seventh day. Try again tomorrow.")
			return err
		}
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("divinepl v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.divinepl/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "development mode (permits some sins, unlocks sabbath override)")
	rootCmd.PersistentFlags().BoolVar(&overrideSabbath, "override-sabbath", false, "work on the Sabbath (requires --dev)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noDelay, "no-delay", false, "skip divine timing delays")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// buildConfig assembles configuration from defaults, the config file, and
// persistent flags. Flags win.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("output.color") {
		cfg.Output.Color = viper.GetBool("output.color")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if dir := viper.GetString("cache.dir"); dir != "" {
		cfg.Cache.Dir = dir
	}
	if workers := viper.GetInt("concurrency.workers"); workers > 0 {
		cfg.Concurrency.Workers = workers
	}
	if viper.IsSet("pacing.stages_per_second") {
		cfg.Pacing.StagesPerSecond = viper.GetFloat64("pacing.stages_per_second")
	}
	if provider := viper.GetString("llm.provider"); provider != "" {
		cfg.LLM.Provider = provider
	}
	if llmModel := viper.GetString("llm.model"); llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	cfg.Dev = devMode
	cfg.OverrideSabbath = overrideSabbath
	cfg.Output.Verbose = verbose || viper.GetBool("verbose")
	if noColor {
		cfg.Output.Color = false
	}
	if noDelay {
		cfg.Output.NoDelay = true
	}

	return cfg
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".divinepl"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match DIVINEPL_*
	viper.SetEnvPrefix("DIVINEPL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
