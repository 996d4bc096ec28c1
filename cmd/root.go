package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/markmals/workbench-docs/config"
	"github.com/markmals/workbench-docs/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// settings are the tool's own options. They never reach the site config.
var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:   "wbdocs",
	Short: "wbdocs - build and preview the Workbench documentation site config",
	Long: `wbdocs validates the Workbench documentation site configuration and
exports it for the site generator: a config module, YAML and msgpack
snapshots, and a sitemap. It can also serve a preview of the navigation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeSettings(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "settings file (default is ./wbdocs.yaml)")
	flags.String("out", "public", "output directory")
	flags.String("content", "docs", "documentation content directory")
	flags.String("origin", "https://markmals.github.io", "site origin used in the sitemap")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.Bool("log-json", false, "write logs as JSON")

	for _, name := range []string{"out", "content", "origin", "log-level", "log-json"} {
		if err := settings.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func initializeSettings(cmd *cobra.Command) error {
	if cfgFile != "" {
		settings.SetConfigFile(cfgFile)
	} else {
		settings.AddConfigPath(".")
		settings.SetConfigName("wbdocs")
		settings.SetConfigType("yaml")
	}

	settings.SetEnvPrefix("WBDOCS")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	readErr := settings.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) || cfgFile != "" {
			return errors.Wrap(readErr, "failed to read settings file")
		}
	}

	if err := logging.Setup(cmd.ErrOrStderr(), settings.GetString("log-level"), settings.GetBool("log-json")); err != nil {
		return err
	}
	return nil
}

// siteConfig builds the canonical site configuration. Validation failures
// abort the command.
func siteConfig() (*config.SiteConfig, error) {
	cfg, err := config.Workbench()
	if err != nil {
		return nil, errors.Wrap(err, "invalid site configuration")
	}
	return cfg, nil
}
