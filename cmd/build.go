package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/markmals/workbench-docs/config"
	"github.com/markmals/workbench-docs/content"
	"github.com/markmals/workbench-docs/javascript"
	"github.com/markmals/workbench-docs/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Validate the site config and write it out for the site generator",
	RunE: func(cmd *cobra.Command, args []string) error {
		minify, _ := cmd.Flags().GetBool("minify")
		return runBuild(cmd, settings.GetString("out"), settings.GetString("content"), settings.GetString("origin"), minify)
	},
}

func runBuild(cmd *cobra.Command, outDir, contentDir, origin string, minify bool) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Building site config...")

	cfg, err := siteConfig()
	if err != nil {
		return err
	}

	routes, err := contentRoutes(contentDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return errors.Wrap(err, "error creating output directory")
	}

	if err := config.Save(filepath.Join(outDir, "config.yaml"), cfg); err != nil {
		return errors.Wrap(err, "error writing yaml snapshot")
	}

	snapshot, err := config.EncodeSnapshot(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "config.msgpack"), snapshot, 0644); err != nil {
		return errors.Wrap(err, "error writing snapshot")
	}

	modulePath, err := javascript.EmitConfigModule(cfg, outDir, minify)
	if err != nil {
		return err
	}

	if err := utils.GenerateSitemaps(outDir, origin, cfg, routes, time.Now()); err != nil {
		return errors.Wrap(err, "error generating sitemap")
	}

	log.Logger.Info().Str("out", outDir).Str("module", modulePath).Int("routes", len(routes)).Msg("site config written")
	fmt.Fprintf(cmd.OutOrStdout(), "Site config generated successfully in the %s directory\n", outDir)
	return nil
}

// contentRoutes returns the routes and links of the content pages, or nothing
// when the content directory does not exist.
func contentRoutes(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Logger.Warn().Str("content", dir).Msg("content directory not found, skipping page scan")
		return nil, nil
	}
	pages, err := content.Scan(dir)
	if err != nil {
		return nil, err
	}
	return content.Routes(pages), nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().Bool("minify", false, "minify the generated config module")
}
