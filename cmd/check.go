package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the site config and audit it against the content pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := siteConfig()
		if err != nil {
			return err
		}
		routes, err := contentRoutes(settings.GetString("content"))
		if err != nil {
			return err
		}

		findings := cfg.Audit(routes)
		for _, f := range findings {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		strict, _ := cmd.Flags().GetBool("strict")
		if strict && len(findings) > 0 {
			return errors.Errorf("%d configuration warnings", len(findings))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "site config ok (%d warnings)\n", len(findings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("strict", false, "treat warnings as errors")
}
