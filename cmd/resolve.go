package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <page path>...",
	Short: "Print the sidebar prefix selected for each page path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := siteConfig()
		if err != nil {
			return err
		}
		for _, page := range args {
			prefix, sections, ok := cfg.SidebarFor(page)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t-\n", page)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d sections\t%s\n", page, prefix, len(sections), cfg.Resolve(page))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
