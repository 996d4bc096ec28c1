package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/markmals/workbench-docs/config"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <snapshot.yaml>",
	Short: "Show how the site config differs from a saved YAML snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := siteConfig()
		if err != nil {
			return err
		}
		current, err := config.EncodeYAML(cfg)
		if err != nil {
			return err
		}
		saved, err := os.ReadFile(args[0])
		if err != nil {
			return errors.WithStack(err)
		}

		patch, changed := lineDiff(string(saved), string(current))
		if !changed {
			fmt.Fprintln(cmd.OutOrStdout(), "no changes")
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), patch)
		return errors.Errorf("site config differs from %s", args[0])
	},
}

// lineDiff compares two documents line by line and renders the changes with
// "+" and "-" prefixes.
func lineDiff(before, after string) (string, bool) {
	if before == after {
		return "", false
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String(), true
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
