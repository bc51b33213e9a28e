package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencollector/wheelindex/pkg/releases"
)

func init() {
	var releasesFile string
	cmd := &cobra.Command{
		Use:   "match [flags] FILENAME...",
		Short: "Show which release each wheel filename maps to",
		Long: "For each given wheel filename, print the release tag it maps to under the " +
			"same first-match rule that `wheelindex generate` uses.  Useful for checking " +
			"a release table against a set of filenames before publishing an index.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(flags *cobra.Command, args []string) error {
			tbl := releases.Default().Releases
			if releasesFile != "" {
				cfg, err := releases.Load(releasesFile)
				if err != nil {
					return err
				}
				tbl = cfg.Releases
			}
			for _, filename := range args {
				entry, err := tbl.Match(filename)
				if err != nil {
					return err
				}
				fmt.Fprintf(flags.OutOrStdout(), "%s\t%s\n", filename, entry.Tag)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&releasesFile, "releases-file", "",
		"Read `IN_YAML_FILE` for the release table")

	argparser.AddCommand(cmd)
}
