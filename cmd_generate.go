package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opencollector/wheelindex/pkg/cliutil"
	"github.com/opencollector/wheelindex/pkg/indexgen"
	"github.com/opencollector/wheelindex/pkg/python"
	"github.com/opencollector/wheelindex/pkg/releases"
)

const defaultWheelDir = "target/wheels"

func init() {
	var (
		releasesFile string
		hashName     = python.HashFlag(indexgen.DefaultHash)
	)
	cmd := &cobra.Command{
		Use:   "generate [flags] [IN_WHEELDIR] >index.html",
		Short: "Render a package index page for a directory of wheel files",
		Long: "Given a directory of prebuilt wheel files (default `" + defaultWheelDir + "`), " +
			"render a PEP 503 index page to stdout, linking each wheel to its release " +
			"asset URL with the content digest embedded in the URL fragment." +
			"\n\n" +
			"Each wheel is matched to a release by scanning the release table in order " +
			"and taking the first entry whose version string occurs in the filename.  " +
			"When version strings overlap (say 0.14.0 and 0.14.0.dev0), put the more " +
			"specific entry first.  A wheel that matches no entry is an error; no page " +
			"is emitted." +
			"\n\n" +
			"The release table is compiled in; use --releases-file to supply another " +
			"one as a YAML file shaped as follows:" +
			"\n\n" +
			"    project: tantivy_oc_fork\n" +
			"    downloadBase: https://github.com/opencollector/tantivy-py\n" +
			"    releases:\n" +
			"      - tag: oc-v0.14.0\n" +
			"        version: 0.14.0\n",
		Args: cliutil.WrapPositionalArgs(cobra.MaximumNArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()

			cfg := releases.Default()
			if releasesFile != "" {
				loaded, err := releases.Load(releasesFile)
				if err != nil {
					return err
				}
				cfg = *loaded
			}

			dir := defaultWheelDir
			if len(args) == 1 {
				dir = args[0]
			}

			gen := indexgen.Generator{
				Config: cfg,
				Hash:   string(hashName),
			}
			return gen.Generate(ctx, dir, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&releasesFile, "releases-file", "",
		"Read `IN_YAML_FILE` for the project name, download base URL, and release table")
	cmd.Flags().Var(&hashName, "hash",
		"Embed `ALGORITHM` digests in the download URLs")

	argparser.AddCommand(cmd)
}
