package main

import (
	"github.com/spf13/cobra"

	"github.com/opencollector/wheelindex/pkg/indexgen"
	"github.com/opencollector/wheelindex/pkg/releases"
)

func init() {
	cmd := &cobra.Command{
		Use:   "verify [flags] IN_INDEX.html IN_WHEELDIR",
		Short: "Check an index page's digests against local wheel files",
		Long: "Parse an existing index page and, for every anchor on it, re-hash the named " +
			"file in IN_WHEELDIR and compare it against the digest embedded in the URL " +
			"fragment.  All mismatches are reported, not just the first.",
		Args: cobra.ExactArgs(2),
		RunE: func(flags *cobra.Command, args []string) error {
			gen := indexgen.Generator{
				Config: releases.Default(),
			}
			return gen.Verify(flags.Context(), args[0], args[1])
		},
	}

	argparser.AddCommand(cmd)
}
