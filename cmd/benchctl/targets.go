package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"benchctl/internal/harness"

	"github.com/spf13/cobra"
)

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List benchmark targets and export formats",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)

			fmt.Fprintln(w, "TARGET\tFILTER")
			for _, t := range harness.Targets() {
				glob := t.FilterGlob()
				if glob == "" {
					glob = "(everything)"
				}
				if t == harness.TargetQuick {
					glob += " + --job short"
				}
				fmt.Fprintf(w, "%s\t%s\n", t, glob)
			}

			fmt.Fprintln(w, "\nEXPORT\tEXPORTERS")
			for _, f := range harness.ExportFormats() {
				exporters := strings.Join(f.Exporters(), ",")
				if exporters == "" {
					exporters = "(none)"
				}
				fmt.Fprintf(w, "%s\t%s\n", f, exporters)
			}

			w.Flush()
		},
	}
}

var targetsCmd = newTargetsCmd()

func init() {
	rootCmd.AddCommand(targetsCmd)
}
