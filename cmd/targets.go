package cmd

import (
	"github.com/ryandward/sgrna-design/internal/sgrna"
	"github.com/spf13/cobra"
)

// targetsCmd is for listing the PAM-adjacent targets in a genome without
// scoring or annotating them.
var targetsCmd = &cobra.Command{
	Use:                        "targets",
	Run:                        sgrna.TargetsCmd,
	Short:                      "List the PAM-adjacent targets in a genome",
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	targetsCmd.Flags().StringP("genome", "g", "", "input genome <FASTA> (comma separate multiple files)")

	RootCmd.AddCommand(targetsCmd)
}
