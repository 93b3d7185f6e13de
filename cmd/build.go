package cmd

import (
	"github.com/ryandward/sgrna-design/internal/sgrna"
	"github.com/spf13/cobra"
)

// buildCmd is for running the full pipeline: extract targets from the
// genome, score them with bowtie and annotate them against gene regions.
var buildCmd = &cobra.Command{
	Use:                        "build",
	Run:                        sgrna.BuildCmd,
	Short:                      "Build an annotated sgRNA target library from a genome",
	SuggestionsMinimumDistance: 2,
	Long: `
Extract every PAM-adjacent target from the genome on both strands, mark
each with the most permissive bowtie tolerance at which it aligns to the
genome exactly once, and annotate each with the gene regions it overlaps.
The result is one TSV row per (target, overlapping region) pair, plus one
row per target no region claimed.`,
}

// set flags
func init() {
	buildCmd.Flags().StringP("genome", "g", "", "input genome <FASTA> (comma separate multiple files)")
	buildCmd.Flags().StringP("regions", "r", "", "gene region file <TSV>: name, chrom, start, end, strand")
	buildCmd.Flags().StringP("out", "o", "", "output file name <TSV>")
	buildCmd.Flags().String("sam-copy", "", "copy the final bowtie SAM output to this path")
	buildCmd.Flags().BoolP("full-overlap", "f", false, "only annotate targets fully contained in a region")

	RootCmd.AddCommand(buildCmd)
}
