package sgrna

import (
	"path/filepath"
	"strings"

	"github.com/ryandward/sgrna-design/config"
	"github.com/spf13/cobra"
)

// Flags contains parsed cobra flags like "genomes", "regions", "out" that
// are used by multiple commands.
type Flags struct {
	// the paths to the genome FASTA file(s)
	genomes []string

	// the path to the tab-separated gene region file
	regions string

	// the name of the file to write the output to
	out string

	// an optional path to copy the final bowtie SAM output to
	samCopy string

	// whether targets only partially overlapping a region are annotated
	partialOverlap bool
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(genomes []string, regions, out, samCopy string, partialOverlap bool) (*Flags, *config.Config) {
	c := config.New()

	p := inputParser{}
	if out == "" && len(genomes) > 0 {
		out = p.guessOutput(genomes[0])
	}

	return &Flags{
		genomes:        genomes,
		regions:        regions,
		out:            out,
		samCopy:        samCopy,
		partialOverlap: partialOverlap,
	}, c
}

// parseBuildFlags gathers the genome paths, region path, etc from a cobra
// cmd object. returns Flags and a Config struct for sgrna.Build.
func parseBuildFlags(cmd *cobra.Command) (*Flags, *config.Config) {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}
	c := config.New()

	genomes, err := cmd.Flags().GetString("genome")
	if genomes == "" || err != nil {
		cmd.Help()
		stderr.Fatal("\nno genome FASTA passed")
	}
	fs.genomes = p.parseGenomes(genomes)

	if fs.regions, err = cmd.Flags().GetString("regions"); fs.regions == "" || err != nil {
		cmd.Help()
		stderr.Fatal("\nno region file passed")
	}

	if fs.out, err = cmd.Flags().GetString("out"); fs.out == "" || err != nil {
		fs.out = p.guessOutput(fs.genomes[0]) // guess at an output name
	}

	if fs.samCopy, err = cmd.Flags().GetString("sam-copy"); err != nil {
		cmd.Help()
		stderr.Fatalf("failed to parse sam-copy flag: %v", err)
	}

	fullOverlap, err := cmd.Flags().GetBool("full-overlap")
	if err != nil {
		cmd.Help()
		stderr.Fatalf("failed to parse full-overlap flag: %v", err)
	}
	fs.partialOverlap = !fullOverlap

	return fs, c
}

// parseGenomes turns a comma- or space-separated list of genome paths
// into a list of paths.
func (p *inputParser) parseGenomes(genomeFlag string) []string {
	splitFunc := func(c rune) bool {
		return c == ' ' || c == ',' // space or comma separated
	}

	return strings.FieldsFunc(genomeFlag, splitFunc)
}

// guessOutput names the output file after the first genome file.
func (p *inputParser) guessOutput(genome string) string {
	ext := filepath.Ext(genome)

	return strings.TrimSuffix(genome, ext) + ".targets.all.tsv"
}
