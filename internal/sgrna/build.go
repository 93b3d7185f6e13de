package sgrna

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/ryandward/sgrna-design/config"
	"github.com/spf13/cobra"
)

// BuildCmd takes a cobra command (with its flags) and runs Build.
func BuildCmd(cmd *cobra.Command, args []string) {
	Build(parseBuildFlags(cmd))
}

// Build runs the whole library build: extract PAM-adjacent targets from
// the genome, score their specificity with bowtie, annotate them against
// the gene regions and write the TSV report.
func Build(flags *Flags, conf *config.Config) []AnnotatedTarget {
	start := time.Now()

	records, err := readGenome(flags.genomes)
	if err != nil {
		stderr.Fatalln(err)
	}

	targets, err := extract(records, conf.PAM, conf.TargetLength)
	if err != nil {
		stderr.Fatalln(err)
	}
	stderr.Printf("%d raw targets", len(targets))

	fastaPath, err := mergeGenomes(flags.genomes, records)
	if err != nil {
		stderr.Fatalln(err)
	}

	al, err := newBowtieAligner(fastaPath, flags.samCopy, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	if err := score(targets, al, conf.Tolerances); err != nil {
		stderr.Fatalln(err)
	}

	regions, err := readRegions(flags.regions)
	if err != nil {
		stderr.Fatalln(err)
	}

	annotated, err := annotate(targets, regions, chromLengths(records), flags.partialOverlap)
	if err != nil {
		stderr.Fatalln(err)
	}

	if err := writeTSV(flags.out, annotated); err != nil {
		stderr.Fatalln(err)
	}

	elapsed := time.Since(start)
	stderr.Printf("wrote %d annotated targets to %s (%.1f seconds)", len(annotated), flags.out, elapsed.Seconds())

	return annotated
}

// TargetsCmd extracts targets from the genome and logs them, without
// scoring or annotation. for inspecting what a PAM/window combination
// yields before committing to a full build.
func TargetsCmd(cmd *cobra.Command, args []string) {
	c := config.New()
	p := inputParser{}

	genomes, err := cmd.Flags().GetString("genome")
	if genomes == "" || err != nil {
		cmd.Help()
		stderr.Fatal("\nno genome FASTA passed")
	}

	records, err := readGenome(p.parseGenomes(genomes))
	if err != nil {
		stderr.Fatalln(err)
	}

	targets, err := extract(records, c.PAM, c.TargetLength)
	if err != nil {
		stderr.Fatalln(err)
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "chrom\tstart\tend\tsequence\tmotif\tstrand\t\n")
	for _, t := range sortedTargets(targets) {
		strand := "+"
		if t.Reverse {
			strand = "-"
		}
		fmt.Fprintf(writer, "%s\t%d\t%d\t%s\t%s\t%s\n", t.Chrom, t.Start, t.End, t.Seq, t.Motif, strand)
	}
	writer.Flush()

	stderr.Printf("%d targets", len(targets))
}

// sortedTargets flattens a target map to a slice ordered by locus.
func sortedTargets(targets map[string]Target) []Target {
	ts := make([]Target, 0, len(targets))
	for _, t := range targets {
		ts = append(ts, t)
	}

	sortTargets(ts)

	return ts
}
