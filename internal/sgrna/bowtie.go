package sgrna

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/ryandward/sgrna-design/config"
)

// bowtieAligner delegates read batches to the bowtie binary against an
// index built over the genome FASTA file. It satisfies the aligner
// interface used by score.
type bowtieAligner struct {
	// index is the basename of the bowtie index, the genome FASTA path
	index string

	// dir is a temporary directory for all bowtie input/output
	dir string

	// samCopy is an optional path the last round's SAM output is copied to
	samCopy string

	// conf carries the bowtie seed settings
	conf *config.Config
}

// bowtieExec is a small utility object for executing bowtie once.
type bowtieExec struct {
	// the basename of the bowtie index
	index string

	// the reads to align
	reads []fastqRead

	// the input FASTQ file
	in *os.File

	// the output SAM file
	out *os.File

	// tolerance is the maximum dissimilarity sum for a reported alignment
	tolerance int

	// conf carries the bowtie seed settings
	conf *config.Config
}

// newBowtieAligner makes an aligner over the genome at fastaPath, building
// the bowtie index first if one isn't already next to the FASTA file.
func newBowtieAligner(fastaPath, samCopy string, conf *config.Config) (*bowtieAligner, error) {
	// the index is keyed by the genome file. skip the rebuild if present
	if _, err := os.Stat(fastaPath + ".1.ebwt"); os.IsNotExist(err) {
		buildCmd := exec.Command("bowtie-build", fastaPath, fastaPath)
		if output, err := buildCmd.CombinedOutput(); err != nil {
			return nil, fmt.Errorf("failed to build bowtie index for %s: %v: %s", fastaPath, err, string(output))
		}
	}

	dir, err := os.MkdirTemp("", "bowtie")
	if err != nil {
		return nil, fmt.Errorf("failed to create a directory for bowtie files: %v", err)
	}

	return &bowtieAligner{
		index:   fastaPath,
		dir:     dir,
		samCopy: samCopy,
		conf:    conf,
	}, nil
}

// align writes the reads to a FASTQ file, runs bowtie against the index
// and returns the names of the reads with exactly one alignment within
// the tolerance.
func (a *bowtieAligner) align(reads []fastqRead, tolerance int) (aligned []string, err error) {
	in, err := os.CreateTemp(a.dir, "reads.in-*.fq")
	if err != nil {
		return nil, err
	}
	defer os.Remove(in.Name())

	out, err := os.CreateTemp(a.dir, "reads.out-*.sam")
	if err != nil {
		return nil, err
	}
	defer os.Remove(out.Name())

	b := &bowtieExec{
		index:     a.index,
		reads:     reads,
		in:        in,
		out:       out,
		tolerance: tolerance,
		conf:      a.conf,
	}

	// create the input file
	if err := b.input(); err != nil {
		return nil, fmt.Errorf("failed to write a FASTQ input file at %s: %v", b.in.Name(), err)
	}

	// execute bowtie
	if err := b.run(); err != nil {
		return nil, fmt.Errorf("failed executing bowtie: %v", err)
	}

	// keep a copy of the SAM output if one was asked for. later rounds
	// overwrite earlier ones, so the copy is the final round's output
	if a.samCopy != "" {
		if err := copyFile(b.out.Name(), a.samCopy); err != nil {
			return nil, err
		}
	}

	return b.parse()
}

// input creates an input query file (FASTQ) for bowtie.
func (b *bowtieExec) input() error {
	var fastq strings.Builder
	for _, read := range b.reads {
		fmt.Fprintf(&fastq, "@%s\n%s\n+\n%s\n", read.name, read.seq, read.qual)
	}

	_, err := b.in.WriteString(fastq.String())

	return err
}

// run calls the external bowtie binary on the input file.
func (b *bowtieExec) run() (err error) {
	threads := b.conf.Bowtie.Threads
	if threads < 1 {
		threads = runtime.NumCPU() - 1
	}
	if threads < 1 {
		threads = 1
	}

	flags := []string{
		"-S",           // output SAM
		"--nomaqround", // don't do rounding
		"-q",           // input is FASTQ
		"-a",           // report each non-specific hit
		"--best",       // judge the *closest* non-specific match
		"--tryhard",    // judge the *closest* non-specific match
		"--chunkmbs", strconv.Itoa(b.conf.Bowtie.ChunkMBs), // memory setting for --best
		"-p", strconv.Itoa(threads),
		"-n", strconv.Itoa(b.conf.Bowtie.SeedMismatches), // allowable mismatches in seed
		"-l", strconv.Itoa(b.conf.Bowtie.SeedLength), // size of seed
		"-e", strconv.Itoa(b.tolerance), // dissimilarity sum before not a non-specific hit
		"-m", "1", // discard reads with >1 alignment
		b.index,
		b.in.Name(),
		b.out.Name(),
	}

	bowtieCmd := exec.Command("bowtie", flags...)

	// execute bowtie and wait on it to finish
	if output, err := bowtieCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to execute bowtie against %s: %v: %s", b.index, err, string(output))
	}

	return
}

// parse reads the SAM output of bowtie into the names of aligned reads.
func (b *bowtieExec) parse() (aligned []string, err error) {
	file, err := os.ReadFile(b.out.Name())
	if err != nil {
		return nil, err
	}

	return parseSAM(string(file)), nil
}

// parseSAM pulls the read names of aligned records out of SAM contents.
// Only the name and the flag column matter: flag bit 4 marks an unaligned
// read, everything surviving bowtie's -m 1 filter aligned exactly once.
func parseSAM(contents string) (aligned []string) {
	for _, line := range strings.Split(contents, "\n") {
		// header lines start with an @
		if strings.HasPrefix(line, "@") || strings.TrimSpace(line) == "" {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			continue
		}

		flag, err := strconv.Atoi(cols[1])
		if err != nil {
			continue
		}

		// flag 4 means unaligned, so skip those
		if flag&4 == 0 {
			aligned = append(aligned, cols[0])
		}
	}

	return aligned
}

// copyFile duplicates the file at src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)

	return err
}
