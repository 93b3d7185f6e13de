// Package sgrna finds PAM-adjacent guide targets in a genome, scores them
// for specificity against that same genome and annotates them with the gene
// regions they overlap.
package sgrna

import (
	"bytes"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Target is a candidate guide site found next to a PAM match.
type Target struct {
	// Seq is the guide window, 5'->3' on the strand it was found on
	// (reverse complemented if the match was on the reverse strand)
	Seq string

	// Motif is the PAM bases actually matched, not the pattern
	Motif string

	// Chrom is the name of the source sequence record
	Chrom string

	// Start of the window on the forward strand (0-indexed)
	Start int

	// End of the window on the forward strand (half-open)
	End int

	// Reverse is true if the match was found on the reverse strand
	Reverse bool

	// Specificity is the most permissive tolerance at which the target
	// aligned uniquely against the genome. 0 means unscored or, after
	// scoring, that no unique alignment was found at any tolerance
	Specificity int
}

// key is the target's identity string. It doubles as the read name handed
// to bowtie, so it must be unique, stable and free of whitespace.
func (t *Target) key() string {
	strand := "F"
	if t.Reverse {
		strand = "R"
	}

	return strings.Join([]string{
		t.Seq,
		t.Motif,
		t.Chrom,
		strconv.Itoa(t.Start),
		strconv.Itoa(t.End),
		strand,
	}, "_")
}

// seqWithMotif is the window plus the PAM bases it was found against.
// Its reverse complement is the forward-strand genomic substring.
func (t *Target) seqWithMotif() string {
	return t.Seq + t.Motif
}

// AnnotatedTarget is an independent copy of a Target plus the gene region
// it overlaps. One Target may fan out into several AnnotatedTargets, one
// per overlapping region. The copies share no storage.
type AnnotatedTarget struct {
	Target

	// Gene is the name of the overlapping region
	Gene string

	// Offset is the distance from the region's transcription start,
	// positive downstream
	Offset int

	// SenseStrand is true if the target's matched strand has the same
	// orientation as the gene
	SenseStrand bool

	// annotated is false for targets emitted without any overlapping region
	annotated bool
}

// Region is a named gene/CDS interval with half-open coordinates.
type Region struct {
	// Gene is the region's name (locus tag or gene symbol)
	Gene string

	// Chrom is the name of the sequence record the region is on
	Chrom string

	// Start of the region (0-indexed)
	Start int

	// End of the region (half-open)
	End int

	// Strand is '+' or '-'. Records with an unknown strand are expanded
	// into one region per strand before they get here
	Strand byte
}

// sortTargets orders targets by locus: chromosome, start, end, then
// identity key so ties are broken deterministically.
func sortTargets(ts []Target) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Chrom != ts[j].Chrom {
			return ts[i].Chrom < ts[j].Chrom
		}
		if ts[i].Start != ts[j].Start {
			return ts[i].Start < ts[j].Start
		}
		if ts[i].End != ts[j].End {
			return ts[i].End < ts[j].End
		}
		return ts[i].key() < ts[j].key()
	})
}

// reverseComplement returns the reverse complement of a sequence.
// Bases outside ATGC ('.' in PAM patterns, 'N' in genomes) pass through
// unchanged, so it is also safe on dot-and-base PAM patterns.
func reverseComplement(seq string) string {
	seq = strings.ToUpper(seq)

	revCompMap := map[rune]byte{
		'A': 'T',
		'T': 'A',
		'G': 'C',
		'C': 'G',
	}

	var revCompBuffer bytes.Buffer
	for _, c := range seq {
		if comp, ok := revCompMap[c]; ok {
			revCompBuffer.WriteByte(comp)
		} else {
			revCompBuffer.WriteByte(byte(c))
		}
	}

	revCompBytes := revCompBuffer.Bytes()
	for i := 0; i < len(revCompBytes)/2; i++ {
		j := len(revCompBytes) - i - 1
		revCompBytes[i], revCompBytes[j] = revCompBytes[j], revCompBytes[i]
	}

	return string(revCompBytes)
}
