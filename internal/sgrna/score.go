package sgrna

import (
	"fmt"
	"sort"
	"strings"
)

// qualityChar is the uninformative per-base phred symbol used for the
// synthetic reads. bowtie needs a quality string but the reads are exact
// genomic substrings, so the values carry no information.
const qualityChar = "I"

// fastqRead is one synthetic read handed to the aligner. The name is the
// originating target's identity key, so results map back to targets by
// name equality.
type fastqRead struct {
	// name of the read, the target's identity key
	name string

	// seq of the read, the forward-strand genomic substring
	seq string

	// qual is a constant phred string of the same length as seq
	qual string
}

// aligner maps a batch of synthetic reads against the genome and returns
// the names of the reads that aligned exactly once within the tolerance.
// A non-nil error means the external tool failed and the run is over.
type aligner interface {
	align(reads []fastqRead, tolerance int) ([]string, error)
}

// score marks each target with the most permissive tolerance at which it
// aligns uniquely against the genome, mutating targets in place.
//
// tolerances are tried in order, most permissive first. Each round only
// re-submits targets still at tier 0, so a target keeps the first tier it
// earns and tighter tolerances are only tried for targets that failed the
// looser ones. Targets that never align uniquely stay at 0.
//
// On aligner failure the error is returned immediately; tiers already
// written are kept, not rolled back.
func score(targets map[string]Target, al aligner, tolerances []int) error {
	for _, tolerance := range tolerances {
		var reads []fastqRead
		for name, t := range targets {
			if t.Specificity > 0 {
				continue // already tiered in an earlier, more permissive round
			}

			fullSeq := reverseComplement(t.seqWithMotif())
			reads = append(reads, fastqRead{
				name: name,
				seq:  fullSeq,
				qual: strings.Repeat(qualityChar, len(fullSeq)),
			})
		}

		// every target is tiered, skip this and all later rounds
		if len(reads) == 0 {
			return nil
		}

		// map iteration order is random, keep the read batch stable
		sort.Slice(reads, func(i, j int) bool {
			return reads[i].name < reads[j].name
		})

		stderr.Printf("marking specificity tolerance %d for %d targets", tolerance, len(reads))

		aligned, err := al.align(reads, tolerance)
		if err != nil {
			return fmt.Errorf("failed to align targets at tolerance %d: %v", tolerance, err)
		}

		for _, name := range aligned {
			t, ok := targets[name]
			if !ok {
				continue // not a read we submitted
			}

			if t.Specificity < tolerance {
				t.Specificity = tolerance
				targets[name] = t
			}
		}
	}

	return nil
}
