package sgrna

import (
	"fmt"
	"regexp"
	"strings"
)

// extract scans every sequence record on both strands for PAM-adjacent
// guide windows and returns them deduplicated by their identity key.
//
// pam is a regexp over DNA bases (eg ".GG" for SpCas9). windowLen is the
// number of bases pulled from the region next to the PAM. Windows touching
// an 'N' base are discarded.
func extract(records []SeqRecord, pam string, windowLen int) (map[string]Target, error) {
	pam = strings.ToUpper(pam)

	fwd, err := regexp.Compile(fmt.Sprintf("(.{%d})%s", windowLen, pam))
	if err != nil {
		return nil, fmt.Errorf("failed to compile PAM pattern %s: %v", pam, err)
	}

	// the reverse strand pattern is the reverse complement of the PAM
	// followed by the window, read on the forward strand
	rev, err := regexp.Compile(fmt.Sprintf("%s(.{%d})", reverseComplement(pam), windowLen))
	if err != nil {
		return nil, fmt.Errorf("failed to compile reverse PAM pattern %s: %v", pam, err)
	}

	targets := make(map[string]Target)
	for _, record := range records {
		genome := strings.ToUpper(record.Seq)

		// the window is the capture group, the PAM is the rest of the match
		for _, hit := range findOverlapping(fwd, genome) {
			if strings.ContainsRune(genome[hit[0]:hit[1]], 'N') {
				continue // don't target unknown genetic material
			}

			t := Target{
				Seq:     genome[hit[2]:hit[3]],
				Motif:   genome[hit[3]:hit[1]],
				Chrom:   record.Chrom,
				Start:   hit[2],
				End:     hit[3],
				Reverse: false,
			}
			targets[t.key()] = t
		}

		for _, hit := range findOverlapping(rev, genome) {
			if strings.ContainsRune(genome[hit[0]:hit[1]], 'N') {
				continue
			}

			t := Target{
				Seq:     reverseComplement(genome[hit[2]:hit[3]]),
				Motif:   reverseComplement(genome[hit[0]:hit[2]]),
				Chrom:   record.Chrom,
				Start:   hit[2],
				End:     hit[3],
				Reverse: true,
			}
			targets[t.key()] = t
		}
	}

	return targets, nil
}

// findOverlapping returns the submatch index pairs of every match of re
// in seq, including overlapping ones.
//
// RE2 has no lookahead, so overlapping matches are found by re-running the
// leftmost-match search anchored one base past the previous hit's start.
// That enumerates every starting offset that matches, which is what a
// zero-width lookahead would have produced.
func findOverlapping(re *regexp.Regexp, seq string) (hits [][]int) {
	pos := 0
	for pos < len(seq) {
		loc := re.FindStringSubmatchIndex(seq[pos:])
		if loc == nil {
			break
		}

		abs := make([]int, len(loc))
		for i, index := range loc {
			abs[i] = index + pos
		}
		hits = append(hits, abs)

		pos += loc[0] + 1
	}

	return hits
}
