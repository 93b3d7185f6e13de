package sgrna

import (
	"fmt"
)

// sweepBounds is the pair of cursor indices into one chromosome's sorted
// target list. Both cursors only ever move forward: they persist across
// the regions of a chromosome, so each target list is walked once no
// matter how many regions it is swept against.
type sweepBounds struct {
	// front is the index of the first target that may still overlap
	front int

	// back is the index one past the last overlapping target
	back int
}

// advance slides the bounds over ts to cover the targets overlapping r and
// returns that window. Both branches compare +1-shifted coordinates, so
// adjacency at the region boundaries follows those forms literally: a
// target starting at the region end is never claimed.
func (b *sweepBounds) advance(ts []Target, r Region, partialOverlap bool) []Target {
	if partialOverlap {
		// shift back until target.start >= region.end
		for b.back < len(ts) && ts[b.back].Start+1 < r.End {
			b.back++
		}
		// shift front until target.end > region.start
		for b.front < len(ts) && ts[b.front].End+1 <= r.Start {
			b.front++
		}
	} else {
		// shift back until target.end > region.end
		for b.back < len(ts) && ts[b.back].End+1 <= r.End {
			b.back++
		}
		// shift front until target.start >= region.start
		for b.front < len(ts) && ts[b.front].Start+1 < r.Start {
			b.front++
		}
	}

	return ts[b.front:b.back]
}

// annotate pairs every target with the regions it overlaps, producing one
// AnnotatedTarget per (target, region) pair plus one unannotated copy of
// every target no region claimed.
//
// regions must be sorted by ascending start within each chromosome; the
// sweep depends on it and annotate errors out if the order is violated.
// With partialOverlap, any overlap between target and region counts.
// Without it, only targets fully contained in the region count.
func annotate(
	targets map[string]Target,
	regions []Region,
	chromLens map[string]int,
	partialOverlap bool,
) ([]AnnotatedTarget, error) {
	if err := checkRegionOrder(regions); err != nil {
		return nil, err
	}

	// organize targets by chromosome and then start location
	perChrom := make(map[string][]Target)
	for _, t := range targets {
		perChrom[t.Chrom] = append(perChrom[t.Chrom], t)
	}
	for _, ts := range perChrom {
		sortTargets(ts)
	}

	bounds := make(map[string]*sweepBounds)
	for chrom := range chromLens {
		bounds[chrom] = &sweepBounds{}
	}

	found := make(map[string]bool)
	var annotated []AnnotatedTarget
	for i, r := range regions {
		if i%100 == 0 {
			stderr.Printf("examining region %d [%s]", i, r.Gene)
		}

		length, ok := chromLens[r.Chrom]
		if !ok {
			stderr.Printf("skipping %s: unknown chromosome %s", r.Gene, r.Chrom)
			continue
		}
		if r.Start >= length {
			continue
		}

		overlap := bounds[r.Chrom].advance(perChrom[r.Chrom], r, partialOverlap)
		if len(overlap) == 0 {
			stderr.Printf("no overlapping targets for gene %s", r.Gene)
		}

		reverseStrandGene := r.Strand == '-'
		for _, t := range overlap {
			found[t.key()] = true

			offset := t.Start - r.Start
			if reverseStrandGene {
				offset = r.End - t.End
			}

			annotated = append(annotated, AnnotatedTarget{
				Target:      t,
				Gene:        r.Gene,
				Offset:      offset,
				SenseStrand: reverseStrandGene == t.Reverse,
				annotated:   true,
			})
		}
	}

	// emit every target no region claimed, once, unannotated.
	// sorted so output is stable across runs
	var unfound []Target
	for name, t := range targets {
		if !found[name] {
			unfound = append(unfound, t)
		}
	}
	sortTargets(unfound)
	for _, t := range unfound {
		annotated = append(annotated, AnnotatedTarget{Target: t})
	}

	return annotated, nil
}

// checkRegionOrder errors if regions aren't sorted by ascending start
// within each chromosome, the precondition the cursor sweep depends on.
func checkRegionOrder(regions []Region) error {
	lastStart := make(map[string]int)
	for _, r := range regions {
		if last, seen := lastStart[r.Chrom]; seen && r.Start < last {
			return fmt.Errorf(
				"regions on %s are not sorted by start: %d after %d",
				r.Chrom, r.Start, last,
			)
		}
		lastStart[r.Chrom] = r.Start
	}

	return nil
}
